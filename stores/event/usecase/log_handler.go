package usecase

import (
	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/domain/auction"
)

type logHandler struct{}

func NewLogHandler() Handler {
	return logHandler{}
}

func (logHandler) Name() string {
	return "log"
}

func (logHandler) Handle(c ctx.Ctx, ev auction.Event) error {
	c.WithFields(log.Fields{
		"id":        ev.Id,
		"type":      ev.Type,
		"auctionId": ev.AuctionId,
		"account":   ev.Account,
		"unit":      ev.Unit,
		"amount":    ev.Amount,
		"usdValue":  ev.UsdValue,
	}).Info("auction event")
	return nil
}
