package usecase

import (
	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/domain/auction"
)

type historyHandler struct {
	repo auction.EventRepo
}

// NewHistoryHandler stores every event so it can be listed per auction.
func NewHistoryHandler(repo auction.EventRepo) Handler {
	return &historyHandler{repo}
}

func (h *historyHandler) Name() string {
	return "history"
}

func (h *historyHandler) Handle(c ctx.Ctx, ev auction.Event) error {
	return h.repo.Insert(c, &ev)
}
