package http

import (
	"math/big"
	"time"

	"github.com/shopspring/decimal"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/auction"
)

type auctionView struct {
	Id                 uint64          `json:"auctionId"`
	Seller             domain.Address  `json:"seller"`
	Asset              domain.AssetRef `json:"asset"`
	EndTime            time.Time       `json:"endTime"`
	PaymentUnit        domain.Address  `json:"paymentUnit"`
	HighestBidder      domain.Address  `json:"highestBidder,omitempty"`
	HighestBidAmount   string          `json:"highestBidAmount"`
	HighestBidUsdValue string          `json:"highestBidUsdValue"`
	DisplayAmount      *string         `json:"displayAmount,omitempty"`
	DisplayUsd         string          `json:"displayUsd"`
	Settled            bool            `json:"settled"`
	CreatedAt          time.Time       `json:"createdAt"`
	SettledAt          *time.Time      `json:"settledAt,omitempty"`
}

func bigStr(v *big.Int) string {
	if v == nil {
		return "0"
	}
	return v.String()
}

func (h *handler) toView(c ctx.Ctx, a *auction.Auction) *auctionView {
	v := &auctionView{
		Id:                 a.Id,
		Seller:             a.Seller,
		Asset:              a.Asset,
		EndTime:            a.EndTime,
		PaymentUnit:        a.PaymentUnit,
		HighestBidAmount:   bigStr(a.HighestBidAmount),
		HighestBidUsdValue: bigStr(a.HighestBidUsdValue),
		Settled:            a.Settled,
		CreatedAt:          a.CreatedAt,
		SettledAt:          a.SettledAt,
	}
	if a.HasBid() {
		v.HighestBidder = a.HighestBidder
	}
	v.DisplayUsd = h.formatter.DisplayUsd(a.HighestBidUsdValue).String()
	// units without a feed have no known precision
	if amount, err := h.formatter.DisplayAmount(c, a.PaymentUnit, a.HighestBidAmount); err == nil {
		s := amount.String()
		v.DisplayAmount = &s
	}
	return v
}

type settingsView struct {
	Treasury domain.Address `json:"treasury"`
	FeeBps   uint32         `json:"feeBps"`
	FeePct   string         `json:"feePercent"`
}

func toSettingsView(s *auction.Settings) *settingsView {
	return &settingsView{
		Treasury: s.Treasury,
		FeeBps:   s.FeeBps,
		FeePct:   decimal.New(int64(s.FeeBps), -2).StringFixed(2),
	}
}
