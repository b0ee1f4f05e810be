package auction

import (
	"time"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/domain"
)

type EventType string

const (
	EventAuctionCreated     EventType = "AuctionCreated"
	EventBidPlaced          EventType = "BidPlaced"
	EventAuctionSettled     EventType = "AuctionSettled"
	EventPriceFeedUpdated   EventType = "PriceFeedUpdated"
	EventTreasuryUpdated    EventType = "TreasuryUpdated"
	EventPlatformFeeUpdated EventType = "PlatformFeeUpdated"
)

// Event is emitted after an operation commits. Amounts are base-10 strings.
type Event struct {
	Id        string         `json:"id" bson:"id"`
	Type      EventType      `json:"type" bson:"type"`
	AuctionId uint64         `json:"auctionId,omitempty" bson:"auctionId,omitempty"`
	Account   domain.Address `json:"account,omitempty" bson:"account,omitempty"`
	Unit      domain.Address `json:"unit,omitempty" bson:"unit,omitempty"`
	Amount    string         `json:"amount,omitempty" bson:"amount,omitempty"`
	UsdValue  string         `json:"usdValue,omitempty" bson:"usdValue,omitempty"`
	FeeBps    *uint32        `json:"feeBps,omitempty" bson:"feeBps,omitempty"`
	CreatedAt time.Time      `json:"createdAt" bson:"createdAt"`
}

// EventSink receives committed events. Emit must not block the caller on slow consumers.
type EventSink interface {
	Emit(c ctx.Ctx, ev Event)
}

type EventRepo interface {
	Insert(c ctx.Ctx, ev *Event) error
	FindByAuction(c ctx.Ctx, auctionId uint64, offset, limit int) ([]*Event, error)
}
