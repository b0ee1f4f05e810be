package auction

import (
	"math/big"
	"time"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/domain"
)

// MaxFeeBps caps the platform fee at 10%.
const (
	MaxFeeBps   = 1000
	BpsDenom    = 10000
	FirstId     = 1
	CounterName = "auctionId"
)

type Auction struct {
	Id                 uint64          `json:"auctionId" bson:"auctionId"`
	Seller             domain.Address  `json:"seller" bson:"seller"`
	Asset              domain.AssetRef `json:"asset" bson:"asset"`
	EndTime            time.Time       `json:"endTime" bson:"endTime"`
	PaymentUnit        domain.Address  `json:"paymentUnit" bson:"paymentUnit"`
	HighestBidAmount   *big.Int        `json:"highestBidAmount" bson:"-"`
	HighestBidUsdValue *big.Int        `json:"highestBidUsdValue" bson:"-"`
	HighestBidder      domain.Address  `json:"highestBidder" bson:"highestBidder"`
	Settled            bool            `json:"settled" bson:"settled"`
	CreatedAt          time.Time       `json:"createdAt" bson:"createdAt"`
	SettledAt          *time.Time      `json:"settledAt,omitempty" bson:"settledAt,omitempty"`
}

// HasBid reports whether any bid was accepted.
func (a *Auction) HasBid() bool {
	return !a.HighestBidder.IsEmpty()
}

// IsActive reports whether bids are accepted at now.
func (a *Auction) IsActive(now time.Time) bool {
	return !a.Settled && now.Before(a.EndTime)
}

func (a *Auction) Clone() *Auction {
	c := *a
	if a.HighestBidAmount != nil {
		c.HighestBidAmount = new(big.Int).Set(a.HighestBidAmount)
	}
	if a.HighestBidUsdValue != nil {
		c.HighestBidUsdValue = new(big.Int).Set(a.HighestBidUsdValue)
	}
	if a.SettledAt != nil {
		t := *a.SettledAt
		c.SettledAt = &t
	}
	return &c
}

// Bid is the highest-bid part of an auction, replaced as a unit on every accepted bid.
type Bid struct {
	Bidder   domain.Address
	Amount   *big.Int
	UsdValue *big.Int
}

func (a *Auction) CurrentBid() Bid {
	return Bid{
		Bidder:   a.HighestBidder,
		Amount:   a.HighestBidAmount,
		UsdValue: a.HighestBidUsdValue,
	}
}

type Settings struct {
	Treasury domain.Address `json:"treasury" bson:"treasury"`
	FeeBps   uint32         `json:"feeBps" bson:"feeBps"`
}

// SplitProceeds divides amount between seller and treasury. The seller share
// rounds down so the fee absorbs the remainder.
func (s Settings) SplitProceeds(amount *big.Int) (sellerAmount, feeAmount *big.Int) {
	sellerAmount = new(big.Int).Mul(amount, big.NewInt(int64(BpsDenom-s.FeeBps)))
	sellerAmount.Quo(sellerAmount, big.NewInt(BpsDenom))
	feeAmount = new(big.Int).Sub(amount, sellerAmount)
	return sellerAmount, feeAmount
}

type Filter struct {
	Seller      *domain.Address `bson:"seller,omitempty"`
	PaymentUnit *domain.Address `bson:"paymentUnit,omitempty"`
	Settled     *bool           `bson:"settled,omitempty"`
	EndedBefore *time.Time      `bson:"-"`
	Offset      int             `bson:"-"`
	Limit       int             `bson:"-"`
}

// Repo stores auctions. Records are never deleted.
type Repo interface {
	NextId(c ctx.Ctx) (uint64, error)
	Insert(c ctx.Ctx, a *Auction) error
	// FindOne returns nil, nil when id does not exist.
	FindOne(c ctx.Ctx, id uint64) (*Auction, error)
	FindAll(c ctx.Ctx, filter Filter) ([]*Auction, error)
	// UpdateBid replaces the highest bid fields.
	UpdateBid(c ctx.Ctx, id uint64, bid Bid) error
	// MarkSettled flips settled. Passing false is only used to roll back a failed settlement.
	MarkSettled(c ctx.Ctx, id uint64, settled bool, at *time.Time) error
}

type SettingsRepo interface {
	Get(c ctx.Ctx) (*Settings, error)
	SetTreasury(c ctx.Ctx, treasury domain.Address) error
	SetFeeBps(c ctx.Ctx, bps uint32) error
}

type CreateAuctionReq struct {
	Seller          domain.Address
	Asset           domain.AssetRef
	DurationSeconds int64
	PaymentUnit     domain.Address
}

type BidReq struct {
	Bidder    domain.Address
	AuctionId uint64
	Amount    *big.Int
	// Payment is the native value attached to the bid, nil when none.
	Payment   *big.Int
}

type Usecase interface {
	CreateAuction(c ctx.Ctx, req CreateAuctionReq) (uint64, error)
	Bid(c ctx.Ctx, req BidReq) error
	Settle(c ctx.Ctx, auctionId uint64) error

	SetPriceFeed(c ctx.Ctx, caller, unit, oracle domain.Address, tokenDecimals uint8) error
	SetTreasury(c ctx.Ctx, caller, treasury domain.Address) error
	SetPlatformFee(c ctx.Ctx, caller domain.Address, bps uint32) error

	GetAuction(c ctx.Ctx, id uint64) (*Auction, error)
	ListAuctions(c ctx.Ctx, filter Filter) ([]*Auction, error)
	GetSettings(c ctx.Ctx) (*Settings, error)
	ListPriceFeeds(c ctx.Ctx) ([]*domain.PriceFeedBinding, error)
}
