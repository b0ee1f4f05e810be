package domain

import (
	"math/big"
	"time"

	"github.com/x-xyz/goauction/base/ctx"
)

// RoundData is one answer of a price feed.
type RoundData struct {
	RoundId   *big.Int
	Answer    *big.Int
	Decimals  uint8
	UpdatedAt time.Time
}

// PriceOracle reads the latest round of a USD price feed.
type PriceOracle interface {
	LatestRoundData(c ctx.Ctx, feed Address) (*RoundData, error)
}

// PriceFeedBinding ties a payment unit to the feed pricing it in USD.
type PriceFeedBinding struct {
	PaymentUnit   Address   `json:"paymentUnit" bson:"paymentUnit"`
	Oracle        Address   `json:"oracle" bson:"oracle"`
	TokenDecimals uint8     `json:"tokenDecimals" bson:"tokenDecimals"`
	UpdatedAt     time.Time `json:"updatedAt" bson:"updatedAt"`
}

type PriceFeedRepo interface {
	// FindOne returns nil, nil when unit has no binding.
	FindOne(c ctx.Ctx, unit Address) (*PriceFeedBinding, error)
	FindAll(c ctx.Ctx) ([]*PriceFeedBinding, error)
	Upsert(c ctx.Ctx, binding *PriceFeedBinding) error
}

// PriceNormalizer converts raw payment amounts into 18-decimal USD values.
type PriceNormalizer interface {
	// Normalize prices rawAmount of the binding's unit. The oracle is read on every call.
	Normalize(c ctx.Ctx, binding *PriceFeedBinding, rawAmount *big.Int) (*big.Int, error)
	// NormalizeUnit looks up the binding of unit first, failing with ErrNoPriceFeed when unbound.
	NormalizeUnit(c ctx.Ctx, unit Address, rawAmount *big.Int) (*big.Int, error)
}
