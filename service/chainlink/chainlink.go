package chainlink

import (
	"github.com/x-xyz/goauction/domain"
)

// Chainlink reads AggregatorV3 feeds. Answers are never cached.
type Chainlink interface {
	domain.PriceOracle
}
