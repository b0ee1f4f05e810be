package chainlink

import (
	"math/big"
	"sync"

	"golang.org/x/xerrors"

	"github.com/x-xyz/goauction/base/clock"
	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/domain"
)

type staticImpl struct {
	clock    clock.Clock
	decimals uint8

	mu      sync.RWMutex
	answers map[domain.Address]*big.Int
}

// NewStatic serves fixed answers stamped with the current time, for sandbox deployments without a chain.
func NewStatic(clock clock.Clock, decimals uint8, answers map[domain.Address]*big.Int) Chainlink {
	im := &staticImpl{
		clock:    clock,
		decimals: decimals,
		answers:  map[domain.Address]*big.Int{},
	}
	for feed, answer := range answers {
		im.answers[feed.ToLower()] = new(big.Int).Set(answer)
	}
	return im
}

func (im *staticImpl) LatestRoundData(c ctx.Ctx, feed domain.Address) (*domain.RoundData, error) {
	im.mu.RLock()
	defer im.mu.RUnlock()
	answer, ok := im.answers[feed.ToLower()]
	if !ok {
		return nil, xerrors.Errorf("static feed %s: %w", feed, domain.ErrNotFound)
	}
	return &domain.RoundData{
		RoundId:   big.NewInt(1),
		Answer:    new(big.Int).Set(answer),
		Decimals:  im.decimals,
		UpdatedAt: im.clock.Now(),
	}, nil
}
