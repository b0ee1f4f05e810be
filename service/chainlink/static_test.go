package chainlink

import (
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/x-xyz/goauction/base/clock"
	"github.com/x-xyz/goauction/domain"
)

func TestStatic(t *testing.T) {
	req := require.New(t)
	now := time.Unix(1700000000, 0)
	feed := domain.Address("0x5F4eC3Df9cbd43714FE2740f5E3616155c5b8419")
	subject := NewStatic(clock.NewFixed(now), 8, map[domain.Address]*big.Int{feed: big.NewInt(200000000000)})

	round, err := subject.LatestRoundData(mockCtx, feed.ToLower())
	req.NoError(err)
	req.Equal("200000000000", round.Answer.String())
	req.Equal(uint8(8), round.Decimals)
	req.Equal(now, round.UpdatedAt)

	_, err = subject.LatestRoundData(mockCtx, "0x01")
	req.ErrorIs(err, domain.ErrNotFound)
}
