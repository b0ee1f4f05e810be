package chainlink

import (
	"math/big"
	"time"

	"golang.org/x/xerrors"

	"github.com/x-xyz/goauction/base/abi"
	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/service/chain"
)

type impl struct {
	chainClient chain.Client
}

func New(chainClient chain.Client) Chainlink {
	return &impl{
		chainClient: chainClient,
	}
}

func (im *impl) LatestRoundData(c ctx.Ctx, feed domain.Address) (*domain.RoundData, error) {
	feedAddr := feed.ToCommon()

	dec, err := im.chainClient.Call(c, feedAddr, nil, abi.ChainlinkFeedABI, "decimals")
	if err != nil {
		c.WithFields(log.Fields{
			"err":  err,
			"feed": feed,
		}).Error("chainClient.Call decimals failed")
		return nil, err
	}
	decimals, ok := dec[0].(uint8)
	if !ok {
		return nil, xerrors.Errorf("unexpected decimals type %T: %w", dec[0], domain.ErrInvalidOracleData)
	}

	res, err := im.chainClient.Call(c, feedAddr, nil, abi.ChainlinkFeedABI, "latestRoundData")
	if err != nil {
		c.WithFields(log.Fields{
			"err":  err,
			"feed": feed,
		}).Error("chainClient.Call latestRoundData failed")
		return nil, err
	}
	if len(res) != 5 {
		return nil, xerrors.Errorf("latestRoundData returned %d values: %w", len(res), domain.ErrInvalidOracleData)
	}
	roundId, _ := res[0].(*big.Int)
	answer, _ := res[1].(*big.Int)
	updatedAt, _ := res[3].(*big.Int)
	if answer == nil || updatedAt == nil {
		return nil, xerrors.Errorf("latestRoundData malformed: %w", domain.ErrInvalidOracleData)
	}

	round := &domain.RoundData{
		RoundId:  roundId,
		Answer:   answer,
		Decimals: decimals,
	}
	// zero stays the zero time so normalization can reject it
	if updatedAt.Sign() > 0 && updatedAt.IsInt64() {
		round.UpdatedAt = time.Unix(updatedAt.Int64(), 0)
	}
	return round, nil
}
