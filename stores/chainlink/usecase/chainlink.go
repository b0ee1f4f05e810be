package usecase

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common/math"
	"golang.org/x/xerrors"

	"github.com/x-xyz/goauction/base/clock"
	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/domain"
)

// StaleAfter is how old a round may get before it is refused.
const StaleAfter = 24 * time.Hour

// usdDecimals is the fixed point precision of every usd value.
const usdDecimals = 18

type impl struct {
	oracle domain.PriceOracle
	feeds  domain.PriceFeedRepo
	clock  clock.Clock
}

func New(
	oracle domain.PriceOracle,
	feeds domain.PriceFeedRepo,
	clock clock.Clock,
) domain.PriceNormalizer {
	return &impl{oracle: oracle, feeds: feeds, clock: clock}
}

func (im *impl) NormalizeUnit(c ctx.Ctx, unit domain.Address, rawAmount *big.Int) (*big.Int, error) {
	binding, err := im.feeds.FindOne(c, unit.ToLower())
	if err != nil {
		c.WithFields(log.Fields{
			"err":  err,
			"unit": unit,
		}).Error("feeds.FindOne failed")
		return nil, err
	} else if binding == nil || binding.Oracle.IsEmpty() {
		return nil, domain.ErrNoPriceFeed
	}
	return im.Normalize(c, binding, rawAmount)
}

func (im *impl) Normalize(c ctx.Ctx, binding *domain.PriceFeedBinding, rawAmount *big.Int) (*big.Int, error) {
	if rawAmount == nil || rawAmount.Sign() < 0 {
		return nil, domain.ErrInvalidAmount
	}

	round, err := im.oracle.LatestRoundData(c, binding.Oracle)
	if err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"oracle": binding.Oracle,
		}).Error("oracle.LatestRoundData failed")
		return nil, err
	}

	price, err := im.adjustedPrice(round)
	if err != nil {
		c.WithFields(log.Fields{
			"err":       err,
			"oracle":    binding.Oracle,
			"answer":    round.Answer,
			"updatedAt": round.UpdatedAt,
		}).Warn("oracle round refused")
		return nil, err
	}

	if rawAmount.Cmp(new(big.Int).Quo(math.MaxBig256, price)) > 0 {
		return nil, xerrors.Errorf("%s at price %s: %w", rawAmount, price, domain.ErrAmountOverflow)
	}

	usd := new(big.Int).Mul(price, rawAmount)
	return usd.Quo(usd, domain.Pow10(binding.TokenDecimals)), nil
}

// adjustedPrice validates round and rescales its answer to 18 decimals.
func (im *impl) adjustedPrice(round *domain.RoundData) (*big.Int, error) {
	if round == nil || round.Answer == nil || round.Answer.Sign() <= 0 || round.UpdatedAt.IsZero() {
		return nil, domain.ErrInvalidOracleData
	}

	if im.clock.Now().Sub(round.UpdatedAt) >= StaleAfter {
		return nil, domain.ErrStalePrice
	}

	price := new(big.Int).Mul(round.Answer, domain.Pow10(usdDecimals))
	if price.Cmp(math.MaxBig256) > 0 {
		return nil, domain.ErrAmountOverflow
	}
	price.Quo(price, domain.Pow10(round.Decimals))
	if price.Sign() == 0 {
		return nil, domain.ErrInvalidOracleData
	}
	return price, nil
}
