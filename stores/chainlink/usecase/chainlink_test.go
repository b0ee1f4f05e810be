package usecase

import (
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common/math"
	"github.com/stretchr/testify/suite"
	"golang.org/x/xerrors"

	"github.com/x-xyz/goauction/base/clock"
	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/mocks"
)

var (
	mockCtx = ctx.Background()
	now     = time.Date(2022, 6, 1, 12, 0, 0, 0, time.UTC)

	ethFeed  = domain.Address("0x5f4ec3df9cbd43714fe2740f5e3616155c5b8419")
	usdcUnit = domain.Address("0xa0b86991c6218b36c1d19d4a2e9eb0ce3606eb48")
	usdcFeed = domain.Address("0x8fffffd4afb6115b954bd326cbe7b4ba576818f6")
)

func e(base int64, exp uint8) *big.Int {
	return new(big.Int).Mul(big.NewInt(base), domain.Pow10(exp))
}

type testsuite struct {
	suite.Suite
	oracle  *mocks.PriceOracle
	feeds   *mocks.PriceFeedRepo
	subject *impl
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (t *testsuite) SetupTest() {
	t.oracle = &mocks.PriceOracle{}
	t.feeds = &mocks.PriceFeedRepo{}
	t.subject = New(t.oracle, t.feeds, clock.NewFixed(now)).(*impl)
}

func (t *testsuite) TearDownTest() {
	t.oracle.AssertExpectations(t.T())
	t.feeds.AssertExpectations(t.T())
}

func (t *testsuite) round(answer *big.Int, decimals uint8, age time.Duration) *domain.RoundData {
	return &domain.RoundData{
		RoundId:   big.NewInt(1),
		Answer:    answer,
		Decimals:  decimals,
		UpdatedAt: now.Add(-age),
	}
}

func (t *testsuite) TestNormalizeNative() {
	t.oracle.On("LatestRoundData", mockCtx, ethFeed).Return(t.round(e(2000, 8), 8, time.Minute), nil).Once()

	usd, err := t.subject.Normalize(mockCtx, &domain.PriceFeedBinding{Oracle: ethFeed, TokenDecimals: 18}, e(1, 18))
	t.NoError(err)
	t.Equal(e(2000, 18).String(), usd.String())
}

func (t *testsuite) TestNormalizeCrossDecimals() {
	// 1000.00000000 usd per unit, raw 1e6 of a 6 decimals token is one unit
	t.oracle.On("LatestRoundData", mockCtx, usdcFeed).Return(t.round(e(1000, 8), 8, time.Minute), nil).Once()

	usd, err := t.subject.Normalize(mockCtx, &domain.PriceFeedBinding{Oracle: usdcFeed, TokenDecimals: 6}, e(1, 6))
	t.NoError(err)
	t.Equal(e(1000, 18).String(), usd.String())
}

func (t *testsuite) TestNormalizeUnit() {
	binding := &domain.PriceFeedBinding{PaymentUnit: usdcUnit, Oracle: usdcFeed, TokenDecimals: 6}
	t.feeds.On("FindOne", mockCtx, usdcUnit).Return(binding, nil).Once()
	t.oracle.On("LatestRoundData", mockCtx, usdcFeed).Return(t.round(e(1, 8), 8, time.Hour), nil).Once()

	usd, err := t.subject.NormalizeUnit(mockCtx, usdcUnit, e(1000, 6))
	t.NoError(err)
	t.Equal(e(1000, 18).String(), usd.String())
}

func (t *testsuite) TestNormalizeUnitNoFeed() {
	t.feeds.On("FindOne", mockCtx, usdcUnit).Return(nil, nil).Once()

	_, err := t.subject.NormalizeUnit(mockCtx, usdcUnit, e(1, 6))
	t.ErrorIs(err, domain.ErrNoPriceFeed)
}

func (t *testsuite) TestNormalizeUnitRepoFailed() {
	errRepo := xerrors.New("mongo down")
	t.feeds.On("FindOne", mockCtx, usdcUnit).Return(nil, errRepo).Once()

	_, err := t.subject.NormalizeUnit(mockCtx, usdcUnit, e(1, 6))
	t.ErrorIs(err, errRepo)
}

func (t *testsuite) TestStalePrice() {
	binding := &domain.PriceFeedBinding{Oracle: ethFeed, TokenDecimals: 18}

	t.oracle.On("LatestRoundData", mockCtx, ethFeed).Return(t.round(e(2000, 8), 8, StaleAfter), nil).Once()
	_, err := t.subject.Normalize(mockCtx, binding, e(1, 18))
	t.ErrorIs(err, domain.ErrStalePrice)

	t.oracle.On("LatestRoundData", mockCtx, ethFeed).Return(t.round(e(2000, 8), 8, StaleAfter-time.Second), nil).Once()
	_, err = t.subject.Normalize(mockCtx, binding, e(1, 18))
	t.NoError(err)
}

func (t *testsuite) TestInvalidOracleData() {
	binding := &domain.PriceFeedBinding{Oracle: ethFeed, TokenDecimals: 18}
	zeroTime := t.round(e(2000, 8), 8, 0)
	zeroTime.UpdatedAt = time.Time{}

	for _, round := range []*domain.RoundData{
		t.round(big.NewInt(0), 8, time.Minute),
		t.round(big.NewInt(-5), 8, time.Minute),
		zeroTime,
		// scales down to zero
		t.round(big.NewInt(1), 30, time.Minute),
	} {
		t.oracle.On("LatestRoundData", mockCtx, ethFeed).Return(round, nil).Once()
		_, err := t.subject.Normalize(mockCtx, binding, e(1, 18))
		t.ErrorIs(err, domain.ErrInvalidOracleData)
	}
}

func (t *testsuite) TestAmountOverflow() {
	binding := &domain.PriceFeedBinding{Oracle: ethFeed, TokenDecimals: 18}

	t.oracle.On("LatestRoundData", mockCtx, ethFeed).Return(t.round(e(2000, 8), 8, time.Minute), nil).Once()
	_, err := t.subject.Normalize(mockCtx, binding, math.MaxBig256)
	t.ErrorIs(err, domain.ErrAmountOverflow)

	t.oracle.On("LatestRoundData", mockCtx, ethFeed).Return(t.round(math.MaxBig256, 0, time.Minute), nil).Once()
	_, err = t.subject.Normalize(mockCtx, binding, big.NewInt(1))
	t.ErrorIs(err, domain.ErrAmountOverflow)
}

func (t *testsuite) TestOracleFailed() {
	errCall := xerrors.New("execution reverted")
	t.oracle.On("LatestRoundData", mockCtx, ethFeed).Return(nil, errCall).Once()

	_, err := t.subject.Normalize(mockCtx, &domain.PriceFeedBinding{Oracle: ethFeed, TokenDecimals: 18}, e(1, 18))
	t.ErrorIs(err, errCall)
}

func (t *testsuite) TestInvalidAmount() {
	_, err := t.subject.Normalize(mockCtx, &domain.PriceFeedBinding{Oracle: ethFeed}, big.NewInt(-1))
	t.ErrorIs(err, domain.ErrInvalidAmount)
}
