package repository

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/domain"
)

var (
	mockCtx = ctx.Background()
)

type memorySuite struct {
	suite.Suite
	repo domain.PriceFeedRepo
}

func TestMemory(t *testing.T) {
	suite.Run(t, new(memorySuite))
}

func (t *memorySuite) SetupTest() {
	t.repo = NewPriceFeedMemoryRepo()
}

func (t *memorySuite) TestUpsertFindOne() {
	unit := domain.Address("0xA0b86991c6218b36c1d19d4a2e9eB0cE3606eB48")

	res, err := t.repo.FindOne(mockCtx, unit)
	t.NoError(err)
	t.Nil(res)

	t.NoError(t.repo.Upsert(mockCtx, &domain.PriceFeedBinding{PaymentUnit: unit, Oracle: "0xFEED", TokenDecimals: 6}))
	t.NoError(t.repo.Upsert(mockCtx, &domain.PriceFeedBinding{PaymentUnit: unit, Oracle: "0xFEED2", TokenDecimals: 6}))

	res, err = t.repo.FindOne(mockCtx, unit.ToLower())
	t.NoError(err)
	t.Equal(domain.Address("0xfeed2"), res.Oracle)
	t.Equal(uint8(6), res.TokenDecimals)

	all, err := t.repo.FindAll(mockCtx)
	t.NoError(err)
	t.Len(all, 1)
}
