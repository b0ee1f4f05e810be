package pricefomatter

import (
	"math/big"
	"sync"

	"github.com/shopspring/decimal"

	bCtx "github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/domain"
)

const nativeDecimals = 18

type impl struct {
	feeds domain.PriceFeedRepo

	// mutex protected members
	mutex         sync.Mutex
	decimalsCache map[domain.Address]uint8
}

func NewPriceFormatter(feeds domain.PriceFeedRepo) PriceFormatter {
	return &impl{
		feeds:         feeds,
		decimalsCache: make(map[domain.Address]uint8),
	}
}

func (f *impl) getDecimals(ctx bCtx.Ctx, unit domain.Address) (uint8, error) {
	if unit.IsNative() {
		return nativeDecimals, nil
	}
	unit = unit.ToLower()

	f.mutex.Lock()
	defer f.mutex.Unlock()
	if d, ok := f.decimalsCache[unit]; ok {
		return d, nil
	}
	binding, err := f.feeds.FindOne(ctx, unit)
	if err != nil {
		ctx.WithFields(log.Fields{
			"unit": unit,
			"err":  err,
		}).Error("feeds.FindOne failed")
		return 0, err
	} else if binding == nil {
		return 0, domain.ErrNoPriceFeed
	}
	f.decimalsCache[unit] = binding.TokenDecimals
	return binding.TokenDecimals, nil
}

func (f *impl) DisplayAmount(ctx bCtx.Ctx, unit domain.Address, value *big.Int) (decimal.Decimal, error) {
	if value == nil {
		return decimal.Zero, nil
	}
	d, err := f.getDecimals(ctx, unit)
	if err != nil {
		return decimal.Zero, err
	}
	return decimal.NewFromBigInt(value, -int32(d)), nil
}

func (f *impl) DisplayUsd(value *big.Int) decimal.Decimal {
	if value == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(value, -usdDecimals)
}
