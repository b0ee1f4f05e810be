package pricefomatter

import (
	"math/big"

	"github.com/shopspring/decimal"

	bCtx "github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/domain"
)

// usdDecimals is the fixed point precision of normalized usd values.
const usdDecimals = 18

type PriceFormatter interface {
	// DisplayAmount scales a raw amount of unit by the unit's token decimals.
	DisplayAmount(ctx bCtx.Ctx, unit domain.Address, value *big.Int) (decimal.Decimal, error)
	// DisplayUsd renders an 18 decimals usd value.
	DisplayUsd(value *big.Int) decimal.Decimal
}
