package domain

import (
	"math/big"

	"github.com/x-xyz/goauction/base/ctx"
)

// AssetRegistry is the ownership ledger of non-fungible assets.
type AssetRegistry interface {
	OwnerOf(c ctx.Ctx, asset AssetRef) (Address, error)
	// IsApproved reports whether operator may move asset on behalf of owner,
	// either through a token approval or an operator approval.
	IsApproved(c ctx.Ctx, asset AssetRef, owner, operator Address) (bool, error)
	Transfer(c ctx.Ctx, asset AssetRef, from, to Address) error
}

// FundsLedger moves fungible value between accounts and the engine escrow.
type FundsLedger interface {
	// Pull moves amount of unit from account into escrow.
	Pull(c ctx.Ctx, unit Address, account Address, amount *big.Int) error
	// Push moves amount of unit from escrow to account.
	Push(c ctx.Ctx, unit Address, account Address, amount *big.Int) error
	BalanceOf(c ctx.Ctx, unit Address, account Address) (*big.Int, error)
}

// Balance is one account's holding of a payment unit.
type Balance struct {
	Unit    Address `json:"unit" bson:"unit"`
	Account Address `json:"account" bson:"account"`
	Amount  string  `json:"amount" bson:"amount"`
}

// Faucet credits accounts from outside the engine. Only sandbox deployments wire it.
type Faucet interface {
	Credit(c ctx.Ctx, unit Address, account Address, amount *big.Int) error
}
