package repository

import (
	"math/big"
	"sync"

	"golang.org/x/xerrors"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/domain"
)

type balanceKey struct {
	unit    domain.Address
	account domain.Address
}

type memoryLedger struct {
	mu       sync.Mutex
	escrow   domain.Address
	balances map[balanceKey]*big.Int
}

// NewMemory keeps balances in process, for sandbox runs and tests.
func NewMemory(escrow domain.Address) Ledger {
	return &memoryLedger{escrow: escrow.ToLower(), balances: map[balanceKey]*big.Int{}}
}

func (im *memoryLedger) get(unit, account domain.Address) *big.Int {
	k := balanceKey{unit.ToLower(), account.ToLower()}
	b, ok := im.balances[k]
	if !ok {
		b = big.NewInt(0)
		im.balances[k] = b
	}
	return b
}

func (im *memoryLedger) move(unit, from, to domain.Address, amount *big.Int) error {
	if amount == nil || amount.Sign() < 0 {
		return domain.ErrInvalidAmount
	}
	im.mu.Lock()
	defer im.mu.Unlock()
	fromBal := im.get(unit, from)
	if fromBal.Cmp(amount) < 0 {
		return xerrors.Errorf("%s has %s, needs %s: %w", from, fromBal, amount, domain.ErrInsufficientBalance)
	}
	fromBal.Sub(fromBal, amount)
	toBal := im.get(unit, to)
	toBal.Add(toBal, amount)
	return nil
}

func (im *memoryLedger) Pull(c ctx.Ctx, unit domain.Address, account domain.Address, amount *big.Int) error {
	return im.move(unit, account, im.escrow, amount)
}

func (im *memoryLedger) Push(c ctx.Ctx, unit domain.Address, account domain.Address, amount *big.Int) error {
	return im.move(unit, im.escrow, account, amount)
}

func (im *memoryLedger) BalanceOf(c ctx.Ctx, unit domain.Address, account domain.Address) (*big.Int, error) {
	im.mu.Lock()
	defer im.mu.Unlock()
	return new(big.Int).Set(im.get(unit, account)), nil
}

func (im *memoryLedger) Credit(c ctx.Ctx, unit domain.Address, account domain.Address, amount *big.Int) error {
	if amount == nil || amount.Sign() <= 0 {
		return domain.ErrInvalidAmount
	}
	im.mu.Lock()
	defer im.mu.Unlock()
	b := im.get(unit, account)
	b.Add(b, amount)
	return nil
}
