package repository

import (
	"math/big"

	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/xerrors"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/service/query"
)

// Ledger is a FundsLedger that can also be topped up.
type Ledger interface {
	domain.FundsLedger
	domain.Faucet
}

// mongoLedger keeps custodial balances, one document per unit and account.
// Every movement runs in a transaction so both legs commit together.
type mongoLedger struct {
	q      query.Mongo
	escrow domain.Address
}

func NewMongo(q query.Mongo, escrow domain.Address) Ledger {
	return &mongoLedger{q: q, escrow: escrow.ToLower()}
}

// EnsureIndexes creates the unique balance key.
func EnsureIndexes(c ctx.Ctx, q query.Mongo) error {
	return q.EnsureIndexes(c, domain.TableBalances, query.Index{Keys: []string{"unit", "account"}, Unique: true})
}

func selector(unit, account domain.Address) bson.M {
	return bson.M{"unit": unit.ToLower(), "account": account.ToLower()}
}

func (im *mongoLedger) balance(c ctx.Ctx, unit, account domain.Address) (*big.Int, error) {
	b := &domain.Balance{}
	if err := im.q.FindOne(c, domain.TableBalances, selector(unit, account), b); err == query.ErrNotFound {
		return big.NewInt(0), nil
	} else if err != nil {
		c.WithFields(log.Fields{"err": err, "unit": unit, "account": account}).Error("q.FindOne failed")
		return nil, err
	}
	return domain.ParseAmount(b.Amount)
}

func (im *mongoLedger) setBalance(c ctx.Ctx, unit, account domain.Address, amount *big.Int) error {
	b := &domain.Balance{Unit: unit.ToLower(), Account: account.ToLower(), Amount: amount.String()}
	if err := im.q.Upsert(c, domain.TableBalances, selector(unit, account), b); err != nil {
		c.WithFields(log.Fields{"err": err, "unit": unit, "account": account}).Error("q.Upsert failed")
		return err
	}
	return nil
}

func (im *mongoLedger) move(c ctx.Ctx, unit, from, to domain.Address, amount *big.Int) error {
	if amount == nil || amount.Sign() < 0 {
		return domain.ErrInvalidAmount
	}
	return im.q.RunWithTransaction(c, func(tc ctx.Ctx) error {
		fromBal, err := im.balance(tc, unit, from)
		if err != nil {
			return err
		}
		if fromBal.Cmp(amount) < 0 {
			return xerrors.Errorf("%s has %s, needs %s: %w", from, fromBal, amount, domain.ErrInsufficientBalance)
		}
		if from.Equals(to) {
			return nil
		}
		toBal, err := im.balance(tc, unit, to)
		if err != nil {
			return err
		}
		if err := im.setBalance(tc, unit, from, fromBal.Sub(fromBal, amount)); err != nil {
			return err
		}
		return im.setBalance(tc, unit, to, toBal.Add(toBal, amount))
	})
}

func (im *mongoLedger) Pull(c ctx.Ctx, unit domain.Address, account domain.Address, amount *big.Int) error {
	return im.move(c, unit, account, im.escrow, amount)
}

func (im *mongoLedger) Push(c ctx.Ctx, unit domain.Address, account domain.Address, amount *big.Int) error {
	return im.move(c, unit, im.escrow, account, amount)
}

func (im *mongoLedger) BalanceOf(c ctx.Ctx, unit domain.Address, account domain.Address) (*big.Int, error) {
	return im.balance(c, unit, account)
}

func (im *mongoLedger) Credit(c ctx.Ctx, unit domain.Address, account domain.Address, amount *big.Int) error {
	if amount == nil || amount.Sign() <= 0 {
		return domain.ErrInvalidAmount
	}
	return im.q.RunWithTransaction(c, func(tc ctx.Ctx) error {
		bal, err := im.balance(tc, unit, account)
		if err != nil {
			return err
		}
		return im.setBalance(tc, unit, account, bal.Add(bal, amount))
	})
}
