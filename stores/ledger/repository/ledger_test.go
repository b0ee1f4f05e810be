package repository

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/service/query"
	queryMocks "github.com/x-xyz/goauction/service/query/mocks"
)

var (
	mockCtx = ctx.Background()
	escrow  = domain.Address("0x00000000000000000000000000000000000000e1")
	alice   = domain.Address("0x00000000000000000000000000000000000000a1")
	usdc    = domain.Address("0x00000000000000000000000000000000000000c1")
)

type memorySuite struct {
	suite.Suite
	ledger Ledger
}

func TestMemory(t *testing.T) {
	suite.Run(t, new(memorySuite))
}

func (t *memorySuite) SetupTest() {
	t.ledger = NewMemory(escrow)
}

func (t *memorySuite) balance(account domain.Address) int64 {
	b, err := t.ledger.BalanceOf(mockCtx, usdc, account)
	t.Require().NoError(err)
	return b.Int64()
}

func (t *memorySuite) TestPullPush() {
	t.NoError(t.ledger.Credit(mockCtx, usdc, alice, big.NewInt(100)))
	t.NoError(t.ledger.Pull(mockCtx, usdc, alice, big.NewInt(60)))
	t.Equal(int64(40), t.balance(alice))
	t.Equal(int64(60), t.balance(escrow))

	t.NoError(t.ledger.Push(mockCtx, usdc, alice, big.NewInt(10)))
	t.Equal(int64(50), t.balance(alice))
	t.Equal(int64(50), t.balance(escrow))
}

func (t *memorySuite) TestPushToEscrowKeepsBalance() {
	t.NoError(t.ledger.Credit(mockCtx, usdc, escrow, big.NewInt(100)))
	t.NoError(t.ledger.Push(mockCtx, usdc, escrow, big.NewInt(40)))
	t.Equal(int64(100), t.balance(escrow))
}

func (t *memorySuite) TestInsufficient() {
	t.ErrorIs(t.ledger.Pull(mockCtx, usdc, alice, big.NewInt(1)), domain.ErrInsufficientBalance)
	t.ErrorIs(t.ledger.Push(mockCtx, usdc, alice, big.NewInt(1)), domain.ErrInsufficientBalance)
	t.Equal(int64(0), t.balance(alice))
}

func (t *memorySuite) TestInvalidAmount() {
	t.ErrorIs(t.ledger.Pull(mockCtx, usdc, alice, big.NewInt(-1)), domain.ErrInvalidAmount)
	t.ErrorIs(t.ledger.Credit(mockCtx, usdc, alice, big.NewInt(0)), domain.ErrInvalidAmount)
}

type mongoSuite struct {
	suite.Suite
	q      *queryMocks.Mongo
	ledger Ledger
}

func TestMongo(t *testing.T) {
	suite.Run(t, new(mongoSuite))
}

func (t *mongoSuite) SetupTest() {
	t.q = &queryMocks.Mongo{}
	t.ledger = NewMongo(t.q, escrow)
	// run the transaction body inline
	t.q.On("RunWithTransaction", mockCtx, mock.Anything).Return(func(c ctx.Ctx, run func(ctx.Ctx) error) error {
		return run(c)
	})
}

func (t *mongoSuite) TearDownTest() {
	t.q.AssertExpectations(t.T())
}

func (t *mongoSuite) stored(account domain.Address, amount string) {
	t.q.On("FindOne", mockCtx, domain.TableBalances, selector(usdc, account), mock.Anything).
		Run(func(args mock.Arguments) {
			*args.Get(3).(*domain.Balance) = domain.Balance{Unit: usdc, Account: account, Amount: amount}
		}).Return(nil).Once()
}

func (t *mongoSuite) TestPull() {
	t.stored(alice, "100")
	t.q.On("FindOne", mockCtx, domain.TableBalances, selector(usdc, escrow), mock.Anything).Return(query.ErrNotFound).Once()
	t.q.On("Upsert", mockCtx, domain.TableBalances, selector(usdc, alice), &domain.Balance{Unit: usdc, Account: alice, Amount: "30"}).Return(nil).Once()
	t.q.On("Upsert", mockCtx, domain.TableBalances, selector(usdc, escrow), &domain.Balance{Unit: usdc, Account: escrow, Amount: "70"}).Return(nil).Once()

	t.NoError(t.ledger.Pull(mockCtx, usdc, alice, big.NewInt(70)))
}

func (t *mongoSuite) TestPushInsufficient() {
	t.stored(escrow, "5")

	t.ErrorIs(t.ledger.Push(mockCtx, usdc, alice, big.NewInt(6)), domain.ErrInsufficientBalance)
}

func (t *mongoSuite) TestPushToEscrowKeepsBalance() {
	t.stored(escrow, "100")

	// no Upsert is expected, the balance is left as is
	t.NoError(t.ledger.Push(mockCtx, usdc, escrow, big.NewInt(40)))
}

func (t *mongoSuite) TestPushToEscrowInsufficient() {
	t.stored(escrow, "10")

	t.ErrorIs(t.ledger.Push(mockCtx, usdc, escrow, big.NewInt(40)), domain.ErrInsufficientBalance)
}
