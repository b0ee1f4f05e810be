package repository

import (
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/ptr"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/auction"
	"github.com/x-xyz/goauction/service/query"
	queryMocks "github.com/x-xyz/goauction/service/query/mocks"
)

var (
	mockCtx = ctx.Background()
	now     = time.Date(2022, 6, 1, 12, 0, 0, 0, time.UTC)
	seller  = domain.Address("0x00000000000000000000000000000000000000a1")
	bidder  = domain.Address("0x00000000000000000000000000000000000000b1")
)

func newAuction(id uint64, end time.Time) *auction.Auction {
	return &auction.Auction{
		Id:                 id,
		Seller:             seller,
		Asset:              domain.AssetRef{Contract: "0x00000000000000000000000000000000000000c1", TokenId: "7"},
		EndTime:            end,
		PaymentUnit:        domain.NativeUnit,
		HighestBidAmount:   big.NewInt(0),
		HighestBidUsdValue: big.NewInt(0),
		CreatedAt:          now,
	}
}

type memorySuite struct {
	suite.Suite
	repo auction.Repo
}

func TestMemory(t *testing.T) {
	suite.Run(t, new(memorySuite))
}

func (t *memorySuite) SetupTest() {
	t.repo = NewMemory()
}

func (t *memorySuite) TestNextIdStartsAtOne() {
	id, err := t.repo.NextId(mockCtx)
	t.NoError(err)
	t.Equal(uint64(auction.FirstId), id)
	id, err = t.repo.NextId(mockCtx)
	t.NoError(err)
	t.Equal(uint64(2), id)
}

func (t *memorySuite) TestInsertDuplicate() {
	t.NoError(t.repo.Insert(mockCtx, newAuction(1, now)))
	t.Equal(query.ErrDuplicateKey, t.repo.Insert(mockCtx, newAuction(1, now)))
}

func (t *memorySuite) TestFindOneReturnsCopy() {
	t.NoError(t.repo.Insert(mockCtx, newAuction(1, now)))

	a, err := t.repo.FindOne(mockCtx, 1)
	t.NoError(err)
	a.HighestBidAmount.SetInt64(99)

	b, err := t.repo.FindOne(mockCtx, 1)
	t.NoError(err)
	t.Equal(int64(0), b.HighestBidAmount.Int64())

	missing, err := t.repo.FindOne(mockCtx, 2)
	t.NoError(err)
	t.Nil(missing)
}

func (t *memorySuite) TestUpdateBidAndSettle() {
	t.NoError(t.repo.Insert(mockCtx, newAuction(1, now)))
	t.NoError(t.repo.UpdateBid(mockCtx, 1, auction.Bid{Bidder: bidder, Amount: big.NewInt(5), UsdValue: big.NewInt(10)}))
	t.NoError(t.repo.MarkSettled(mockCtx, 1, true, &now))

	a, err := t.repo.FindOne(mockCtx, 1)
	t.NoError(err)
	t.Equal(bidder, a.HighestBidder)
	t.Equal("10", a.HighestBidUsdValue.String())
	t.True(a.Settled)
	t.Equal(now, *a.SettledAt)

	t.ErrorIs(t.repo.UpdateBid(mockCtx, 9, auction.Bid{}), domain.ErrNotFound)
	t.ErrorIs(t.repo.MarkSettled(mockCtx, 9, true, nil), domain.ErrNotFound)
}

func (t *memorySuite) TestFindAll() {
	for i := uint64(1); i <= 3; i++ {
		t.NoError(t.repo.Insert(mockCtx, newAuction(i, now.Add(time.Duration(i)*time.Hour))))
	}
	t.NoError(t.repo.MarkSettled(mockCtx, 1, true, &now))

	res, err := t.repo.FindAll(mockCtx, auction.Filter{Settled: ptr.Bool(false)})
	t.NoError(err)
	t.Len(res, 2)
	t.Equal(uint64(2), res[0].Id)

	cutoff := now.Add(2 * time.Hour)
	res, err = t.repo.FindAll(mockCtx, auction.Filter{Settled: ptr.Bool(false), EndedBefore: &cutoff})
	t.NoError(err)
	t.Len(res, 1)

	res, err = t.repo.FindAll(mockCtx, auction.Filter{Offset: 1, Limit: 1})
	t.NoError(err)
	t.Len(res, 1)
	t.Equal(uint64(2), res[0].Id)

	res, err = t.repo.FindAll(mockCtx, auction.Filter{Offset: 5})
	t.NoError(err)
	t.Len(res, 0)
}

type mongoSuite struct {
	suite.Suite
	q    *queryMocks.Mongo
	repo *impl
}

func TestMongo(t *testing.T) {
	suite.Run(t, new(mongoSuite))
}

func (t *mongoSuite) SetupTest() {
	t.q = &queryMocks.Mongo{}
	t.repo = New(t.q).(*impl)
}

func (t *mongoSuite) TearDownTest() {
	t.q.AssertExpectations(t.T())
}

func (t *mongoSuite) TestNextId() {
	t.q.On("Increment", mockCtx, domain.TableCounters, bson.M{"name": auction.CounterName}, mock.Anything, "seq", 1).
		Run(func(args mock.Arguments) {
			args.Get(3).(*counterDoc).Seq = 4
		}).Return(nil).Once()

	id, err := t.repo.NextId(mockCtx)
	t.NoError(err)
	t.Equal(uint64(4), id)
}

func (t *mongoSuite) TestFindOneDecodesAmounts() {
	t.q.On("FindOne", mockCtx, domain.TableAuctions, bson.M{"auctionId": uint64(3)}, mock.Anything).
		Run(func(args mock.Arguments) {
			*args.Get(3).(*auctionDoc) = auctionDoc{
				Id:                 3,
				HighestBidAmount:   "1000000000000000000000000000000",
				HighestBidUsdValue: "2000",
				HighestBidder:      bidder,
			}
		}).Return(nil).Once()

	a, err := t.repo.FindOne(mockCtx, 3)
	t.NoError(err)
	t.Equal("1000000000000000000000000000000", a.HighestBidAmount.String())
	t.Equal(bidder, a.HighestBidder)
}

func (t *mongoSuite) TestFindOneMissing() {
	t.q.On("FindOne", mockCtx, domain.TableAuctions, bson.M{"auctionId": uint64(3)}, mock.Anything).
		Return(query.ErrNotFound).Once()

	a, err := t.repo.FindOne(mockCtx, 3)
	t.NoError(err)
	t.Nil(a)
}

func (t *mongoSuite) TestUpdateBid() {
	update := bson.M{
		"highestBidder":      bidder,
		"highestBidAmount":   "5",
		"highestBidUsdValue": "0",
	}
	t.q.On("Patch", mockCtx, domain.TableAuctions, bson.M{"auctionId": uint64(3)}, update).Return(nil).Once()
	t.NoError(t.repo.UpdateBid(mockCtx, 3, auction.Bid{Bidder: bidder, Amount: big.NewInt(5)}))

	t.q.On("Patch", mockCtx, domain.TableAuctions, bson.M{"auctionId": uint64(4)}, mock.Anything).Return(query.ErrNotFound).Once()
	t.ErrorIs(t.repo.UpdateBid(mockCtx, 4, auction.Bid{}), domain.ErrNotFound)
}

func (t *mongoSuite) TestToFilter() {
	unit := domain.Address("0xABC")
	qry, err := toFilter(auction.Filter{PaymentUnit: &unit, Settled: ptr.Bool(true)})
	t.NoError(err)
	t.Equal(bson.M{"paymentUnit": domain.Address("0xabc"), "settled": true}, qry)

	qry, err = toFilter(auction.Filter{})
	t.NoError(err)
	t.Equal(bson.M{"auctionId": bson.M{"$gte": auction.FirstId}}, qry)
}
