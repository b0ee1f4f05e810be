package query

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/database/mongoclient"
	"github.com/x-xyz/goauction/domain"
)

var (
	mockCTX = ctx.Background()
)

const (
	mockTable = domain.Table("query_test")
	dbName    = "testdb"
)

type Dummy struct {
	Dummy  string `bson:"dummy"`
	Update string `bson:"updatekey"`
}

// querySuite runs against a live replica set given by MONGO_URI.
type querySuite struct {
	suite.Suite
	im *impl
}

func TestQuery(t *testing.T) {
	if os.Getenv("MONGO_URI") == "" {
		t.Skip("MONGO_URI not set")
	}
	suite.Run(t, new(querySuite))
}

func (q *querySuite) SetupTest() {
	client := mongoclient.MustConnectMongoClient(mongoclient.Config{
		URI:    os.Getenv("MONGO_URI"),
		DBName: dbName,
	})
	q.im = New(client, false).(*impl)
	q.Require().NoError(q.im.collection(mockTable).Drop(mockCTX))
}

func (q *querySuite) TestFindOne() {
	q.Require().NoError(q.im.Upsert(mockCTX, mockTable, bson.M{"dummy": "a"}, Dummy{"a", "b"}))

	result := &Dummy{}
	q.Require().NoError(q.im.FindOne(mockCTX, mockTable, bson.M{"dummy": "a"}, result))
	q.Equal(Dummy{"a", "b"}, *result)

	err := q.im.FindOne(mockCTX, mockTable, bson.M{"dummy": "missing"}, result)
	q.Equal(ErrNotFound, err)
}

func (q *querySuite) TestInsertShouldFailWithDuplicateKey() {
	q.Require().NoError(q.im.EnsureIndexes(mockCTX, mockTable, Index{Keys: []string{"dummy"}, Unique: true}))
	q.Require().NoError(q.im.Insert(mockCTX, mockTable, Dummy{"a", "b"}))
	q.Equal(ErrDuplicateKey, q.im.Insert(mockCTX, mockTable, Dummy{"a", "c"}))
	q.NoError(q.im.Insert(mockCTX, mockTable, Dummy{"b", "c"}))

	n, err := q.im.Count(mockCTX, mockTable, bson.M{})
	q.NoError(err)
	q.Equal(2, n)
}

func (q *querySuite) TestPatch() {
	q.Require().NoError(q.im.Insert(mockCTX, mockTable, Dummy{"a", "b"}))
	q.Require().NoError(q.im.Patch(mockCTX, mockTable, bson.M{"dummy": "a"}, bson.M{"updatekey": "c"}))

	result := &Dummy{}
	q.Require().NoError(q.im.FindOne(mockCTX, mockTable, bson.M{"dummy": "a"}, result))
	q.Equal("c", result.Update)

	q.Equal(ErrNotFound, q.im.Patch(mockCTX, mockTable, bson.M{"dummy": "x"}, bson.M{"updatekey": "c"}))
}

func (q *querySuite) TestIncrement() {
	type counter struct {
		Name string `bson:"name"`
		Seq  uint64 `bson:"seq"`
	}
	res := &counter{}
	q.Require().NoError(q.im.Increment(mockCTX, mockTable, bson.M{"name": "auctionId"}, res, "seq", 1))
	q.Equal(uint64(1), res.Seq)
	q.Require().NoError(q.im.Increment(mockCTX, mockTable, bson.M{"name": "auctionId"}, res, "seq", 1))
	q.Equal(uint64(2), res.Seq)
}

func (q *querySuite) TestRunWithTransactionAborts() {
	// collections must exist before a transaction writes to them
	q.Require().NoError(q.im.Insert(mockCTX, mockTable, Dummy{"seed", ""}))

	errAbort := errors.New("abort")
	err := q.im.RunWithTransaction(mockCTX, func(c ctx.Ctx) error {
		if err := q.im.Insert(c, mockTable, Dummy{"tx", ""}); err != nil {
			return err
		}
		return errAbort
	})
	q.ErrorIs(err, errAbort)

	q.Equal(ErrNotFound, q.im.FindOne(mockCTX, mockTable, bson.M{"dummy": "tx"}, &Dummy{}))
}

func (q *querySuite) TestRemove() {
	q.Require().NoError(q.im.Insert(mockCTX, mockTable, Dummy{"a", "b"}))
	q.NoError(q.im.Remove(mockCTX, mockTable, bson.M{"dummy": "a"}))
	q.Equal(ErrNotFound, q.im.Remove(mockCTX, mockTable, bson.M{"dummy": "a"}))
}
