package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/service/query"
	queryMocks "github.com/x-xyz/goauction/service/query/mocks"
)

var (
	mockCtx = ctx.Background()
	now     = time.Date(2022, 6, 1, 12, 0, 0, 0, time.UTC)
	admin   = domain.Address("0x00000000000000000000000000000000000000d1")
)

type memorySuite struct {
	suite.Suite
	repo domain.RoleGrantRepo
}

func TestMemory(t *testing.T) {
	suite.Run(t, new(memorySuite))
}

func (t *memorySuite) SetupTest() {
	t.repo = NewMemory()
}

func (t *memorySuite) TestCreateFindDelete() {
	addr := domain.Address("0x00000000000000000000000000000000000000AB")
	t.NoError(t.repo.Create(mockCtx, domain.RoleGrant{Address: addr, Capability: domain.CapabilityAdmin, GrantedBy: admin, GrantedAt: now}))
	t.NoError(t.repo.Create(mockCtx, domain.RoleGrant{Address: addr, Capability: domain.CapabilityAdmin, GrantedBy: admin, GrantedAt: now.Add(time.Hour)}))

	g, err := t.repo.FindOne(mockCtx, addr, domain.CapabilityAdmin)
	t.NoError(err)
	t.Equal(addr.ToLower(), g.Address)
	t.Equal(now, g.GrantedAt)

	g, err = t.repo.FindOne(mockCtx, addr, domain.CapabilityUpgrade)
	t.NoError(err)
	t.Nil(g)

	all, err := t.repo.FindAll(mockCtx, domain.CapabilityAdmin)
	t.NoError(err)
	t.Len(all, 1)

	t.NoError(t.repo.Delete(mockCtx, addr, domain.CapabilityAdmin))
	g, err = t.repo.FindOne(mockCtx, addr, domain.CapabilityAdmin)
	t.NoError(err)
	t.Nil(g)
}

type mongoSuite struct {
	suite.Suite
	q    *queryMocks.Mongo
	repo domain.RoleGrantRepo
}

func TestMongo(t *testing.T) {
	suite.Run(t, new(mongoSuite))
}

func (t *mongoSuite) SetupTest() {
	t.q = &queryMocks.Mongo{}
	t.repo = New(t.q)
}

func (t *mongoSuite) TearDownTest() {
	t.q.AssertExpectations(t.T())
}

func (t *mongoSuite) TestFindOneMissing() {
	qry := bson.M{"address": admin, "capability": domain.CapabilityAdmin}
	t.q.On("FindOne", mockCtx, domain.TableRoleGrants, qry, mock.Anything).Return(query.ErrNotFound).Once()

	g, err := t.repo.FindOne(mockCtx, admin, domain.CapabilityAdmin)
	t.NoError(err)
	t.Nil(g)
}

func (t *mongoSuite) TestCreateDuplicateIsNoop() {
	t.q.On("Insert", mockCtx, domain.TableRoleGrants, mock.Anything).Return(query.ErrDuplicateKey).Once()

	t.NoError(t.repo.Create(mockCtx, domain.RoleGrant{Address: admin, Capability: domain.CapabilityAdmin}))
}

func (t *mongoSuite) TestFindAllByCapability() {
	qry := bson.M{"address": bson.M{"$exists": true}, "capability": domain.CapabilityUpgrade}
	t.q.On("Search", mockCtx, domain.TableRoleGrants, 0, 0, "grantedAt", qry, mock.Anything).Return(nil).Once()

	res, err := t.repo.FindAll(mockCtx, domain.CapabilityUpgrade)
	t.NoError(err)
	t.Len(res, 0)
}
