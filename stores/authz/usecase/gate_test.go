package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/goauction/base/clock"
	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/mocks"
	"github.com/x-xyz/goauction/service/cache"
	"github.com/x-xyz/goauction/service/cache/provider/primitive"
)

var (
	mockCtx = ctx.Background()
	now     = time.Date(2022, 6, 1, 12, 0, 0, 0, time.UTC)
	admin   = domain.Address("0x00000000000000000000000000000000000000d1")
	alice   = domain.Address("0x00000000000000000000000000000000000000b1")
)

type testsuite struct {
	suite.Suite
	repo *mocks.RoleGrantRepo
	im   domain.RoleGrantUsecase
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (t *testsuite) SetupTest() {
	t.repo = &mocks.RoleGrantRepo{}
	t.im = New(&GateUseCaseCfg{
		Admins: []string{"0x00000000000000000000000000000000000000D1"},
		Repo:   t.repo,
		Cache: cache.New(cache.ServiceConfig{
			Ttl:   time.Minute,
			Pfx:   "authz",
			Cache: primitive.NewPrimitive("authz", 1),
		}),
		Clock: clock.NewFixed(now),
	})
}

func (t *testsuite) TearDownTest() {
	t.repo.AssertExpectations(t.T())
}

func (t *testsuite) TestStaticAdmin() {
	ok, err := t.im.HasCapability(mockCtx, admin, domain.CapabilityAdmin)
	t.NoError(err)
	t.True(ok)

	ok, err = t.im.HasCapability(mockCtx, domain.EmptyAddress, domain.CapabilityAdmin)
	t.NoError(err)
	t.False(ok)
}

func (t *testsuite) TestStoredGrantIsCached() {
	t.repo.On("FindOne", mock.Anything, alice, domain.CapabilityAdmin).
		Return(&domain.RoleGrant{Address: alice, Capability: domain.CapabilityAdmin}, nil).Once()

	for i := 0; i < 3; i++ {
		ok, err := t.im.HasCapability(mockCtx, alice, domain.CapabilityAdmin)
		t.NoError(err)
		t.True(ok)
	}
}

func (t *testsuite) TestDeniedWithoutGrant() {
	t.repo.On("FindOne", mock.Anything, alice, domain.CapabilityUpgrade).Return(nil, nil).Once()

	ok, err := t.im.HasCapability(mockCtx, alice, domain.CapabilityUpgrade)
	t.NoError(err)
	t.False(ok)
}

func (t *testsuite) TestRepoFailed() {
	errMongo := errors.New("mongo down")
	t.repo.On("FindOne", mock.Anything, alice, domain.CapabilityAdmin).Return(nil, errMongo).Once()

	_, err := t.im.HasCapability(mockCtx, alice, domain.CapabilityAdmin)
	t.ErrorIs(err, errMongo)
}

func (t *testsuite) TestGrantInvalidatesCache() {
	t.repo.On("FindOne", mock.Anything, alice, domain.CapabilityAdmin).Return(nil, nil).Once()
	ok, err := t.im.HasCapability(mockCtx, alice, domain.CapabilityAdmin)
	t.NoError(err)
	t.False(ok)

	t.repo.On("Create", mock.Anything, domain.RoleGrant{
		Address:    alice,
		Capability: domain.CapabilityAdmin,
		GrantedBy:  admin,
		GrantedAt:  now,
	}).Return(nil).Once()
	t.NoError(t.im.Grant(mockCtx, admin, alice, domain.CapabilityAdmin))

	t.repo.On("FindOne", mock.Anything, alice, domain.CapabilityAdmin).
		Return(&domain.RoleGrant{Address: alice}, nil).Once()
	ok, err = t.im.HasCapability(mockCtx, alice, domain.CapabilityAdmin)
	t.NoError(err)
	t.True(ok)
}

func (t *testsuite) TestGrantRequiresAdmin() {
	t.repo.On("FindOne", mock.Anything, alice, domain.CapabilityAdmin).Return(nil, nil).Once()

	t.ErrorIs(t.im.Grant(mockCtx, alice, alice, domain.CapabilityAdmin), domain.ErrUnauthorized)
}

func (t *testsuite) TestRevoke() {
	t.repo.On("Delete", mock.Anything, alice, domain.CapabilityAdmin).Return(nil).Once()

	t.NoError(t.im.Revoke(mockCtx, admin, alice, domain.CapabilityAdmin))
}
