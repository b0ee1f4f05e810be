package usecase

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/xerrors"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/service/chain"
	chainMocks "github.com/x-xyz/goauction/service/chain/mocks"
)

var (
	mockCtx  = ctx.Background()
	asset    = domain.AssetRef{Contract: "0x00000000000000000000000000000000000000c1", TokenId: "42"}
	seller   = domain.Address("0x00000000000000000000000000000000000000a1")
	escrow   = domain.Address("0x00000000000000000000000000000000000000e1")
	stranger = domain.Address("0x00000000000000000000000000000000000000f1")
)

type registrySuite struct {
	suite.Suite
	client   *chainMocks.Client
	registry *erc721Registry
}

func TestErc721Registry(t *testing.T) {
	suite.Run(t, new(registrySuite))
}

func (t *registrySuite) SetupTest() {
	t.client = &chainMocks.Client{}
	t.registry = NewErc721Registry(t.client).(*erc721Registry)
}

func (t *registrySuite) TearDownTest() {
	t.client.AssertExpectations(t.T())
}

func (t *registrySuite) TestOwnerOf() {
	t.client.On("Call", mockCtx, asset.Contract.ToCommon(), (*big.Int)(nil), mock.Anything, "ownerOf", big.NewInt(42)).
		Return([]interface{}{seller.ToCommon()}, nil).Once()

	owner, err := t.registry.OwnerOf(mockCtx, asset)
	t.NoError(err)
	t.Equal(seller, owner)
}

func (t *registrySuite) TestOwnerOfUnminted() {
	t.client.On("Call", mockCtx, asset.Contract.ToCommon(), (*big.Int)(nil), mock.Anything, "ownerOf", big.NewInt(42)).
		Return(nil, xerrors.Errorf("ownerOf execution reverted: %w", chain.ErrCallReverted)).Once()

	_, err := t.registry.OwnerOf(mockCtx, asset)
	t.ErrorIs(err, domain.ErrNotFound)
}

func (t *registrySuite) TestOwnerOfBadTokenId() {
	_, err := t.registry.OwnerOf(mockCtx, domain.AssetRef{Contract: asset.Contract, TokenId: "x"})
	t.ErrorIs(err, domain.ErrBadParamInput)
}

func (t *registrySuite) TestIsApprovedByToken() {
	t.client.On("Call", mockCtx, asset.Contract.ToCommon(), (*big.Int)(nil), mock.Anything, "getApproved", big.NewInt(42)).
		Return([]interface{}{escrow.ToCommon()}, nil).Once()

	ok, err := t.registry.IsApproved(mockCtx, asset, seller, escrow)
	t.NoError(err)
	t.True(ok)
}

func (t *registrySuite) TestIsApprovedForAll() {
	t.client.On("Call", mockCtx, asset.Contract.ToCommon(), (*big.Int)(nil), mock.Anything, "getApproved", big.NewInt(42)).
		Return([]interface{}{common.Address{}}, nil).Once()
	t.client.On("Call", mockCtx, asset.Contract.ToCommon(), (*big.Int)(nil), mock.Anything, "isApprovedForAll", seller.ToCommon(), stranger.ToCommon()).
		Return([]interface{}{false}, nil).Once()

	ok, err := t.registry.IsApproved(mockCtx, asset, seller, stranger)
	t.NoError(err)
	t.False(ok)
}

func (t *registrySuite) TestTransfer() {
	t.client.On("Transact", mockCtx, asset.Contract.ToCommon(), mock.Anything, "safeTransferFrom", seller.ToCommon(), escrow.ToCommon(), big.NewInt(42)).
		Return(&types.Receipt{Status: types.ReceiptStatusSuccessful}, nil).Once()

	t.NoError(t.registry.Transfer(mockCtx, asset, seller, escrow))
}

func (t *registrySuite) TestTransferReverted() {
	errRevert := xerrors.New("transaction reverted")
	t.client.On("Transact", mockCtx, asset.Contract.ToCommon(), mock.Anything, "safeTransferFrom", escrow.ToCommon(), seller.ToCommon(), big.NewInt(42)).
		Return(nil, errRevert).Once()

	t.ErrorIs(t.registry.Transfer(mockCtx, asset, escrow, seller), errRevert)
}

type memorySuite struct {
	suite.Suite
	registry *MemoryRegistry
}

func TestMemoryRegistry(t *testing.T) {
	suite.Run(t, new(memorySuite))
}

func (t *memorySuite) SetupTest() {
	t.registry = NewMemoryRegistry(escrow)
	t.registry.Mint(mockCtx, asset, seller)
}

func (t *memorySuite) TestApprovals() {
	ok, err := t.registry.IsApproved(mockCtx, asset, seller, escrow)
	t.NoError(err)
	t.False(ok)

	t.registry.SetApprovalForAll(mockCtx, seller, escrow, true)
	ok, err = t.registry.IsApproved(mockCtx, asset, seller, escrow)
	t.NoError(err)
	t.True(ok)

	t.registry.Approve(mockCtx, asset, stranger)
	ok, err = t.registry.IsApproved(mockCtx, asset, seller, stranger)
	t.NoError(err)
	t.True(ok)
}

func (t *memorySuite) TestTransfer() {
	t.Error(t.registry.Transfer(mockCtx, asset, stranger, escrow))
	t.Error(t.registry.Transfer(mockCtx, asset, seller, escrow), "escrow is not approved yet")

	t.registry.SetApprovalForAll(mockCtx, seller, escrow, true)
	t.NoError(t.registry.Transfer(mockCtx, asset, seller, escrow))

	owner, err := t.registry.OwnerOf(mockCtx, asset)
	t.NoError(err)
	t.Equal(escrow, owner)

	_, err = t.registry.OwnerOf(mockCtx, domain.AssetRef{Contract: asset.Contract, TokenId: "1"})
	t.ErrorIs(err, domain.ErrNotFound)
}

func (t *memorySuite) TestTransferTokenApproval() {
	t.registry.Approve(mockCtx, asset, escrow)
	t.NoError(t.registry.Transfer(mockCtx, asset, seller, stranger))

	// the approval is cleared with the transfer and stranger never approved the escrow
	err := t.registry.Transfer(mockCtx, asset, stranger, seller)
	t.Error(err)
	t.Contains(err.Error(), "not token owner or approved")

	owner, err := t.registry.OwnerOf(mockCtx, asset)
	t.NoError(err)
	t.Equal(stranger, owner)
}
