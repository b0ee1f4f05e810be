package chain

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/suite"

	baseabi "github.com/x-xyz/goauction/base/abi"
	bCtx "github.com/x-xyz/goauction/base/ctx"
	baseeth "github.com/x-xyz/goauction/base/ethereum"
)

var (
	mockCtx = bCtx.Background()
)

type fakeBackend struct {
	callRes  []byte
	callErr  error
	status   uint64
	nonce    uint64
	sent     []*types.Transaction
	lastCall ethereum.CallMsg
}

func (f *fakeBackend) CallContract(ctx context.Context, msg ethereum.CallMsg, blk *big.Int) ([]byte, error) {
	f.lastCall = msg
	return f.callRes, f.callErr
}

func (f *fakeBackend) PendingNonceAt(ctx context.Context, account common.Address) (uint64, error) {
	return f.nonce, nil
}

func (f *fakeBackend) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	return big.NewInt(1e9), nil
}

func (f *fakeBackend) EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error) {
	return 100000, nil
}

func (f *fakeBackend) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	f.sent = append(f.sent, tx)
	return nil
}

func (f *fakeBackend) TransactionReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	return &types.Receipt{Status: f.status, TxHash: hash}, nil
}

func (f *fakeBackend) CodeAt(ctx context.Context, account common.Address, blk *big.Int) ([]byte, error) {
	return []byte{1}, nil
}

type testsuite struct {
	suite.Suite
	backend *fakeBackend
	from    common.Address
	subject Client
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (t *testsuite) SetupTest() {
	priv, pub, err := baseeth.GenerateKey()
	t.Require().NoError(err)
	t.from = crypto.PubkeyToAddress(*pub)
	t.backend = &fakeBackend{status: types.ReceiptStatusSuccessful, nonce: 7}
	t.subject, err = NewClientWithBackend(&ClientCfg{
		ChainId:    1337,
		PrivateKey: hexutil.Encode(crypto.FromECDSA(priv)),
	}, t.backend)
	t.Require().NoError(err)
}

func (t *testsuite) TestCall() {
	owner := common.HexToAddress("0x00000000000000000000000000000000000000aa")
	out, err := baseabi.ERC721TokenABI.Methods["ownerOf"].Outputs.Pack(owner)
	t.Require().NoError(err)
	t.backend.callRes = out

	contract := common.HexToAddress("0x00000000000000000000000000000000000000c1")
	res, err := t.subject.Call(mockCtx, contract, nil, baseabi.ERC721TokenABI, "ownerOf", big.NewInt(5))
	t.NoError(err)
	t.Equal(owner, res[0].(common.Address))
	t.Equal(contract, *t.backend.lastCall.To)
}

func (t *testsuite) TestCallFailed() {
	errRpc := errors.New("rpc down")
	t.backend.callErr = errRpc
	_, err := t.subject.Call(mockCtx, common.Address{}, nil, baseabi.ERC721TokenABI, "ownerOf", big.NewInt(5))
	t.ErrorIs(err, errRpc)

	_, err = t.subject.Call(mockCtx, common.Address{}, nil, baseabi.ERC721TokenABI, "noSuchMethod")
	t.Error(err)
}

type rpcErr struct {
	code int
	msg  string
}

func (e *rpcErr) Error() string  { return e.msg }
func (e *rpcErr) ErrorCode() int { return e.code }

func (t *testsuite) TestCallReverted() {
	for _, callErr := range []error{
		&rpcErr{code: 3, msg: "execution reverted: ERC721: invalid token ID"},
		errors.New("execution reverted"),
	} {
		t.backend.callErr = callErr
		_, err := t.subject.Call(mockCtx, common.Address{}, nil, baseabi.ERC721TokenABI, "ownerOf", big.NewInt(5))
		t.ErrorIs(err, ErrCallReverted)
	}

	t.backend.callErr = &rpcErr{code: -32000, msg: "header not found"}
	_, err := t.subject.Call(mockCtx, common.Address{}, nil, baseabi.ERC721TokenABI, "ownerOf", big.NewInt(5))
	t.Error(err)
	t.NotErrorIs(err, ErrCallReverted)
}

func (t *testsuite) TestTransact() {
	t.Equal(t.from, t.subject.From())

	to := common.HexToAddress("0x00000000000000000000000000000000000000bb")
	receipt, err := t.subject.Transact(mockCtx, common.HexToAddress("0x00000000000000000000000000000000000000c1"),
		baseabi.ERC721TokenABI, "safeTransferFrom", t.from, to, big.NewInt(5))
	t.Require().NoError(err)
	t.Equal(types.ReceiptStatusSuccessful, receipt.Status)

	t.Require().Len(t.backend.sent, 1)
	tx := t.backend.sent[0]
	t.Equal(uint64(7), tx.Nonce())
	t.Equal(uint64(120000), tx.Gas())
	sender, err := types.Sender(types.LatestSignerForChainID(big.NewInt(1337)), tx)
	t.NoError(err)
	t.Equal(t.from, sender)
}

func (t *testsuite) TestTransactReverted() {
	t.backend.status = types.ReceiptStatusFailed
	_, err := t.subject.Transact(mockCtx, common.Address{}, baseabi.ERC721TokenABI, "safeTransferFrom",
		t.from, t.from, big.NewInt(1))
	t.ErrorIs(err, ErrTxReverted)
}

func (t *testsuite) TestTransactWithoutSigner() {
	c, err := NewClientWithBackend(&ClientCfg{ChainId: 1}, t.backend)
	t.Require().NoError(err)
	_, err = c.Transact(mockCtx, common.Address{}, baseabi.ERC721TokenABI, "safeTransferFrom",
		t.from, t.from, big.NewInt(1))
	t.ErrorIs(err, ErrNoSigner)
}
