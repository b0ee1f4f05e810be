package chain

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"golang.org/x/xerrors"

	bCtx "github.com/x-xyz/goauction/base/ctx"
	baseeth "github.com/x-xyz/goauction/base/ethereum"
	"github.com/x-xyz/goauction/base/log"
)

var (
	ErrNoSigner   = errors.New("no signer configured")
	ErrTxReverted = errors.New("transaction reverted")

	// ErrCallReverted is returned when the node executed a call and the contract reverted it.
	ErrCallReverted = errors.New("call reverted")
)

// revertCode is the json-rpc error code geth uses for a revert carrying data.
const revertCode = 3

const (
	defaultMaxInflight = 16
	defaultMineTimeout = 3 * time.Minute
	gasLimitMarginPct  = 20
)

type ClientCfg struct {
	ChainId     int64
	RpcUrl      string
	PrivateKey  string
	MaxInflight int
	MineTimeout time.Duration
}

// Backend is the slice of the rpc api used by Client.
type Backend interface {
	bind.DeployBackend
	CallContract(ctx context.Context, msg ethereum.CallMsg, blk *big.Int) ([]byte, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
}

type Client interface {
	Call(ctx bCtx.Ctx, addr common.Address, blk *big.Int, _abi abi.ABI, method string, params ...interface{}) ([]interface{}, error)
	// Transact signs and sends a contract call with the configured key and waits until it is mined.
	Transact(ctx bCtx.Ctx, addr common.Address, _abi abi.ABI, method string, params ...interface{}) (*types.Receipt, error)
	// From is the address transactions are sent from.
	From() common.Address
}

type clientImpl struct {
	backend     Backend
	chainId     *big.Int
	key         *ecdsa.PrivateKey
	from        common.Address
	mineTimeout time.Duration
	sendLock    chan struct{}
}

func NewClient(ctx bCtx.Ctx, cfg *ClientCfg) (Client, error) {
	client, err := ethclient.DialContext(ctx, cfg.RpcUrl)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"chainId": cfg.ChainId,
		}).Error("failed to dial rpc")
		return nil, err
	}
	inflight := cfg.MaxInflight
	if inflight <= 0 {
		inflight = defaultMaxInflight
	}
	return NewClientWithBackend(cfg, baseeth.NewTrottledClient(client, inflight))
}

func NewClientWithBackend(cfg *ClientCfg, b Backend) (Client, error) {
	im := &clientImpl{
		backend:     b,
		chainId:     big.NewInt(cfg.ChainId),
		mineTimeout: cfg.MineTimeout,
		sendLock:    make(chan struct{}, 1),
	}
	if im.mineTimeout <= 0 {
		im.mineTimeout = defaultMineTimeout
	}
	if cfg.PrivateKey != "" {
		key, from, err := baseeth.LoadKey(cfg.PrivateKey)
		if err != nil {
			return nil, xerrors.Errorf("invalid private key: %w", err)
		}
		im.key = key
		im.from = from
	}
	return im, nil
}

func (c *clientImpl) From() common.Address {
	return c.from
}

func (c *clientImpl) Call(ctx bCtx.Ctx, addr common.Address, blk *big.Int, _abi abi.ABI, method string, params ...interface{}) ([]interface{}, error) {
	data, err := _abi.Pack(method, params...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"params": params,
			"err":    err,
		}).Error("abi.Pack failed")
		return nil, err
	}
	msg := ethereum.CallMsg{
		To:   &addr,
		Data: data,
	}
	res, err := c.backend.CallContract(ctx, msg, blk)
	if err != nil {
		ctx.WithFields(log.Fields{"err": err, "method": method, "addr": addr.Hex()}).Error("backend.CallContract failed")
		if isRevert(err) {
			return nil, xerrors.Errorf("%s %v: %w", method, err, ErrCallReverted)
		}
		return nil, err
	}
	unpacked, err := _abi.Unpack(method, res)
	if err != nil {
		ctx.WithFields(log.Fields{"err": err, "method": method}).Error("abi.Unpack failed")
		return nil, err
	}
	return unpacked, nil
}

func (c *clientImpl) Transact(ctx bCtx.Ctx, addr common.Address, _abi abi.ABI, method string, params ...interface{}) (*types.Receipt, error) {
	if c.key == nil {
		return nil, ErrNoSigner
	}
	data, err := _abi.Pack(method, params...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"params": params,
			"err":    err,
		}).Error("abi.Pack failed")
		return nil, err
	}

	tx, err := c.send(ctx, addr, data)
	if err != nil {
		return nil, err
	}

	ctx = bCtx.WithValue(ctx, "tx", tx.Hash().Hex())
	mineCtx, cancel := bCtx.WithTimeout(ctx, c.mineTimeout)
	defer cancel()
	receipt, err := bind.WaitMined(mineCtx, c.backend, tx)
	if err != nil {
		ctx.WithField("err", err).Error("bind.WaitMined failed")
		return nil, err
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		ctx.WithField("method", method).Error("transaction reverted")
		return receipt, ErrTxReverted
	}
	return receipt, nil
}

// send serializes nonce allocation so concurrent transactions from one key do not collide.
func (c *clientImpl) send(ctx bCtx.Ctx, to common.Address, data []byte) (*types.Transaction, error) {
	select {
	case c.sendLock <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	defer func() { <-c.sendLock }()

	nonce, err := c.backend.PendingNonceAt(ctx, c.from)
	if err != nil {
		ctx.WithField("err", err).Error("backend.PendingNonceAt failed")
		return nil, err
	}
	gasPrice, err := c.backend.SuggestGasPrice(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("backend.SuggestGasPrice failed")
		return nil, err
	}
	gas, err := c.backend.EstimateGas(ctx, ethereum.CallMsg{From: c.from, To: &to, Data: data})
	if err != nil {
		ctx.WithField("err", err).Error("backend.EstimateGas failed")
		return nil, err
	}
	gas += gas * gasLimitMarginPct / 100

	tx := types.NewTransaction(nonce, to, big.NewInt(0), gas, gasPrice, data)
	signed, err := types.SignTx(tx, types.LatestSignerForChainID(c.chainId), c.key)
	if err != nil {
		ctx.WithField("err", err).Error("types.SignTx failed")
		return nil, err
	}
	if err := c.backend.SendTransaction(ctx, signed); err != nil {
		ctx.WithField("err", err).Error("backend.SendTransaction failed")
		return nil, err
	}
	return signed, nil
}

func isRevert(err error) bool {
	var rpcErr rpc.Error
	if xerrors.As(err, &rpcErr) && rpcErr.ErrorCode() == revertCode {
		return true
	}
	return strings.Contains(err.Error(), "execution reverted")
}
