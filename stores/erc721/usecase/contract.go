package usecase

import (
	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/xerrors"

	"github.com/x-xyz/goauction/base/abi"
	bCtx "github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/service/chain"
)

// erc721Registry reads ownership from ERC-721 contracts and moves tokens with
// the client's signing key, which must be the engine escrow.
type erc721Registry struct {
	client chain.Client
}

func NewErc721Registry(client chain.Client) domain.AssetRegistry {
	return &erc721Registry{
		client: client,
	}
}

func (r *erc721Registry) OwnerOf(ctx bCtx.Ctx, asset domain.AssetRef) (domain.Address, error) {
	id, err := asset.TokenId.ToBig()
	if err != nil {
		return "", xerrors.Errorf("%v: %w", err, domain.ErrBadParamInput)
	}
	res, err := r.client.Call(ctx, asset.Contract.ToCommon(), nil, abi.ERC721TokenABI, "ownerOf", id)
	if xerrors.Is(err, chain.ErrCallReverted) {
		// ownerOf reverts for tokens that were never minted or got burned
		return "", xerrors.Errorf("%s: %w", asset, domain.ErrNotFound)
	} else if err != nil {
		ctx.WithFields(log.Fields{"err": err, "asset": asset.String()}).Error("client.Call ownerOf failed")
		return "", err
	}
	owner, ok := res[0].(common.Address)
	if !ok {
		return "", xerrors.Errorf("unexpected ownerOf result %T", res[0])
	}
	return domain.AddressFromCommon(owner), nil
}

func (r *erc721Registry) IsApproved(ctx bCtx.Ctx, asset domain.AssetRef, owner, operator domain.Address) (bool, error) {
	id, err := asset.TokenId.ToBig()
	if err != nil {
		return false, xerrors.Errorf("%v: %w", err, domain.ErrBadParamInput)
	}
	contract := asset.Contract.ToCommon()

	res, err := r.client.Call(ctx, contract, nil, abi.ERC721TokenABI, "getApproved", id)
	if err != nil {
		ctx.WithFields(log.Fields{"err": err, "asset": asset.String()}).Error("client.Call getApproved failed")
		return false, err
	}
	if approved, ok := res[0].(common.Address); ok && domain.AddressFromCommon(approved).Equals(operator) {
		return true, nil
	}

	res, err = r.client.Call(ctx, contract, nil, abi.ERC721TokenABI, "isApprovedForAll", owner.ToCommon(), operator.ToCommon())
	if err != nil {
		ctx.WithFields(log.Fields{"err": err, "asset": asset.String()}).Error("client.Call isApprovedForAll failed")
		return false, err
	}
	all, _ := res[0].(bool)
	return all, nil
}

func (r *erc721Registry) Transfer(ctx bCtx.Ctx, asset domain.AssetRef, from, to domain.Address) error {
	id, err := asset.TokenId.ToBig()
	if err != nil {
		return xerrors.Errorf("%v: %w", err, domain.ErrBadParamInput)
	}
	receipt, err := r.client.Transact(ctx, asset.Contract.ToCommon(), abi.ERC721TokenABI, "safeTransferFrom", from.ToCommon(), to.ToCommon(), id)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"asset": asset.String(),
			"from":  from,
			"to":    to,
		}).Error("client.Transact safeTransferFrom failed")
		return err
	}
	ctx.WithFields(log.Fields{
		"asset": asset.String(),
		"to":    to,
		"tx":    receipt.TxHash.Hex(),
	}).Info("asset transferred")
	return nil
}
