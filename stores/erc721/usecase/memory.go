package usecase

import (
	"sync"

	"golang.org/x/xerrors"

	bCtx "github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/domain"
)

type operatorKey struct {
	owner    domain.Address
	operator domain.Address
}

// MemoryRegistry is an in-process asset ledger for sandbox runs and tests.
// Transfers are sent by operator and follow ERC-721 safeTransferFrom rules.
type MemoryRegistry struct {
	mu        sync.RWMutex
	operator  domain.Address
	owners    map[string]domain.Address
	approved  map[string]domain.Address
	operators map[operatorKey]bool
	// FailTransfers makes every Transfer fail, for exercising compensation.
	FailTransfers bool
}

func NewMemoryRegistry(operator domain.Address) *MemoryRegistry {
	return &MemoryRegistry{
		operator:  operator.ToLower(),
		owners:    map[string]domain.Address{},
		approved:  map[string]domain.Address{},
		operators: map[operatorKey]bool{},
	}
}

// Mint assigns asset to owner, replacing any previous holder.
func (r *MemoryRegistry) Mint(ctx bCtx.Ctx, asset domain.AssetRef, owner domain.Address) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.owners[asset.String()] = owner.ToLower()
	delete(r.approved, asset.String())
}

// SetApprovalForAll lets operator move every asset of owner.
func (r *MemoryRegistry) SetApprovalForAll(ctx bCtx.Ctx, owner, operator domain.Address, approved bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.operators[operatorKey{owner.ToLower(), operator.ToLower()}] = approved
}

// Approve lets operator move asset only.
func (r *MemoryRegistry) Approve(ctx bCtx.Ctx, asset domain.AssetRef, operator domain.Address) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.approved[asset.String()] = operator.ToLower()
}

func (r *MemoryRegistry) OwnerOf(ctx bCtx.Ctx, asset domain.AssetRef) (domain.Address, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	owner, ok := r.owners[asset.String()]
	if !ok {
		return "", domain.ErrNotFound
	}
	return owner, nil
}

func (r *MemoryRegistry) IsApproved(ctx bCtx.Ctx, asset domain.AssetRef, owner, operator domain.Address) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.approved[asset.String()].Equals(operator) {
		return true, nil
	}
	return r.operators[operatorKey{owner.ToLower(), operator.ToLower()}], nil
}

func (r *MemoryRegistry) Transfer(ctx bCtx.Ctx, asset domain.AssetRef, from, to domain.Address) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailTransfers {
		return xerrors.New("transfers disabled")
	}
	owner, ok := r.owners[asset.String()]
	if !ok || !owner.Equals(from) {
		return xerrors.Errorf("%s not owned by %s", asset, from)
	}
	if !owner.Equals(r.operator) && !r.approved[asset.String()].Equals(r.operator) && !r.operators[operatorKey{owner, r.operator}] {
		return xerrors.Errorf("%s: %s is not token owner or approved", asset, r.operator)
	}
	r.owners[asset.String()] = to.ToLower()
	delete(r.approved, asset.String())
	return nil
}
