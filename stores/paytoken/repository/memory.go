package repository

import (
	"sort"
	"sync"

	bCtx "github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/domain"
)

type priceFeedMemoryRepo struct {
	mu       sync.RWMutex
	bindings map[domain.Address]domain.PriceFeedBinding
}

// NewPriceFeedMemoryRepo keeps bindings in process, for sandbox runs and tests.
func NewPriceFeedMemoryRepo() domain.PriceFeedRepo {
	return &priceFeedMemoryRepo{bindings: map[domain.Address]domain.PriceFeedBinding{}}
}

func (r *priceFeedMemoryRepo) FindOne(ctx bCtx.Ctx, unit domain.Address) (*domain.PriceFeedBinding, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.bindings[unit.ToLower()]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

func (r *priceFeedMemoryRepo) FindAll(ctx bCtx.Ctx) ([]*domain.PriceFeedBinding, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res := make([]*domain.PriceFeedBinding, 0, len(r.bindings))
	for _, b := range r.bindings {
		b := b
		res = append(res, &b)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].PaymentUnit < res[j].PaymentUnit })
	return res, nil
}

func (r *priceFeedMemoryRepo) Upsert(ctx bCtx.Ctx, binding *domain.PriceFeedBinding) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b := *binding
	b.PaymentUnit = b.PaymentUnit.ToLower()
	b.Oracle = b.Oracle.ToLower()
	r.bindings[b.PaymentUnit] = b
	return nil
}
