package repository

import (
	"sort"
	"sync"
	"time"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/auction"
	"github.com/x-xyz/goauction/service/query"
)

type memory struct {
	mu       sync.RWMutex
	seq      uint64
	auctions map[uint64]*auction.Auction
}

// NewMemory keeps auctions in process, for sandbox runs and tests.
func NewMemory() auction.Repo {
	return &memory{auctions: map[uint64]*auction.Auction{}}
}

func (im *memory) NextId(c ctx.Ctx) (uint64, error) {
	im.mu.Lock()
	defer im.mu.Unlock()
	im.seq++
	return im.seq, nil
}

func (im *memory) Insert(c ctx.Ctx, a *auction.Auction) error {
	im.mu.Lock()
	defer im.mu.Unlock()
	if _, ok := im.auctions[a.Id]; ok {
		return query.ErrDuplicateKey
	}
	im.auctions[a.Id] = a.Clone()
	return nil
}

func (im *memory) FindOne(c ctx.Ctx, id uint64) (*auction.Auction, error) {
	im.mu.RLock()
	defer im.mu.RUnlock()
	a, ok := im.auctions[id]
	if !ok {
		return nil, nil
	}
	return a.Clone(), nil
}

func (im *memory) FindAll(c ctx.Ctx, filter auction.Filter) ([]*auction.Auction, error) {
	im.mu.RLock()
	defer im.mu.RUnlock()

	res := []*auction.Auction{}
	for _, a := range im.auctions {
		if matches(a, filter) {
			res = append(res, a.Clone())
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Id < res[j].Id })

	if filter.Offset >= len(res) {
		return []*auction.Auction{}, nil
	}
	res = res[filter.Offset:]
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if len(res) > limit {
		res = res[:limit]
	}
	return res, nil
}

func matches(a *auction.Auction, filter auction.Filter) bool {
	if filter.Seller != nil && !a.Seller.Equals(*filter.Seller) {
		return false
	}
	if filter.PaymentUnit != nil && !a.PaymentUnit.Equals(*filter.PaymentUnit) {
		return false
	}
	if filter.Settled != nil && a.Settled != *filter.Settled {
		return false
	}
	if filter.EndedBefore != nil && a.EndTime.After(*filter.EndedBefore) {
		return false
	}
	return true
}

func (im *memory) UpdateBid(c ctx.Ctx, id uint64, bid auction.Bid) error {
	im.mu.Lock()
	defer im.mu.Unlock()
	a, ok := im.auctions[id]
	if !ok {
		return domain.ErrNotFound
	}
	next := a.Clone()
	next.HighestBidder = bid.Bidder
	next.HighestBidAmount = bid.Amount
	next.HighestBidUsdValue = bid.UsdValue
	im.auctions[id] = next.Clone()
	return nil
}

func (im *memory) MarkSettled(c ctx.Ctx, id uint64, settled bool, at *time.Time) error {
	im.mu.Lock()
	defer im.mu.Unlock()
	a, ok := im.auctions[id]
	if !ok {
		return domain.ErrNotFound
	}
	next := a.Clone()
	next.Settled = settled
	next.SettledAt = at
	im.auctions[id] = next.Clone()
	return nil
}
