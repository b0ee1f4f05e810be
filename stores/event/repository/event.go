package repository

import (
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/auction"
	"github.com/x-xyz/goauction/service/query"
)

const defaultLimit = 100

type impl struct {
	q query.Mongo
}

func New(q query.Mongo) auction.EventRepo {
	return &impl{q}
}

// EnsureIndexes creates the per auction history index.
func EnsureIndexes(c ctx.Ctx, q query.Mongo) error {
	return q.EnsureIndexes(c, domain.TableAuctionEvents,
		query.Index{Keys: []string{"id"}, Unique: true},
		query.Index{Keys: []string{"auctionId", "createdAt"}},
	)
}

func (im *impl) Insert(c ctx.Ctx, ev *auction.Event) error {
	if err := im.q.Insert(c, domain.TableAuctionEvents, ev); err != nil {
		c.WithFields(log.Fields{"err": err, "id": ev.Id}).Error("q.Insert failed")
		return err
	}
	return nil
}

func (im *impl) FindByAuction(c ctx.Ctx, auctionId uint64, offset, limit int) ([]*auction.Event, error) {
	if limit <= 0 {
		limit = defaultLimit
	}
	res := []*auction.Event{}
	if err := im.q.Search(c, domain.TableAuctionEvents, offset, limit, "createdAt", bson.M{"auctionId": auctionId}, &res); err != nil {
		c.WithFields(log.Fields{"err": err, "auctionId": auctionId}).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}

type memory struct {
	mu     sync.RWMutex
	events []auction.Event
}

// NewMemory keeps events in process, for sandbox runs and tests.
func NewMemory() auction.EventRepo {
	return &memory{}
}

func (im *memory) Insert(c ctx.Ctx, ev *auction.Event) error {
	im.mu.Lock()
	defer im.mu.Unlock()
	im.events = append(im.events, *ev)
	return nil
}

func (im *memory) FindByAuction(c ctx.Ctx, auctionId uint64, offset, limit int) ([]*auction.Event, error) {
	im.mu.RLock()
	defer im.mu.RUnlock()
	if limit <= 0 {
		limit = defaultLimit
	}
	res := []*auction.Event{}
	for i := range im.events {
		if im.events[i].AuctionId == auctionId {
			ev := im.events[i]
			res = append(res, &ev)
		}
	}
	sort.SliceStable(res, func(i, j int) bool { return res[i].CreatedAt.Before(res[j].CreatedAt) })
	if offset >= len(res) {
		return []*auction.Event{}, nil
	}
	res = res[offset:]
	if len(res) > limit {
		res = res[:limit]
	}
	return res, nil
}
