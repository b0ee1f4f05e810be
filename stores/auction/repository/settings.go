package repository

import (
	"sync"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/auction"
	"github.com/x-xyz/goauction/service/query"
)

const settingsName = "platform"

type settingsDoc struct {
	Name     string         `bson:"name"`
	Treasury domain.Address `bson:"treasury"`
	FeeBps   uint32         `bson:"feeBps"`
}

type settingsImpl struct {
	q query.Mongo
}

func NewSettings(q query.Mongo) auction.SettingsRepo {
	return &settingsImpl{q}
}

// Get returns zero settings until an admin writes them.
func (im *settingsImpl) Get(c ctx.Ctx) (*auction.Settings, error) {
	doc := &settingsDoc{}
	if err := im.q.FindOne(c, domain.TableSettings, bson.M{"name": settingsName}, doc); err == query.ErrNotFound {
		return &auction.Settings{}, nil
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return &auction.Settings{Treasury: doc.Treasury, FeeBps: doc.FeeBps}, nil
}

func (im *settingsImpl) SetTreasury(c ctx.Ctx, treasury domain.Address) error {
	return im.update(c, func(s *auction.Settings) { s.Treasury = treasury.ToLower() })
}

func (im *settingsImpl) SetFeeBps(c ctx.Ctx, bps uint32) error {
	return im.update(c, func(s *auction.Settings) { s.FeeBps = bps })
}

func (im *settingsImpl) update(c ctx.Ctx, apply func(*auction.Settings)) error {
	s, err := im.Get(c)
	if err != nil {
		return err
	}
	apply(s)
	doc := &settingsDoc{Name: settingsName, Treasury: s.Treasury, FeeBps: s.FeeBps}
	if err := im.q.Upsert(c, domain.TableSettings, bson.M{"name": settingsName}, doc); err != nil {
		c.WithFields(log.Fields{"err": err, "settings": s}).Error("q.Upsert failed")
		return err
	}
	return nil
}

type settingsMemory struct {
	mu sync.RWMutex
	s  auction.Settings
}

func NewSettingsMemory() auction.SettingsRepo {
	return &settingsMemory{}
}

func (im *settingsMemory) Get(c ctx.Ctx) (*auction.Settings, error) {
	im.mu.RLock()
	defer im.mu.RUnlock()
	s := im.s
	return &s, nil
}

func (im *settingsMemory) SetTreasury(c ctx.Ctx, treasury domain.Address) error {
	im.mu.Lock()
	defer im.mu.Unlock()
	im.s.Treasury = treasury.ToLower()
	return nil
}

func (im *settingsMemory) SetFeeBps(c ctx.Ctx, bps uint32) error {
	im.mu.Lock()
	defer im.mu.Unlock()
	im.s.FeeBps = bps
	return nil
}
