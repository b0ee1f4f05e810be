package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/service/query"
)

type impl struct {
	q query.Mongo
}

func New(q query.Mongo) domain.RoleGrantRepo {
	return &impl{q}
}

func EnsureIndexes(c ctx.Ctx, q query.Mongo) error {
	return q.EnsureIndexes(c, domain.TableRoleGrants, query.Index{Keys: []string{"address", "capability"}, Unique: true})
}

func (im *impl) FindAll(c ctx.Ctx, capability domain.Capability) ([]*domain.RoleGrant, error) {
	res := []*domain.RoleGrant{}

	// to prevent scancol error
	qry := bson.M{"address": bson.M{"$exists": true}}
	if capability != "" {
		qry["capability"] = capability
	}

	if err := im.q.Search(c, domain.TableRoleGrants, 0, 0, "grantedAt", qry, &res); err != nil {
		c.WithField("err", err).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}

func (im *impl) FindOne(c ctx.Ctx, address domain.Address, capability domain.Capability) (*domain.RoleGrant, error) {
	res := &domain.RoleGrant{}
	qry := bson.M{"address": address.ToLower(), "capability": capability}
	if err := im.q.FindOne(c, domain.TableRoleGrants, qry, res); err == query.ErrNotFound {
		return nil, nil
	} else if err != nil {
		c.WithFields(log.Fields{"err": err, "address": address}).Error("q.FindOne failed")
		return nil, err
	}
	return res, nil
}

func (im *impl) Create(c ctx.Ctx, grant domain.RoleGrant) error {
	grant.Address = grant.Address.ToLower()
	grant.GrantedBy = grant.GrantedBy.ToLower()
	if err := im.q.Insert(c, domain.TableRoleGrants, grant); err == query.ErrDuplicateKey {
		return nil
	} else if err != nil {
		c.WithField("err", err).Error("q.Insert failed")
		return err
	}
	return nil
}

func (im *impl) Delete(c ctx.Ctx, address domain.Address, capability domain.Capability) error {
	slr := bson.M{"address": address.ToLower(), "capability": capability}
	if err := im.q.Remove(c, domain.TableRoleGrants, slr); err != nil && err != query.ErrNotFound {
		c.WithField("err", err).Error("q.Remove failed")
		return err
	}
	return nil
}
