package repository

import (
	"sort"
	"sync"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/domain"
)

type grantKey struct {
	address    domain.Address
	capability domain.Capability
}

type memory struct {
	mu     sync.RWMutex
	grants map[grantKey]domain.RoleGrant
}

func NewMemory() domain.RoleGrantRepo {
	return &memory{grants: map[grantKey]domain.RoleGrant{}}
}

func (im *memory) FindAll(c ctx.Ctx, capability domain.Capability) ([]*domain.RoleGrant, error) {
	im.mu.RLock()
	defer im.mu.RUnlock()
	res := []*domain.RoleGrant{}
	for k, g := range im.grants {
		if capability != "" && k.capability != capability {
			continue
		}
		g := g
		res = append(res, &g)
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].GrantedAt.Equal(res[j].GrantedAt) {
			return res[i].Address < res[j].Address
		}
		return res[i].GrantedAt.Before(res[j].GrantedAt)
	})
	return res, nil
}

func (im *memory) FindOne(c ctx.Ctx, address domain.Address, capability domain.Capability) (*domain.RoleGrant, error) {
	im.mu.RLock()
	defer im.mu.RUnlock()
	g, ok := im.grants[grantKey{address.ToLower(), capability}]
	if !ok {
		return nil, nil
	}
	return &g, nil
}

func (im *memory) Create(c ctx.Ctx, grant domain.RoleGrant) error {
	im.mu.Lock()
	defer im.mu.Unlock()
	grant.Address = grant.Address.ToLower()
	grant.GrantedBy = grant.GrantedBy.ToLower()
	k := grantKey{grant.Address, grant.Capability}
	if _, ok := im.grants[k]; !ok {
		im.grants[k] = grant
	}
	return nil
}

func (im *memory) Delete(c ctx.Ctx, address domain.Address, capability domain.Capability) error {
	im.mu.Lock()
	defer im.mu.Unlock()
	delete(im.grants, grantKey{address.ToLower(), capability})
	return nil
}
