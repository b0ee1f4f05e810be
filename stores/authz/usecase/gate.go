package usecase

import (
	"github.com/x-xyz/goauction/base/clock"
	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/keys"
	"github.com/x-xyz/goauction/service/cache"
)

type GateUseCaseCfg struct {
	// Admins hold CapabilityAdmin regardless of stored grants.
	Admins []string
	Repo   domain.RoleGrantRepo
	Cache  cache.Service
	Clock  clock.Clock
}

type impl struct {
	admins map[domain.Address]bool
	repo   domain.RoleGrantRepo
	cache  cache.Service
	clock  clock.Clock
}

func New(cfg *GateUseCaseCfg) domain.RoleGrantUsecase {
	admins := map[domain.Address]bool{}
	for _, a := range cfg.Admins {
		admins[domain.Address(a).ToLower()] = true
	}
	return &impl{
		admins: admins,
		repo:   cfg.Repo,
		cache:  cfg.Cache,
		clock:  cfg.Clock,
	}
}

func cacheKey(address domain.Address, capability domain.Capability) string {
	return keys.RedisKey(keys.PfxCapability, string(capability), address.ToLowerStr())
}

func (im *impl) HasCapability(c ctx.Ctx, caller domain.Address, capability domain.Capability) (bool, error) {
	if caller.IsEmpty() {
		return false, nil
	}
	if capability == domain.CapabilityAdmin && im.admins[caller.ToLower()] {
		return true, nil
	}

	granted := false
	getter := func() (interface{}, error) {
		g, err := im.repo.FindOne(c, caller, capability)
		if err != nil {
			return nil, err
		}
		ok := g != nil
		return &ok, nil
	}
	if err := im.cache.GetByFunc(c, cacheKey(caller, capability), &granted, getter); err != nil {
		c.WithFields(log.Fields{"err": err, "caller": caller}).Error("cache.GetByFunc failed")
		return false, err
	}
	return granted, nil
}

func (im *impl) FindAll(c ctx.Ctx, capability domain.Capability) ([]*domain.RoleGrant, error) {
	return im.repo.FindAll(c, capability)
}

func (im *impl) Grant(c ctx.Ctx, caller, address domain.Address, capability domain.Capability) error {
	if err := im.requireAdmin(c, caller); err != nil {
		return err
	}
	if address.IsEmpty() {
		return domain.ErrInvalidAddress
	}

	grant := domain.RoleGrant{
		Address:    address.ToLower(),
		Capability: capability,
		GrantedBy:  caller.ToLower(),
		GrantedAt:  im.clock.Now(),
	}
	if err := im.repo.Create(c, grant); err != nil {
		c.WithField("err", err).Error("repo.Create failed")
		return err
	}
	im.invalidate(c, address, capability)
	return nil
}

func (im *impl) Revoke(c ctx.Ctx, caller, address domain.Address, capability domain.Capability) error {
	if err := im.requireAdmin(c, caller); err != nil {
		return err
	}
	if err := im.repo.Delete(c, address, capability); err != nil {
		c.WithField("err", err).Error("repo.Delete failed")
		return err
	}
	im.invalidate(c, address, capability)
	return nil
}

func (im *impl) requireAdmin(c ctx.Ctx, caller domain.Address) error {
	ok, err := im.HasCapability(c, caller, domain.CapabilityAdmin)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrUnauthorized
	}
	return nil
}

func (im *impl) invalidate(c ctx.Ctx, address domain.Address, capability domain.Capability) {
	if err := im.cache.Del(c, cacheKey(address, capability)); err != nil {
		c.WithFields(log.Fields{"err": err, "address": address}).Warn("cache.Del failed")
	}
}
