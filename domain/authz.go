package domain

import (
	"time"

	"github.com/x-xyz/goauction/base/ctx"
)

type Capability string

const (
	CapabilityAdmin   Capability = "ADMIN"
	CapabilityUpgrade Capability = "UPGRADE"
)

// AuthorizationGate answers capability checks. Role storage lives behind it.
type AuthorizationGate interface {
	HasCapability(c ctx.Ctx, caller Address, capability Capability) (bool, error)
}

type RoleGrant struct {
	Address    Address    `json:"address" bson:"address"`
	Capability Capability `json:"capability" bson:"capability"`
	GrantedBy  Address    `json:"grantedBy" bson:"grantedBy"`
	GrantedAt  time.Time  `json:"grantedAt" bson:"grantedAt"`
}

type RoleGrantRepo interface {
	FindAll(c ctx.Ctx, capability Capability) ([]*RoleGrant, error)
	// FindOne returns nil, nil when no grant exists.
	FindOne(c ctx.Ctx, address Address, capability Capability) (*RoleGrant, error)
	Create(c ctx.Ctx, grant RoleGrant) error
	Delete(c ctx.Ctx, address Address, capability Capability) error
}

type RoleGrantUsecase interface {
	AuthorizationGate
	FindAll(c ctx.Ctx, capability Capability) ([]*RoleGrant, error)
	Grant(c ctx.Ctx, caller, address Address, capability Capability) error
	Revoke(c ctx.Ctx, caller, address Address, capability Capability) error
}
