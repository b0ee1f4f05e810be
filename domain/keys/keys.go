package keys

import (
	"strings"
)

const (
	// PfxHealthCheck is used for prefixing health check redis key
	PfxHealthCheck = "healthcheck"
	// PfxLock is used for prefixing distributed lock redis key
	PfxLock = "lock"
	// PfxAuction scopes lock keys held per auction id
	PfxAuction = "auction"
	// PfxAsset scopes lock keys held per listed asset
	PfxAsset = "asset"
	// PfxSettings scopes the lock key of platform settings writes
	PfxSettings = "settings"
	// PfxCapability is used for prefixing authorization cache keys
	PfxCapability = "capability"
)

// CustomKey is used to join the customized key by componets with specified delimiter
func CustomKey(delimiter string, components ...string) string {
	return strings.Join(components, delimiter)
}

// RedisKey is used to join the redis key by componets
func RedisKey(components ...string) string {
	return CustomKey(":", components...)
}

// RedisLuaKey is used to join the redis key by componets for redis lua
// If a key created by RedisLuaKey prefix to a set of keys
// then the set of keys will be forced in the same shard for doing lua
func RedisLuaKey(components ...string) string {
	return "{" + CustomKey(":", components...) + "}"
}
