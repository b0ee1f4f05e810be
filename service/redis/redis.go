package redis

import (
	"errors"
	"time"

	"github.com/x-xyz/goauction/base/ctx"
)

const (
	// Forever means a key never expires
	Forever time.Duration = -1
)

var (
	// ErrNotFound is returned when the key does not exist
	ErrNotFound = errors.New("redis: key not found")
	// ErrNoPool is returned when no connection pool is configured
	ErrNoPool = errors.New("redis: no pool")
)

// Script is a lua script run with EVALSHA, falling back to EVAL.
type Script struct {
	KeyCount int
	Src      string
}

// Service wraps the redis commands used by the lock and health check.
type Service interface {
	Get(context ctx.Ctx, key string) ([]byte, error)
	Set(context ctx.Ctx, key string, val []byte, expire time.Duration) error
	// SetNX sets key only when it does not exist and reports whether it did.
	SetNX(context ctx.Ctx, key string, val []byte, expire time.Duration) (bool, error)
	Del(context ctx.Ctx, keys ...string) (int, error)
	// EvalInt runs script and returns its integer reply.
	EvalInt(context ctx.Ctx, script Script, keysAndArgs ...interface{}) (int64, error)
	Ping(context ctx.Ctx) error
}
