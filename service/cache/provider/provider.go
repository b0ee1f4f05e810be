package provider

import (
	"errors"
	"time"

	"github.com/x-xyz/goauction/base/ctx"
)

var (
	ErrNotFound = errors.New("cache miss")
)

// Provider stores raw bytes with a ttl. service/cache layers serialization on top.
type Provider interface {
	// Get returns the value and its remaining ttl, or ErrNotFound.
	Get(c ctx.Ctx, key string) ([]byte, time.Duration, error)
	Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error
	Del(c ctx.Ctx, key string) error
}
