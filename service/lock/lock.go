package lock

import (
	"errors"
	"time"

	"github.com/x-xyz/goauction/base/ctx"
)

var (
	// ErrTimeout is returned when the lock is not acquired within the wait
	ErrTimeout = errors.New("lock wait timeout")
	// ErrReentrant is returned when the calling chain already holds the lock
	ErrReentrant = errors.New("lock already held by caller")
)

// Release frees a held lock. It is safe to call more than once.
type Release func()

// Locker hands out named mutual-exclusion locks.
type Locker interface {
	// Acquire blocks until key is held, wait elapses (ErrTimeout) or c is done.
	Acquire(c ctx.Ctx, key string, wait time.Duration) (Release, error)
}

func heldKey(key string) string {
	return "lock:held:" + key
}

// Hold acquires key and returns a ctx marked as holding it. Calls made with
// the returned ctx that try to take key again fail with ErrReentrant instead
// of waiting on themselves.
func Hold(c ctx.Ctx, l Locker, key string, wait time.Duration) (ctx.Ctx, Release, error) {
	if Held(c, key) {
		return c, nil, ErrReentrant
	}
	release, err := l.Acquire(c, key, wait)
	if err != nil {
		return c, nil, err
	}
	return ctx.WithHiddenValue(c, heldKey(key), true), release, nil
}

// Held reports whether c was returned by Hold for key.
func Held(c ctx.Ctx, key string) bool {
	held, _ := c.Value(heldKey(key)).(bool)
	return held
}

func once(f func()) Release {
	done := false
	return func() {
		if done {
			return
		}
		done = true
		f()
	}
}
