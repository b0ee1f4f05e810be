package lock

import (
	"sync"
	"time"

	"github.com/x-xyz/goauction/base/ctx"
)

type entry struct {
	sem  chan struct{}
	refs int
}

type local struct {
	mu      sync.Mutex
	entries map[string]*entry
}

// NewLocal returns an in-process Locker.
func NewLocal() Locker {
	return &local{entries: make(map[string]*entry)}
}

func (l *local) ref(key string) *entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	e, ok := l.entries[key]
	if !ok {
		e = &entry{sem: make(chan struct{}, 1)}
		l.entries[key] = e
	}
	e.refs++
	return e
}

func (l *local) unref(key string, e *entry) {
	l.mu.Lock()
	defer l.mu.Unlock()
	e.refs--
	if e.refs == 0 {
		delete(l.entries, key)
	}
}

func (l *local) Acquire(c ctx.Ctx, key string, wait time.Duration) (Release, error) {
	e := l.ref(key)

	timer := time.NewTimer(wait)
	defer timer.Stop()

	select {
	case e.sem <- struct{}{}:
		return once(func() {
			<-e.sem
			l.unref(key, e)
		}), nil
	case <-timer.C:
		l.unref(key, e)
		return nil, ErrTimeout
	case <-c.Done():
		l.unref(key, e)
		return nil, c.Err()
	}
}
