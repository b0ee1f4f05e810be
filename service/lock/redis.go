package lock

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/x-xyz/goauction/base/backoff"
	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/goroutine"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/domain/keys"
	"github.com/x-xyz/goauction/service/redis"
)

const (
	retryStart = 10 * time.Millisecond
	retryLimit = 200 * time.Millisecond
)

// unlockScript deletes the key only if it still holds our token, so an
// expired lock taken over by another instance is left alone.
var unlockScript = redis.Script{
	KeyCount: 1,
	Src: `if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
else
	return 0
end`,
}

// renewScript pushes the expiry of a lock we still hold.
var renewScript = redis.Script{
	KeyCount: 1,
	Src: `if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("pexpire", KEYS[1], ARGV[2])
else
	return 0
end`,
}

type redisLocker struct {
	redis redis.Service
	ttl   time.Duration
}

// NewRedis returns a Locker shared by every instance using the same redis.
// ttl bounds how long a crashed holder can keep the lock. A live holder
// renews it every ttl/3 until released, however long the guarded work takes.
func NewRedis(r redis.Service, ttl time.Duration) Locker {
	return &redisLocker{redis: r, ttl: ttl}
}

func (l *redisLocker) Acquire(c ctx.Ctx, key string, wait time.Duration) (Release, error) {
	redisKey := keys.RedisKey(keys.PfxLock, key)
	token := []byte(uuid.NewString())

	waitCtx, cancel := ctx.WithTimeout(c, wait)
	defer cancel()

	b := backoff.NewExponential(retryStart, retryLimit)
	err := b.Until(waitCtx, func() (bool, error) {
		return l.redis.SetNX(c, redisKey, token, l.ttl)
	})
	if err != nil {
		if c.Err() == nil && waitCtx.Err() != nil {
			return nil, ErrTimeout
		}
		return nil, err
	}

	// the caller's ctx may already be canceled while the holder still works
	rc := ctx.From(c, context.Background())
	stop := make(chan struct{})
	stopped := make(chan struct{})
	goroutine.RecoverableGo(func() {
		l.renew(rc, redisKey, token, stop)
	}, goroutine.WithAfterEnded(func() {
		close(stopped)
	}))

	return once(func() {
		close(stop)
		<-stopped
		if _, err := l.redis.EvalInt(rc, unlockScript, redisKey, token); err != nil {
			c.WithFields(log.Fields{"err": err, "key": redisKey}).Error("redis unlock failed")
		}
	}), nil
}

func (l *redisLocker) renew(c ctx.Ctx, redisKey string, token []byte, stop <-chan struct{}) {
	ticker := time.NewTicker(l.ttl / 3)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			n, err := l.redis.EvalInt(c, renewScript, redisKey, token, l.ttl.Milliseconds())
			if err != nil {
				c.WithFields(log.Fields{"err": err, "key": redisKey}).Error("redis renew failed")
				continue
			}
			if n == 0 {
				c.WithField("key", redisKey).Error("lock expired before renewal")
				return
			}
		}
	}
}
