package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/platform/logger"
)

// Locker hands out exclusive leases that expire after ttl even if never released.
type Locker interface {
	// TryLock reports ok=false without error when another holder owns key.
	TryLock(ctx context.Context, key string, ttl time.Duration) (release func(context.Context) error, ok bool, err error)
	Close() error
}

type localLocker struct{}

// LocalLocker always grants the lease; a single instance needs nothing more.
func LocalLocker() Locker { return localLocker{} }

func (localLocker) TryLock(context.Context, string, time.Duration) (func(context.Context) error, bool, error) {
	return func(context.Context) error { return nil }, true, nil
}

func (localLocker) Close() error { return nil }

// Deletes the key only while it still holds our token.
var releaseScript = goredis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type redisLocker struct {
	log    *logger.Logger
	rdb    *goredis.Client
	prefix string
}

func NewRedisLocker(log *logger.Logger, addr, prefix string) (Locker, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	rdb, err := dial(addr)
	if err != nil {
		return nil, err
	}
	return &redisLocker{
		log:    log.With("service", "RedisLocker"),
		rdb:    rdb,
		prefix: prefix + "lock:",
	}, nil
}

func (l *redisLocker) TryLock(ctx context.Context, key string, ttl time.Duration) (func(context.Context) error, bool, error) {
	if ttl <= 0 {
		return nil, false, fmt.Errorf("lock ttl must be positive")
	}
	full := l.prefix + key
	token := uuid.NewString()
	ok, err := l.rdb.SetNX(ctx, full, token, ttl).Result()
	if err != nil {
		return nil, false, fmt.Errorf("acquire lock %s: %w", key, err)
	}
	if !ok {
		return nil, false, nil
	}
	release := func(ctx context.Context) error {
		if err := releaseScript.Run(ctx, l.rdb, []string{full}, token).Err(); err != nil {
			l.log.Warn("Lock release failed; lease will expire", "key", key, "error", err)
			return err
		}
		return nil
	}
	return release, true, nil
}

func (l *redisLocker) Close() error {
	if l == nil || l.rdb == nil {
		return nil
	}
	return l.rdb.Close()
}
