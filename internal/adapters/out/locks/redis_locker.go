// Package locks provides per-package mutual exclusion for state changes.
// RedisLocker serializes across service instances; LocalLocker serializes
// within one process and is used when no Redis is configured.
package locks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"customs/internal/core/domain/model/kernel"
	"customs/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix            = "customs:package-lock:"
	defaultRetryInterval = 25 * time.Millisecond
)

// ErrLockLost is returned on release when the lock expired and was taken by
// someone else before the holder released it.
var ErrLockLost = errors.New("package lock lost before release")

// releaseScript deletes the key only if it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLocker implements ports.PackageLocker with SET NX PX leases.
// The TTL bounds how long a crashed holder can block a package; it must
// exceed the longest command including its side effects.
type RedisLocker struct {
	client        *redis.Client
	ttl           time.Duration
	retryInterval time.Duration
}

// NewRedisLocker connects using a URL of the form
// redis://[:password@]host[:port][/database].
func NewRedisLocker(redisURL string, ttl time.Duration) (*RedisLocker, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	return &RedisLocker{
		client:        redis.NewClient(opts),
		ttl:           ttl,
		retryInterval: defaultRetryInterval,
	}, nil
}

// Lock polls until the lease is acquired or ctx is done.
func (l *RedisLocker) Lock(ctx context.Context, packageID kernel.UUID) (ports.ReleaseFunc, error) {
	key := keyPrefix + packageID.String()
	token := kernel.NewUUID().String()

	for {
		acquired, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to acquire lock %s: %w", key, err)
		}
		if acquired {
			return l.releaser(key, token), nil
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("waiting for lock %s: %w", key, ctx.Err())
		case <-time.After(l.retryInterval):
		}
	}
}

func (l *RedisLocker) releaser(key, token string) ports.ReleaseFunc {
	return func(ctx context.Context) error {
		deleted, err := releaseScript.Run(ctx, l.client, []string{key}, token).Int()
		if err != nil {
			return fmt.Errorf("failed to release lock %s: %w", key, err)
		}
		if deleted == 0 {
			return ErrLockLost
		}
		return nil
	}
}

// Ping checks if Redis is reachable.
func (l *RedisLocker) Ping(ctx context.Context) error {
	if err := l.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

// Close closes the Redis connection.
func (l *RedisLocker) Close() error {
	return l.client.Close()
}
