package cache

import (
	"context"
	"errors"
	"time"

	goredis "github.com/go-redis/redis/v8"
	"github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/retry"
)

// StatusCache keeps scheduled notification statuses in Redis. Every key is
// written with an expiry so entries for purged rows age out.
type StatusCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewStatusCache(rdb *redis.Client, ttl time.Duration) *StatusCache {
	return &StatusCache{rdb: rdb, ttl: ttl}
}

// SetWithRetry overwrites the cached value.
func (c *StatusCache) SetWithRetry(ctx context.Context, strategy retry.Strategy, key string, value interface{}) error {
	return retry.Do(func() error {
		return c.rdb.Client.Set(ctx, key, value, c.ttl).Err()
	}, strategy)
}

// FillWithRetry writes value only if key is absent, so a read-through fill
// never replaces a status written concurrently by the dispatcher.
func (c *StatusCache) FillWithRetry(ctx context.Context, strategy retry.Strategy, key string, value interface{}) error {
	return retry.Do(func() error {
		return c.rdb.Client.SetNX(ctx, key, value, c.ttl).Err()
	}, strategy)
}

// GetWithRetry returns redis.Nil on a miss. Misses are not retried.
func (c *StatusCache) GetWithRetry(ctx context.Context, strategy retry.Strategy, key string) (string, error) {
	var (
		val  string
		miss bool
	)

	err := retry.Do(func() error {
		v, err := c.rdb.Client.Get(ctx, key).Result()
		if errors.Is(err, goredis.Nil) {
			miss = true
			return nil
		}
		if err != nil {
			return err
		}

		val = v
		return nil
	}, strategy)
	if err != nil {
		return "", err
	}

	if miss {
		return "", goredis.Nil
	}

	return val, nil
}
