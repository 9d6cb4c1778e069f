// Package redis contains the concrete implementation of a cache that supports TTL.
package redis

import (
	"context"
	"errors"
	"time"

	"github.com/beatlabs/httpauth/cache"
	errs "github.com/beatlabs/httpauth/errors"
	"github.com/go-redis/redis/v8"
)

var _ cache.TTLCache = &Cache{}

// Options exposes the options struct from the go-redis package.
type Options redis.Options

// Cache encapsulates a Redis-based caching mechanism.
type Cache struct {
	rdb *redis.Client
}

// New returns a new Redis client that will be used as the cache store.
func New(opt Options) *Cache {
	ropt := redis.Options(opt)
	return &Cache{rdb: redis.NewClient(&ropt)}
}

// Get executes a lookup and returns whether a key exists in the cache along with its value.
func (c *Cache) Get(ctx context.Context, key string) (interface{}, bool, error) {
	res, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) { // cache miss
			return nil, false, nil
		}
		return nil, false, errs.Wrap(err, "failed to get key")
	}
	return res, true, nil
}

// SetTTL registers a key-value pair to the cache, specifying an expiry time.
// A non positive ttl keeps the key indefinitely.
func (c *Cache) SetTTL(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return errs.Wrap(c.rdb.Set(ctx, key, value, ttl).Err(), "failed to set key")
}

// Remove evicts a specific key from the cache.
func (c *Cache) Remove(ctx context.Context, key string) error {
	return errs.Wrap(c.rdb.Del(ctx, key).Err(), "failed to remove key")
}

// Purge evicts all keys present in the cache's database.
func (c *Cache) Purge(ctx context.Context) error {
	return errs.Wrap(c.rdb.FlushDB(ctx).Err(), "failed to purge")
}
