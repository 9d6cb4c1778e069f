// Package lru implements a LRU based cache with optional per key expiry.
package lru

import (
	"context"
	"time"

	"github.com/beatlabs/httpauth/cache"
	errs "github.com/beatlabs/httpauth/errors"
	"github.com/hashicorp/golang-lru"
)

var _ cache.TTLCache = &Cache{}

type entry struct {
	value    interface{}
	deadline time.Time
}

// Cache encapsulates a thread-safe fixed size LRU cache.
type Cache struct {
	cache *lru.Cache
	now   func() time.Time
}

// New returns a new LRU cache that can hold 'size' number of keys at a time.
func New(size int) (*Cache, error) {
	c, err := lru.New(size)
	if err != nil {
		return nil, errs.Wrapf(err, "failed to create LRU cache of size %d", size)
	}
	return &Cache{cache: c, now: time.Now}, nil
}

// Get executes a lookup and returns whether a key exists in the cache along
// with its value. Expired keys are evicted lazily.
func (c *Cache) Get(_ context.Context, key string) (interface{}, bool, error) {
	v, ok := c.cache.Get(key)
	if !ok {
		return nil, false, nil
	}

	e := v.(entry)
	if !e.deadline.IsZero() && c.now().After(e.deadline) {
		c.cache.Remove(key)
		return nil, false, nil
	}
	return e.value, true, nil
}

// SetTTL registers a key-value pair to the cache with a time to live.
// A non positive ttl keeps the key until it is evicted.
func (c *Cache) SetTTL(_ context.Context, key string, value interface{}, ttl time.Duration) error {
	e := entry{value: value}
	if ttl > 0 {
		e.deadline = c.now().Add(ttl)
	}
	c.cache.Add(key, e)
	return nil
}

// Remove evicts a specific key from the cache.
func (c *Cache) Remove(_ context.Context, key string) error {
	c.cache.Remove(key)
	return nil
}

// Purge evicts all keys present in the cache.
func (c *Cache) Purge(_ context.Context) error {
	c.cache.Purge()
	return nil
}
