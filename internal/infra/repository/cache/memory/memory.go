// Package memory provides an in-process TTL cache for lookup memoization.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/musicmentor/music-mentor-api/internal/infra/repository/cache"
)

type entry struct {
	value     string
	expiresAt time.Time
}

// Cache is a TTL-bounded in-process cache. Eviction is lazy: an expired
// entry is dropped on its next access, there is no background sweep.
type Cache struct {
	mu         sync.Mutex
	entries    map[string]entry
	defaultTTL time.Duration
	now        func() time.Time
}

func NewCache(defaultTTL time.Duration) *Cache {
	return NewCacheWithClock(defaultTTL, time.Now)
}

// NewCacheWithClock substitutes the time source, so tests can control
// expiry deterministically.
func NewCacheWithClock(defaultTTL time.Duration, now func() time.Time) *Cache {
	return &Cache{
		entries:    make(map[string]entry),
		defaultTTL: defaultTTL,
		now:        now,
	}
}

func (c *Cache) Get(ctx context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return "", cache.ErrCacheMiss
	}
	if c.now().After(e.expiresAt) {
		delete(c.entries, key)
		return "", cache.ErrCacheMiss
	}

	return e.value, nil
}

func (c *Cache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl == 0 {
		ttl = c.defaultTTL
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry{value: string(value), expiresAt: c.now().Add(ttl)}
	return nil
}
