package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/musicmentor/music-mentor-api/internal/infra/repository/cache"
	"github.com/musicmentor/music-mentor-api/internal/infra/repository/cache/memory"
	"github.com/stretchr/testify/assert"
)

func TestCache(t *testing.T) {
	ctx := context.Background()

	t.Run("miss on absent key", func(t *testing.T) {
		c := memory.NewCache(time.Hour)

		_, err := c.Get(ctx, "absent")
		assert.ErrorIs(t, err, cache.ErrCacheMiss)
	})

	t.Run("set then get", func(t *testing.T) {
		c := memory.NewCache(time.Hour)

		assert.NoError(t, c.Set(ctx, "key", []byte("value"), 0))

		val, err := c.Get(ctx, "key")
		assert.NoError(t, err)
		assert.Equal(t, "value", val)
	})

	t.Run("entry expires after TTL", func(t *testing.T) {
		now := time.Now()
		c := memory.NewCacheWithClock(time.Hour, func() time.Time { return now })

		assert.NoError(t, c.Set(ctx, "key", []byte("value"), 6*time.Hour))

		now = now.Add(6*time.Hour - time.Minute)
		_, err := c.Get(ctx, "key")
		assert.NoError(t, err)

		now = now.Add(2 * time.Minute)
		_, err = c.Get(ctx, "key")
		assert.ErrorIs(t, err, cache.ErrCacheMiss)
	})

	t.Run("expired entry can be rewritten", func(t *testing.T) {
		now := time.Now()
		c := memory.NewCacheWithClock(time.Hour, func() time.Time { return now })

		assert.NoError(t, c.Set(ctx, "key", []byte("old"), time.Minute))
		now = now.Add(2 * time.Minute)

		_, err := c.Get(ctx, "key")
		assert.ErrorIs(t, err, cache.ErrCacheMiss)

		assert.NoError(t, c.Set(ctx, "key", []byte("new"), time.Minute))
		val, err := c.Get(ctx, "key")
		assert.NoError(t, err)
		assert.Equal(t, "new", val)
	})

	t.Run("zero ttl falls back to default", func(t *testing.T) {
		now := time.Now()
		c := memory.NewCacheWithClock(time.Minute, func() time.Time { return now })

		assert.NoError(t, c.Set(ctx, "key", []byte("value"), 0))

		now = now.Add(2 * time.Minute)
		_, err := c.Get(ctx, "key")
		assert.ErrorIs(t, err, cache.ErrCacheMiss)
	})
}
