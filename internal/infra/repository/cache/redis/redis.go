// Package redis implements the lookup cache on Redis, for deployments
// that want catalog lookups shared across instances instead of held
// per-process.
package redis

import (
	"context"
	"time"

	"github.com/musicmentor/music-mentor-api/internal/infra/repository/cache"
	"github.com/redis/go-redis/v9"
)

type Cache struct {
	redisClient *redis.Client
	defaultTTL  time.Duration
}

func NewCache(
	redisClient *redis.Client,
	defaultTTL time.Duration,
) *Cache {
	return &Cache{
		redisClient: redisClient,
		defaultTTL:  defaultTTL,
	}
}

func (c *Cache) Get(ctx context.Context, key string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	value, err := c.redisClient.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return "", cache.ErrCacheMiss
		}

		return "", err
	}

	return value, nil
}

func (c *Cache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if ttl == 0 {
		ttl = c.defaultTTL
	}

	return c.redisClient.Set(ctx, key, value, ttl).Err()
}
