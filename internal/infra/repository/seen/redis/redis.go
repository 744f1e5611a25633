package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const opTimeout = 5 * time.Second

// Store keeps per-identity sets of recommendation keys in Redis. Sets
// give upsert semantics for free: re-marking a key a user has already
// seen is a no-op.
type Store struct {
	redisClient *redis.Client
}

func NewStore(redisClient *redis.Client) *Store {
	return &Store{
		redisClient: redisClient,
	}
}

func seenSetKey(identity string) string {
	return "seen:" + identity
}

func librarySetKey(identity string) string {
	return "library:" + identity
}

func (s *Store) SeenKeys(ctx context.Context, identity string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	return s.redisClient.SMembers(ctx, seenSetKey(identity)).Result()
}

func (s *Store) LibraryKeys(ctx context.Context, identity string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	return s.redisClient.SMembers(ctx, librarySetKey(identity)).Result()
}

func (s *Store) MarkSeen(ctx context.Context, identity string, keys []string) error {
	if len(keys) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	members := make([]interface{}, 0, len(keys))
	for _, key := range keys {
		members = append(members, key)
	}

	return s.redisClient.SAdd(ctx, seenSetKey(identity), members...).Err()
}
