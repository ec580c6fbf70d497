package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore shares fixed-window counters across instances via Redis.
// The key carries an expiry equal to the window so counters reset on
// their own.
type RedisStore struct {
	client *redis.Client
	prefix string
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: "ratelimit:",
	}
}

func (s *RedisStore) Incr(ctx context.Context, key string, window time.Duration) (int, error) {
	full := s.prefix + key

	pipe := s.client.TxPipeline()
	incr := pipe.Incr(ctx, full)
	pipe.ExpireNX(ctx, full, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("ratelimit incr: %w", err)
	}
	return int(incr.Val()), nil
}
