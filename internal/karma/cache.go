package karma

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache is a read-through cache for the leaderboard payload.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, val string, ttl time.Duration)
}

type redisCache struct{ r *redis.Client }

func NewRedisCache(r *redis.Client) Cache { return &redisCache{r: r} }

func (c *redisCache) Get(ctx context.Context, key string) (string, bool) {
	val, err := c.r.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

func (c *redisCache) Set(ctx context.Context, key, val string, ttl time.Duration) {
	_ = c.r.Set(ctx, key, val, ttl).Err()
}
