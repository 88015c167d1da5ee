package store

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"swot-core/internal/domain/entity"
)

// RedisLimiter is the fixed-window counter backed by Redis, for
// deployments running more than one gateway instance. The window lives as
// the key TTL: the first INCR in a window sets the expiry, later ones ride
// it out.
type RedisLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
}

func NewRedisLimiter(client *redis.Client, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		limit:  limit,
		window: window,
	}
}

func (r *RedisLimiter) Check(ctx context.Context, identifier string) (entity.RateDecision, error) {
	key := "requests:" + identifier

	count, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		return entity.RateDecision{}, err
	}
	if count == 1 {
		if err := r.client.PExpire(ctx, key, r.window).Err(); err != nil {
			return entity.RateDecision{}, err
		}
	}

	if count > int64(r.limit) {
		ttl, err := r.client.PTTL(ctx, key).Result()
		if err != nil || ttl < 0 {
			ttl = r.window
		}
		return entity.RateDecision{Allowed: false, ResetAt: time.Now().Add(ttl)}, nil
	}

	return entity.RateDecision{Allowed: true}, nil
}
