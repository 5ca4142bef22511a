package ratelimit

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisLimiter shares the window across every replica of the service.
type RedisLimiter struct {
	rdb    *redis.Client
	limit  int
	window time.Duration
	prefix string
	now    func() time.Time
}

func NewRedisLimiter(rdb *redis.Client, limit int, win time.Duration) *RedisLimiter {
	return &RedisLimiter{
		rdb:    rdb,
		limit:  limit,
		window: win,
		prefix: "ratelimit:gemini:",
		now:    time.Now,
	}
}

func (r *RedisLimiter) Allow(ctx context.Context, key string) (Result, error) {
	now := r.now()
	bucket := now.Truncate(r.window)
	redisKey := r.prefix + key + ":" + strconv.FormatInt(bucket.Unix(), 10)

	var incr *redis.IntCmd
	_, err := r.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, redisKey)
		pipe.Expire(ctx, redisKey, r.window)
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	count := int(incr.Val())
	res := Result{
		Allowed: count <= r.limit,
		Limit:   r.limit,
		ResetAt: bucket.Add(r.window),
	}
	if res.Allowed {
		res.Remaining = r.limit - count
	}
	return res, nil
}
