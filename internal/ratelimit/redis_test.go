package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisLimiterWindow(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	now := time.Date(2026, 10, 19, 8, 0, 30, 0, time.UTC)
	l := NewRedisLimiter(rdb, 2, time.Minute)
	l.now = func() time.Time { return now }
	ctx := context.Background()

	r, err := l.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, r.Allowed)
	assert.Equal(t, 1, r.Remaining)
	assert.Equal(t, time.Date(2026, 10, 19, 8, 1, 0, 0, time.UTC), r.ResetAt)

	r, _ = l.Allow(ctx, "10.0.0.1")
	assert.True(t, r.Allowed)

	r, err = l.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, r.Allowed)
	assert.Zero(t, r.Remaining)

	key := "ratelimit:gemini:10.0.0.1:" + "1792396800"
	assert.True(t, mr.Exists(key))
	assert.Equal(t, time.Minute, mr.TTL(key))

	now = now.Add(time.Minute)
	r, _ = l.Allow(ctx, "10.0.0.1")
	assert.True(t, r.Allowed)
}

func TestRedisLimiterUnavailable(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	defer rdb.Close()
	mr.Close()

	_, err := NewRedisLimiter(rdb, 2, time.Minute).Allow(context.Background(), "x")
	assert.Error(t, err)
}
