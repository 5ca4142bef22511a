package config

import (
	"context"
	"errors"
	"strings"

	"github.com/redis/go-redis/v9"
)

// OpenRedis accepts either a bare host:port or a redis:// / rediss:// URL.
func OpenRedis(ctx context.Context, cfg RedisConfig) (*redis.Client, error) {
	val := cfg.Addr
	if val == "" {
		return nil, errors.New("redis address is empty")
	}

	var client *redis.Client
	if strings.HasPrefix(val, "redis://") || strings.HasPrefix(val, "rediss://") {
		opt, err := redis.ParseURL(val)
		if err != nil {
			return nil, err
		}
		client = redis.NewClient(opt)
	} else {
		client = redis.NewClient(&redis.Options{Addr: val})
	}

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}
