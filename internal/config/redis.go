package config

import (
	"context"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// OpenRedis returns nil without error when REDIS_ADDR is empty; callers fall back
// to the in-process page cache.
func OpenRedis(ctx context.Context, c *Config) (*redis.Client, error) {
	if c.RedisAddr == "" {
		return nil, nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     c.RedisAddr,
		Password: c.RedisPassword,
		DB:       c.RedisDB,
	})

	s, err := client.Ping(ctx).Result()
	if err != nil {
		_ = client.Close()
		return nil, errors.Wrap(err, "connect to redis")
	}
	Logger.Info("Connected to Redis", zap.String("addr", c.RedisAddr), zap.String("ping", s))
	return client, nil
}
