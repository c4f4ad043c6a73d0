package redis

import (
	"context"
	"time"

	"blogfeed/internal/config"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const scanBatch = 100

// PageCacheRepositoryRedis keeps rendered pages as plain string keys with an
// expiry, so entries survive restarts and are shared between replicas.
type PageCacheRepositoryRedis struct {
	Client *redis.Client
}

func NewPageCacheRepositoryRedis(client *redis.Client) *PageCacheRepositoryRedis {
	return &PageCacheRepositoryRedis{
		Client: client,
	}
}

func (r *PageCacheRepositoryRedis) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := r.Client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrapf(err, "redis get %s", key)
	}
	return val, true, nil
}

func (r *PageCacheRepositoryRedis) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := r.Client.Set(ctx, key, value, ttl).Err(); err != nil {
		return errors.Wrapf(err, "redis set %s", key)
	}
	return nil
}

// DeletePrefix walks the keyspace with SCAN and deletes each batch of matches.
func (r *PageCacheRepositoryRedis) DeletePrefix(ctx context.Context, prefix string) error {
	var cursor uint64
	deleted := 0
	for {
		keys, next, err := r.Client.Scan(ctx, cursor, prefix+"*", scanBatch).Result()
		if err != nil {
			return errors.Wrapf(err, "redis scan %s*", prefix)
		}
		if len(keys) > 0 {
			if err := r.Client.Del(ctx, keys...).Err(); err != nil {
				return errors.Wrap(err, "redis del")
			}
			deleted += len(keys)
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}
	config.Logger.Debug("Cleared page cache keys", zap.String("prefix", prefix), zap.Int("count", deleted))
	return nil
}
