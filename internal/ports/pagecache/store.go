package pagecache

import (
	"context"
	"time"
)

// Store keeps rendered bytes under string keys for a bounded time.
type Store interface {
	// Get reports ok=false on a miss or an expired entry.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// DeletePrefix removes every key starting with prefix.
	DeletePrefix(ctx context.Context, prefix string) error
}
