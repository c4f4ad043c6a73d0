package pagecacheapp

import (
	"context"
	"time"

	"blogfeed/internal/config"
	pagecachePort "blogfeed/internal/ports/pagecache"

	"go.uber.org/zap"
)

const keyPrefix = "pagecache:"

// PageCacheService is one named cache slot holding rendered output for ttl.
// Variants (e.g. the page number) share the slot and are cleared together.
// Writes to the underlying data never invalidate it; entries only expire or
// get dropped by Clear.
type PageCacheService struct {
	Store pagecachePort.Store
	Name  string
	TTL   time.Duration
}

func NewPageCacheService(store pagecachePort.Store, name string, ttl time.Duration) *PageCacheService {
	return &PageCacheService{
		Store: store,
		Name:  name,
		TTL:   ttl,
	}
}

func (s *PageCacheService) prefix() string {
	return keyPrefix + s.Name + ":"
}

func (s *PageCacheService) key(variant string) string {
	return s.prefix() + variant
}

// Fetch returns the cached bytes for variant, or calls render and caches its
// result. Render errors are returned and nothing is stored.
func (s *PageCacheService) Fetch(ctx context.Context, variant string, render func(ctx context.Context) ([]byte, error)) ([]byte, error) {
	key := s.key(variant)
	cached, ok, err := s.Store.Get(ctx, key)
	if err != nil {
		config.Logger.Warn("Page cache read failed", zap.String("key", key), zap.Error(err))
	}
	if ok && err == nil {
		return cached, nil
	}

	body, err := render(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.Store.Set(ctx, key, body, s.TTL); err != nil {
		config.Logger.Warn("Page cache write failed", zap.String("key", key), zap.Error(err))
	}
	return body, nil
}

// Clear drops every variant of the slot.
func (s *PageCacheService) Clear(ctx context.Context) error {
	return s.Store.DeletePrefix(ctx, s.prefix())
}
