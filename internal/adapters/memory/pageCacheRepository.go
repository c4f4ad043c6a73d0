package memory

import (
	"context"
	"strings"
	"sync"
	"time"
)

// sweepEvery bounds how often Set scans the map for expired entries.
const sweepEvery = time.Minute

type entry struct {
	value     []byte
	expiresAt time.Time
}

// PageCacheRepositoryMemory is an in-process page cache store used when no
// Redis address is configured.
type PageCacheRepositoryMemory struct {
	mu        sync.RWMutex
	entries   map[string]entry
	lastSweep time.Time
	Now       func() time.Time
}

func NewPageCacheRepositoryMemory() *PageCacheRepositoryMemory {
	return &PageCacheRepositoryMemory{
		entries: make(map[string]entry),
		Now:     time.Now,
	}
}

func (repo *PageCacheRepositoryMemory) Get(ctx context.Context, key string) ([]byte, bool, error) {
	repo.mu.RLock()
	e, ok := repo.entries[key]
	repo.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	if !repo.Now().Before(e.expiresAt) {
		repo.mu.Lock()
		if cur, ok := repo.entries[key]; ok && cur.expiresAt.Equal(e.expiresAt) {
			delete(repo.entries, key)
		}
		repo.mu.Unlock()
		return nil, false, nil
	}
	return append([]byte(nil), e.value...), true, nil
}

func (repo *PageCacheRepositoryMemory) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	now := repo.Now()
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if now.Sub(repo.lastSweep) >= sweepEvery {
		repo.sweep(now)
	}
	repo.entries[key] = entry{
		value:     append([]byte(nil), value...),
		expiresAt: now.Add(ttl),
	}
	return nil
}

// sweep drops expired entries. Callers hold mu.
func (repo *PageCacheRepositoryMemory) sweep(now time.Time) {
	for k, e := range repo.entries {
		if !now.Before(e.expiresAt) {
			delete(repo.entries, k)
		}
	}
	repo.lastSweep = now
}

// Len reports the number of stored entries, expired ones included until the
// next sweep.
func (repo *PageCacheRepositoryMemory) Len() int {
	repo.mu.RLock()
	defer repo.mu.RUnlock()
	return len(repo.entries)
}

func (repo *PageCacheRepositoryMemory) DeletePrefix(ctx context.Context, prefix string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	for k := range repo.entries {
		if strings.HasPrefix(k, prefix) {
			delete(repo.entries, k)
		}
	}
	return nil
}
