package cache

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	data     []byte
	storedAt time.Time
}

// MemoryCache is an in-process PageCache used when no redis address is
// configured. A race on first populate may run compute twice; the second
// result simply overwrites the first.
type MemoryCache struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemoryCache creates an in-process page cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

// NewMemoryCacheWithClock creates a cache with a custom clock.
func NewMemoryCacheWithClock(now func() time.Time) *MemoryCache {
	c := NewMemoryCache()
	c.now = now
	return c
}

// GetOrCompute implements PageCache.
func (c *MemoryCache) GetOrCompute(ctx context.Context, key string, ttl time.Duration, compute ComputeFn) ([]byte, error) {
	c.mu.Lock()
	entry, ok := c.entries[key]
	now := c.now()
	c.mu.Unlock()

	if ok && now.Sub(entry.storedAt) < ttl {
		return entry.data, nil
	}

	data, err := compute(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[key] = memoryEntry{data: data, storedAt: now}
	c.mu.Unlock()

	return data, nil
}
