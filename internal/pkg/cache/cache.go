// Package cache provides a short-TTL cache for rendered feed pages.
package cache

import (
	"context"
	"time"
)

// GlobalFeedKey is the one key the application caches under. Only the first
// page of the global feed is cached; this is a single fixed slot, not a
// general keyed cache.
const GlobalFeedKey = "feed:global:page:1"

// ComputeFn produces the value to cache on a miss.
type ComputeFn func(ctx context.Context) ([]byte, error)

// PageCache caches rendered page payloads. Entries expire by TTL only;
// there is no write-through invalidation, so a fresh post may be absent from
// a cached page until the entry ages out.
type PageCache interface {
	// GetOrCompute returns the cached value for key if its age is below ttl,
	// otherwise invokes compute, stores the result and returns it.
	GetOrCompute(ctx context.Context, key string, ttl time.Duration, compute ComputeFn) ([]byte, error)
}
