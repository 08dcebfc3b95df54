// Package cachemanager provides TTL caches used to keep built lexers around
// between highlight requests.
package cachemanager

import (
	"context"
	"time"
)

// CacheManager stores values under a key for a limited time.
type CacheManager[K comparable, V any] interface {
	Get(ctx context.Context, key K) (V, bool)
	GetWithRefresh(ctx context.Context, key K, ttl time.Duration) (V, bool)
	Set(ctx context.Context, key K, value V, ttl time.Duration)
	Flush(ctx context.Context) error
}
