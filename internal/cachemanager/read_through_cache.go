package cachemanager

import (
	"context"
	"time"

	"github.com/zjrosen/highlighter/internal/log"
)

// ReadThroughCache loads missing values with fn and stores them in cache.
// Failed loads are returned to the caller and never cached, so a language
// whose patterns do not compile is retried on the next request.
type ReadThroughCache[K comparable, V any, I any] struct {
	cache           CacheManager[K, V]
	fn              func(ctx context.Context, input I) (V, error)
	shouldSkipCache bool
}

// NewReadThroughCache returns a cache that calls fn on every miss. With
// shouldSkipCache set, fn is called on every lookup and cache is never touched.
func NewReadThroughCache[K comparable, V any, I any](
	cache CacheManager[K, V],
	fn func(ctx context.Context, input I) (V, error),
	shouldSkipCache bool,
) *ReadThroughCache[K, V, I] {
	return &ReadThroughCache[K, V, I]{
		cache:           cache,
		fn:              fn,
		shouldSkipCache: shouldSkipCache,
	}
}

// Get returns the value under key, loading it from input on a miss.
func (r *ReadThroughCache[K, V, I]) Get(ctx context.Context, key K, input I, ttl time.Duration) (V, error) {
	return r.lookup(ctx, key, input, ttl, func() (V, bool) {
		return r.cache.Get(ctx, key)
	})
}

// GetWithRefresh is Get, but a hit also extends the entry's ttl.
func (r *ReadThroughCache[K, V, I]) GetWithRefresh(ctx context.Context, key K, input I, ttl time.Duration) (V, error) {
	return r.lookup(ctx, key, input, ttl, func() (V, bool) {
		return r.cache.GetWithRefresh(ctx, key, ttl)
	})
}

func (r *ReadThroughCache[K, V, I]) lookup(ctx context.Context, key K, input I, ttl time.Duration, get func() (V, bool)) (V, error) {
	if r.shouldSkipCache {
		return r.fn(ctx, input)
	}

	if value, ok := get(); ok {
		return value, nil
	}

	value, err := r.fn(ctx, input)
	if err != nil {
		log.Warn(log.CatCache, "load failed, not caching", "key", key, "error", err)
		return value, err
	}

	r.cache.Set(ctx, key, value, ttl)
	log.Debug(log.CatCache, "loaded", "key", key, "ttl", ttl)

	return value, nil
}
