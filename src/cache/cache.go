package cache

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

// Query caches the result of one fetch function under a stable key. Screens
// read through Get and never mutate the cached value; the only write path is
// a refetch. Concurrent reads for the same key share a single in-flight
// request.
type Query[T any] struct {
	key   string
	fetch func(ctx context.Context) (T, error)

	sf singleflight.Group

	mu         sync.Mutex
	data       T
	loaded     bool
	stale      bool
	refreshing bool
	gen        uint64
}

// NewQuery creates a cache entry for key backed by fetch.
func NewQuery[T any](key string, fetch func(ctx context.Context) (T, error)) *Query[T] {
	return &Query[T]{key: key, fetch: fetch}
}

// Key returns the cache key.
func (q *Query[T]) Key() string { return q.key }

// Get returns the cached value. The first read, and any read after an
// Invalidate, blocks on a fetch so the caller always observes post-mutation
// server state. While an explicit Refresh is in flight the previous value is
// served immediately with loading=true.
func (q *Query[T]) Get(ctx context.Context) (data T, loading bool, err error) {
	q.mu.Lock()
	if q.loaded && !q.stale {
		data, loading = q.data, q.refreshing
		q.mu.Unlock()
		return data, loading, nil
	}
	gen := q.gen
	q.mu.Unlock()

	v, err, _ := q.sf.Do(q.key, func() (any, error) {
		fresh, err := q.fetch(ctx)
		if err != nil {
			return nil, err
		}
		q.store(gen, fresh)
		return fresh, nil
	})
	if err != nil {
		q.mu.Lock()
		data = q.data // stale value, if any, accompanies the error
		q.mu.Unlock()
		return data, false, err
	}
	return v.(T), false, nil
}

// Invalidate marks the entry stale. The next Get refetches before returning.
// Last invalidate wins: the generation bump makes store discard the result of
// any fetch that started before this call, and Forget detaches later readers
// from that in-flight fetch so they start a fresh one.
func (q *Query[T]) Invalidate() {
	q.mu.Lock()
	q.gen++
	q.stale = true
	// Forget under the lock so a reader holding the new generation can never
	// join the pre-mutation flight.
	q.sf.Forget(q.key)
	q.mu.Unlock()
}

// Refresh triggers a background refetch. Reads issued while it is in flight
// are served the previous value with loading=true.
func (q *Query[T]) Refresh(ctx context.Context) {
	q.mu.Lock()
	if q.refreshing {
		q.mu.Unlock()
		return
	}
	q.refreshing = true
	gen := q.gen
	q.mu.Unlock()

	go func() {
		defer func() {
			q.mu.Lock()
			q.refreshing = false
			q.mu.Unlock()
		}()
		_, err, _ := q.sf.Do(q.key, func() (any, error) {
			fresh, err := q.fetch(ctx)
			if err != nil {
				return nil, err
			}
			q.store(gen, fresh)
			return fresh, nil
		})
		if err != nil {
			log.Warn().Err(err).Str("key", q.key).Msg("background refresh failed")
		}
	}()
}

// AutoRefresh refetches on a fixed interval until ctx is cancelled. Used by
// the dashboard stat queries.
func (q *Query[T]) AutoRefresh(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				q.Refresh(ctx)
			case <-ctx.Done():
				return
			}
		}
	}()
}

// store accepts a fetch result only if no Invalidate landed since the fetch
// started. A discarded result leaves the entry stale, so the next read still
// refetches.
func (q *Query[T]) store(gen uint64, fresh T) {
	q.mu.Lock()
	if gen == q.gen {
		q.data = fresh
		q.loaded = true
		q.stale = false
	}
	q.mu.Unlock()
}
