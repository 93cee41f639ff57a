// Package cache holds the read-through caches in front of derived views such
// as the leaderboard. Writers invalidate by key prefix after committing.
package cache

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/singleflight"
)

var errNoLoader = errors.New("cache: loader is required")

// Loader is implemented by Store, RedisStore and Nop.
type Loader interface {
	GetOrLoad(ctx context.Context, key string, loader func(context.Context) (any, error)) (any, error)
	DeletePrefix(ctx context.Context, prefix string) error
}

type item struct {
	value   any
	expires time.Time
}

// Store is an in-process TTL map. Concurrent misses on one key share a
// single load. A non-positive ttl keeps entries until invalidated.
type Store struct {
	ttl   time.Duration
	now   func() time.Time
	loads singleflight.Group

	mu    sync.RWMutex
	items map[string]item
}

func NewStore(ttl time.Duration) *Store {
	return &Store{ttl: ttl, now: time.Now, items: map[string]item{}}
}

func (s *Store) fresh(it item) bool {
	return s.ttl <= 0 || s.now().Before(it.expires)
}

func (s *Store) Get(_ context.Context, key string) (any, bool) {
	s.mu.RLock()
	it, ok := s.items[key]
	s.mu.RUnlock()
	if !ok || !s.fresh(it) {
		return nil, false
	}
	return it.value, true
}

func (s *Store) Set(_ context.Context, key string, value any) {
	if key == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[key] = item{value: value, expires: s.now().Add(s.ttl)}
	for k, it := range s.items {
		if !s.fresh(it) {
			delete(s.items, k)
		}
	}
}

func (s *Store) DeletePrefix(_ context.Context, prefix string) error {
	if prefix == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for k := range s.items {
		if strings.HasPrefix(k, prefix) {
			delete(s.items, k)
		}
	}
	return nil
}

// GetOrLoad returns the cached value for key or runs loader once for all
// concurrent callers. Failed loads are not cached. A caller whose ctx ends
// stops waiting without cancelling the shared load.
func (s *Store) GetOrLoad(ctx context.Context, key string, loader func(context.Context) (any, error)) (any, error) {
	if loader == nil {
		return nil, errNoLoader
	}
	if key == "" {
		return loader(ctx)
	}
	if v, ok := s.Get(ctx, key); ok {
		return v, nil
	}

	ch := s.loads.DoChan(key, func() (any, error) {
		if v, ok := s.Get(ctx, key); ok {
			return v, nil
		}
		v, err := loader(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}
		s.Set(ctx, key, v)
		return v, nil
	})

	select {
	case res := <-ch:
		return res.Val, res.Err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Nop loads on every call; wired when caching is disabled.
type Nop struct{}

func (Nop) GetOrLoad(ctx context.Context, _ string, loader func(context.Context) (any, error)) (any, error) {
	if loader == nil {
		return nil, errNoLoader
	}
	return loader(ctx)
}

func (Nop) DeletePrefix(context.Context, string) error { return nil }
