package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestStore_GetOrLoad_UsesSingleFlight(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (any, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return "value", nil
	}

	const workers = 32
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)
	errCh := make(chan error, workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, err := store.GetOrLoad(context.Background(), "same-key", loader)
			if err != nil {
				errCh <- err
				return
			}
			if got, _ := v.(string); got != "value" {
				errCh <- errUnexpectedValue
			}
		}()
	}

	close(start)
	wg.Wait()
	close(errCh)
	for err := range errCh {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_GetOrLoad_UsesCachedValueAfterFirstLoad(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (any, error) {
		calls.Add(1)
		return "cached", nil
	}

	if _, err := store.GetOrLoad(context.Background(), "k", loader); err != nil {
		t.Fatalf("first GetOrLoad error: %v", err)
	}
	if _, err := store.GetOrLoad(context.Background(), "k", loader); err != nil {
		t.Fatalf("second GetOrLoad error: %v", err)
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

var errUnexpectedValue = errors.New("unexpected loaded value")

func TestStore_ExpiresAfterTTL(t *testing.T) {
	store := NewStore(time.Minute)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	store.Set(context.Background(), "leaderboard:v1", 42)
	if _, ok := store.Get(context.Background(), "leaderboard:v1"); !ok {
		t.Fatalf("expected fresh entry")
	}

	now = now.Add(2 * time.Minute)
	if _, ok := store.Get(context.Background(), "leaderboard:v1"); ok {
		t.Fatalf("expected entry to expire")
	}
}

func TestStore_DeletePrefix(t *testing.T) {
	store := NewStore(time.Minute)
	ctx := context.Background()
	store.Set(ctx, "leaderboard:v1", 1)
	store.Set(ctx, "leaderboard:v1:page2", 2)
	store.Set(ctx, "players:list", 3)

	if err := store.DeletePrefix(ctx, "leaderboard:"); err != nil {
		t.Fatalf("delete prefix: %v", err)
	}
	if _, ok := store.Get(ctx, "leaderboard:v1"); ok {
		t.Fatalf("expected leaderboard key removed")
	}
	if _, ok := store.Get(ctx, "players:list"); !ok {
		t.Fatalf("expected unrelated key kept")
	}
}

func TestNop_AlwaysLoads(t *testing.T) {
	var calls int
	loader := func(context.Context) (any, error) {
		calls++
		return calls, nil
	}

	var c Loader = Nop{}
	for i := 0; i < 3; i++ {
		if _, err := c.GetOrLoad(context.Background(), "k", loader); err != nil {
			t.Fatalf("get or load: %v", err)
		}
	}
	if calls != 3 {
		t.Fatalf("expected loader per call, got %d", calls)
	}
}

func TestStore_GetOrLoad_DoesNotCacheErrors(t *testing.T) {
	store := NewStore(time.Minute)
	ctx := context.Background()
	boom := errors.New("db down")

	if _, err := store.GetOrLoad(ctx, "leaderboard:v1", func(context.Context) (any, error) { return nil, boom }); !errors.Is(err, boom) {
		t.Fatalf("expected loader error, got %v", err)
	}

	v, err := store.GetOrLoad(ctx, "leaderboard:v1", func(context.Context) (any, error) { return "ok", nil })
	if err != nil || v != "ok" {
		t.Fatalf("expected reload after failure, got %v, %v", v, err)
	}
}

func TestStore_GetOrLoad_CallerCancellation(t *testing.T) {
	store := NewStore(time.Minute)
	release := make(chan struct{})
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.GetOrLoad(ctx, "slow", func(context.Context) (any, error) {
		<-release
		return "late", nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}


func TestGetOrLoad_RequiresLoader(t *testing.T) {
	t.Parallel()

	loaders := map[string]Loader{
		"store": NewStore(time.Minute),
		"nop":   Nop{},
	}
	for name, c := range loaders {
		if _, err := c.GetOrLoad(context.Background(), "key", nil); !errors.Is(err, errNoLoader) {
			t.Fatalf("%s: expected errNoLoader, got %v", name, err)
		}
	}
}
