package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/resilience"
)

func TestRedisStore_FallsBackToLoaderWhenUnavailable(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	store := NewRedisStore[[]string](client, "test:", time.Minute, resilience.CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: 1,
		OpenTimeout:      time.Minute,
		HalfOpenMaxReq:   1,
	}, nil)

	calls := 0
	loader := func(context.Context) (any, error) {
		calls++
		return []string{"u1", "u2"}, nil
	}

	for i := 0; i < 2; i++ {
		v, err := store.GetOrLoad(context.Background(), "leaderboard", loader)
		if err != nil {
			t.Fatalf("get or load: %v", err)
		}
		items, ok := v.([]string)
		if !ok || len(items) != 2 {
			t.Fatalf("unexpected value: %#v", v)
		}
	}
	if calls != 2 {
		t.Fatalf("expected loader to serve every call while redis is down, got %d", calls)
	}
	if err := store.DeletePrefix(context.Background(), "leaderboard"); err == nil {
		t.Fatalf("expected delete to report the open circuit")
	}
}
