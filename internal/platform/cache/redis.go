package cache

import (
	"context"
	"fmt"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"
	"github.com/redis/go-redis/v9"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/logging"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/resilience"
	"golang.org/x/sync/singleflight"
)

// RedisStore is a shared read-through cache for values of type T. Values are
// encoded as JSON. When redis is unreachable the loader result is served uncached.
type RedisStore[T any] struct {
	client    redis.UniversalClient
	namespace string
	ttl       time.Duration
	flight    singleflight.Group
	breaker   *resilience.CircuitBreaker
	logger    *logging.Logger
}

func NewRedisStore[T any](
	client redis.UniversalClient,
	namespace string,
	ttl time.Duration,
	breakerCfg resilience.CircuitBreakerConfig,
	logger *logging.Logger,
) *RedisStore[T] {
	if logger == nil {
		logger = logging.Default()
	}

	return &RedisStore[T]{
		client:    client,
		namespace: namespace,
		ttl:       ttl,
		breaker:   resilience.NewFromConfig(breakerCfg),
		logger:    logger,
	}
}

func (s *RedisStore[T]) GetOrLoad(ctx context.Context, key string, loader func(context.Context) (any, error)) (any, error) {
	if loader == nil {
		return nil, fmt.Errorf("loader is required")
	}

	fullKey := s.namespace + key
	value, err, _ := s.flight.Do(fullKey, func() (any, error) {
		if cached, ok := s.get(ctx, fullKey); ok {
			return cached, nil
		}

		loaded, loadErr := loader(ctx)
		if loadErr != nil {
			return nil, loadErr
		}
		s.set(ctx, fullKey, loaded)
		return loaded, nil
	})
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (s *RedisStore[T]) DeletePrefix(ctx context.Context, prefix string) error {
	if err := s.breaker.Allow(); err != nil {
		return err
	}

	iter := s.client.Scan(ctx, 0, s.namespace+prefix+"*", 100).Iterator()
	keys := make([]string, 0, 8)
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		s.breaker.RecordFailure()
		return fmt.Errorf("scan redis keys prefix=%s: %w", prefix, err)
	}
	if len(keys) == 0 {
		s.breaker.RecordSuccess()
		return nil
	}
	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		s.breaker.RecordFailure()
		return fmt.Errorf("delete redis keys prefix=%s: %w", prefix, err)
	}
	s.breaker.RecordSuccess()
	return nil
}

func (s *RedisStore[T]) get(ctx context.Context, key string) (T, bool) {
	var zero T
	if err := s.breaker.Allow(); err != nil {
		return zero, false
	}

	raw, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		s.breaker.RecordSuccess()
		return zero, false
	}
	if err != nil {
		s.breaker.RecordFailure()
		s.logger.WarnContext(ctx, "redis cache read failed", "key", key, "error", err)
		return zero, false
	}
	s.breaker.RecordSuccess()

	var out T
	if err := sonic.Unmarshal(raw, &out); err != nil {
		s.logger.WarnContext(ctx, "redis cache decode failed", "key", key, "error", err)
		return zero, false
	}
	return out, true
}

func (s *RedisStore[T]) set(ctx context.Context, key string, value any) {
	typed, ok := value.(T)
	if !ok {
		s.logger.WarnContext(ctx, "redis cache value has unexpected type", "key", key)
		return
	}
	if err := s.breaker.Allow(); err != nil {
		return
	}

	raw, err := sonic.Marshal(typed)
	if err != nil {
		s.logger.WarnContext(ctx, "redis cache encode failed", "key", key, "error", err)
		return
	}
	if err := s.client.Set(ctx, key, raw, s.ttl).Err(); err != nil {
		s.breaker.RecordFailure()
		s.logger.WarnContext(ctx, "redis cache write failed", "key", key, "error", err)
		return
	}
	s.breaker.RecordSuccess()
}
