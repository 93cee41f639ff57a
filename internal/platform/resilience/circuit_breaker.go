// Package resilience guards calls to flaky dependencies (token introspection,
// the shared redis cache) with a consecutive-failure circuit breaker.
package resilience

import (
	"sync"
	"time"

	"github.com/cockroachdb/errors"
)

var ErrCircuitOpen = errors.New("circuit breaker is open")

type CircuitState string

const (
	CircuitStateClosed   CircuitState = "closed"
	CircuitStateOpen     CircuitState = "open"
	CircuitStateHalfOpen CircuitState = "half_open"
)

type CircuitBreakerConfig struct {
	Enabled          bool
	FailureThreshold int
	OpenTimeout      time.Duration
	HalfOpenMaxReq   int
}

func DefaultCircuitBreakerConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: 5,
		OpenTimeout:      15 * time.Second,
		HalfOpenMaxReq:   2,
	}
}

// withDefaults fills non-positive fields from DefaultCircuitBreakerConfig.
func (c CircuitBreakerConfig) withDefaults() CircuitBreakerConfig {
	d := DefaultCircuitBreakerConfig()
	if c.FailureThreshold < 1 {
		c.FailureThreshold = d.FailureThreshold
	}
	if c.OpenTimeout <= 0 {
		c.OpenTimeout = d.OpenTimeout
	}
	if c.HalfOpenMaxReq < 1 {
		c.HalfOpenMaxReq = d.HalfOpenMaxReq
	}
	return c
}

// CircuitBreaker opens after FailureThreshold consecutive failures, rejects
// calls for OpenTimeout, then admits up to HalfOpenMaxReq probes. The circuit
// closes once that many probes succeed and reopens on any probe failure.
//
// A nil *CircuitBreaker admits every call.
type CircuitBreaker struct {
	cfg CircuitBreakerConfig
	now func() time.Time

	mu       sync.Mutex
	state    CircuitState
	failures int
	openedAt time.Time
	probes   int
	passed   int
}

func NewCircuitBreaker(failureThreshold int, openTimeout time.Duration, halfOpenMaxReq int) *CircuitBreaker {
	cfg := CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: failureThreshold,
		OpenTimeout:      openTimeout,
		HalfOpenMaxReq:   halfOpenMaxReq,
	}
	return &CircuitBreaker{cfg: cfg.withDefaults(), now: time.Now, state: CircuitStateClosed}
}

// NewFromConfig returns nil when cfg is disabled.
func NewFromConfig(cfg CircuitBreakerConfig) *CircuitBreaker {
	if !cfg.Enabled {
		return nil
	}
	return NewCircuitBreaker(cfg.FailureThreshold, cfg.OpenTimeout, cfg.HalfOpenMaxReq)
}

// Execute runs fn if the breaker admits it. Errors accepted by isFailure
// (every error when isFailure is nil) count as failures; any other outcome
// counts as a success.
func (b *CircuitBreaker) Execute(fn func() error, isFailure func(error) bool) error {
	if err := b.Allow(); err != nil {
		return err
	}
	err := fn()
	if err != nil && (isFailure == nil || isFailure(err)) {
		b.RecordFailure()
	} else {
		b.RecordSuccess()
	}
	return err
}

func (b *CircuitBreaker) Allow() error {
	if b == nil {
		return nil
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.current() {
	case CircuitStateOpen:
		return ErrCircuitOpen
	case CircuitStateHalfOpen:
		if b.state == CircuitStateOpen {
			b.enter(CircuitStateHalfOpen)
		}
		if b.probes >= b.cfg.HalfOpenMaxReq {
			return ErrCircuitOpen
		}
		b.probes++
	}
	return nil
}

func (b *CircuitBreaker) RecordSuccess() {
	if b == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case CircuitStateClosed:
		b.failures = 0
	case CircuitStateHalfOpen:
		b.probes = max(b.probes-1, 0)
		b.passed++
		if b.passed >= b.cfg.HalfOpenMaxReq && b.probes == 0 {
			b.enter(CircuitStateClosed)
		}
	}
}

func (b *CircuitBreaker) RecordFailure() {
	if b == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case CircuitStateClosed:
		b.failures++
		if b.failures >= b.cfg.FailureThreshold {
			b.enter(CircuitStateOpen)
		}
	case CircuitStateHalfOpen, CircuitStateOpen:
		b.enter(CircuitStateOpen)
	}
}

func (b *CircuitBreaker) State() CircuitState {
	if b == nil {
		return CircuitStateClosed
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.current()
}

// current reports an open circuit whose timeout elapsed as half-open.
func (b *CircuitBreaker) current() CircuitState {
	if b.state == CircuitStateOpen && b.now().Sub(b.openedAt) >= b.cfg.OpenTimeout {
		return CircuitStateHalfOpen
	}
	return b.state
}

func (b *CircuitBreaker) enter(state CircuitState) {
	b.state = state
	b.failures, b.probes, b.passed = 0, 0, 0
	if state == CircuitStateOpen {
		b.openedAt = b.now()
	}
}
