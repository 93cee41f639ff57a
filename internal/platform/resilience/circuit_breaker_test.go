package resilience

import (
	"errors"
	"testing"
	"time"
)

func TestCircuitBreaker_BasicTransitions(t *testing.T) {
	b := NewCircuitBreaker(2, 5*time.Second, 1)

	now := time.Date(2026, 2, 11, 12, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return now }

	if err := b.Allow(); err != nil {
		t.Fatalf("expected allow in closed state: %v", err)
	}

	b.RecordFailure()
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected closed after first failure, got %s", state)
	}

	b.RecordFailure()
	if state := b.State(); state != CircuitStateOpen {
		t.Fatalf("expected open after threshold failures, got %s", state)
	}

	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected circuit open error, got %v", err)
	}

	now = now.Add(6 * time.Second)
	if err := b.Allow(); err != nil {
		t.Fatalf("expected half-open probe to pass, got %v", err)
	}
	if state := b.State(); state != CircuitStateHalfOpen {
		t.Fatalf("expected half-open state, got %s", state)
	}

	b.RecordSuccess()
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected closed after successful half-open probe, got %s", state)
	}
}

func TestCircuitBreaker_Execute(t *testing.T) {
	b := NewCircuitBreaker(1, time.Minute, 1)
	errBusiness := errors.New("token inactive")
	errTransport := errors.New("connection refused")
	transient := func(err error) bool { return errors.Is(err, errTransport) }

	if err := b.Execute(func() error { return errBusiness }, transient); !errors.Is(err, errBusiness) {
		t.Fatalf("expected business error passthrough, got %v", err)
	}
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("business errors should not trip the breaker, got %s", state)
	}

	_ = b.Execute(func() error { return errTransport }, transient)
	if state := b.State(); state != CircuitStateOpen {
		t.Fatalf("expected open after transport failure, got %s", state)
	}

	called := false
	err := b.Execute(func() error { called = true; return nil }, transient)
	if !errors.Is(err, ErrCircuitOpen) || called {
		t.Fatalf("expected short-circuit, got err=%v called=%t", err, called)
	}
}

func TestCircuitBreaker_NilAllowsEverything(t *testing.T) {
	var b *CircuitBreaker
	if NewFromConfig(CircuitBreakerConfig{Enabled: false}) != nil {
		t.Fatalf("expected nil breaker when disabled")
	}
	if err := b.Execute(func() error { return nil }, nil); err != nil {
		t.Fatalf("nil breaker should run fn: %v", err)
	}
	b.RecordFailure()
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("nil breaker should report closed, got %s", state)
	}
}

func TestCircuitBreaker_HalfOpenProbeFailureReopens(t *testing.T) {
	b := NewCircuitBreaker(1, time.Second, 2)
	now := time.Date(2026, 2, 11, 12, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return now }

	b.RecordFailure()
	now = now.Add(2 * time.Second)

	for i := 0; i < 2; i++ {
		if err := b.Allow(); err != nil {
			t.Fatalf("probe %d: expected admit, got %v", i+1, err)
		}
	}
	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected probes above HalfOpenMaxReq to be rejected, got %v", err)
	}

	b.RecordFailure()
	if state := b.State(); state != CircuitStateOpen {
		t.Fatalf("expected failed probe to reopen, got %s", state)
	}
	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected reopened circuit to reject, got %v", err)
	}
}

