package anubis

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/user"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/resilience"
	"github.com/riskibarqy/fantasy-cricket/internal/usecase"
)

func newTestClient(srv *httptest.Server, adminKey string, breaker resilience.CircuitBreakerConfig) *Client {
	return NewClient(srv.Client(), Options{
		BaseURL:        srv.URL,
		IntrospectPath: "/v1/auth/introspect",
		AdminKey:       adminKey,
		CacheTTL:       time.Minute,
		CircuitBreaker: breaker,
	}, nil)
}

func writeJSON(t *testing.T, w http.ResponseWriter, payload any) {
	t.Helper()
	body, err := sonic.Marshal(payload)
	if err != nil {
		t.Fatalf("encode response: %v", err)
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(body)
}

func TestClientVerifyAccessToken_SendsAdminKeyAndParsesResponse(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method: %s", r.Method)
		}
		if r.URL.Path != "/v1/auth/introspect" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("x-admin-key"); got != "admin-secret" {
			t.Errorf("unexpected x-admin-key: %s", got)
		}

		var req map[string]string
		if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request body: %v", err)
		}
		if req["token"] != "token-abc" {
			t.Errorf("unexpected token value: %s", req["token"])
		}

		writeJSON(t, w, map[string]any{
			"active":   true,
			"user_id":  "user-123",
			"username": "kohli-fan",
			"roles":    []string{"viewer", "Admin"},
		})
	}))
	defer srv.Close()

	client := newTestClient(srv, "admin-secret", resilience.CircuitBreakerConfig{Enabled: false})

	principal, err := client.VerifyAccessToken(context.Background(), "token-abc")
	if err != nil {
		t.Fatalf("verify token failed: %v", err)
	}
	if principal.UserID != "user-123" {
		t.Fatalf("unexpected user id: %s", principal.UserID)
	}
	if principal.Username != "kohli-fan" {
		t.Fatalf("unexpected username: %s", principal.Username)
	}
	if principal.Role != user.RoleAdmin {
		t.Fatalf("expected admin role, got %s", principal.Role)
	}
}

func TestClientVerifyAccessToken_InactiveToken(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, map[string]any{"active": false})
	}))
	defer srv.Close()

	client := newTestClient(srv, "admin-secret", resilience.CircuitBreakerConfig{Enabled: false})

	_, err := client.VerifyAccessToken(context.Background(), "invalid-token")
	if !errors.Is(err, usecase.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestClientVerifyAccessToken_EmptyToken(t *testing.T) {
	t.Parallel()

	client := NewClient(nil, Options{BaseURL: "http://127.0.0.1:1"}, nil)
	_, err := client.VerifyAccessToken(context.Background(), "   ")
	if !errors.Is(err, usecase.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestClientVerifyAccessToken_ForbiddenMappedToDependencyUnavailable(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":"forbidden"}`))
	}))
	defer srv.Close()

	client := newTestClient(srv, "wrong-key", resilience.CircuitBreakerConfig{Enabled: false})

	_, err := client.VerifyAccessToken(context.Background(), "token-abc")
	if !errors.Is(err, usecase.ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
}

func TestClientVerifyAccessToken_UsesTokenCache(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		writeJSON(t, w, map[string]any{
			"active":  true,
			"user_id": "user-cache",
		})
	}))
	defer srv.Close()

	client := newTestClient(srv, "admin-secret", resilience.CircuitBreakerConfig{Enabled: false})

	for i := 0; i < 2; i++ {
		principal, err := client.VerifyAccessToken(context.Background(), "cached-token")
		if err != nil {
			t.Fatalf("verify token failed: %v", err)
		}
		if principal.UserID != "user-cache" {
			t.Fatalf("unexpected user id: %s", principal.UserID)
		}
		if principal.Role != user.RoleStandard {
			t.Fatalf("expected standard role, got %s", principal.Role)
		}
	}

	if calls.Load() != 1 {
		t.Fatalf("expected one introspection call with cache, got %d", calls.Load())
	}
}

func TestClientVerifyAccessToken_BreakerOpensOnServerErrors(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := newTestClient(srv, "admin-secret", resilience.CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: 2,
		OpenTimeout:      time.Hour,
		HalfOpenMaxReq:   1,
	})

	for i := 0; i < 3; i++ {
		_, err := client.VerifyAccessToken(context.Background(), "token-abc")
		if !errors.Is(err, usecase.ErrDependencyUnavailable) {
			t.Fatalf("attempt %d: expected ErrDependencyUnavailable, got %v", i, err)
		}
	}

	if calls.Load() != 2 {
		t.Fatalf("expected breaker to stop the third call, got %d calls", calls.Load())
	}
}

func TestIntrospectionURL(t *testing.T) {
	tests := []struct {
		base string
		path string
		want string
	}{
		{base: "https://auth.example.com/", path: "/v1/auth/introspect", want: "https://auth.example.com/v1/auth/introspect"},
		{base: "https://auth.example.com", path: "v1/auth/introspect", want: "https://auth.example.com/v1/auth/introspect"},
		{base: "https://auth.example.com", path: "", want: "https://auth.example.com"},
		{base: "https://ignored", path: "https://other.example.com/introspect", want: "https://other.example.com/introspect"},
	}
	for _, tc := range tests {
		if got := introspectionURL(tc.base, tc.path); got != tc.want {
			t.Fatalf("introspectionURL(%q, %q) = %q, want %q", tc.base, tc.path, got, tc.want)
		}
	}
}
