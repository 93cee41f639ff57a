package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/user"
)

func TestRequireAuth_HeaderShapes(t *testing.T) {
	verifier := stubVerifier{"good": {UserID: "u1", Username: "alice"}}

	var seen user.Principal
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = principalFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})
	handler := RequireAuth(verifier, nil, next)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{name: "missing", header: "", want: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic good", want: http.StatusUnauthorized},
		{name: "empty token", header: "Bearer  ", want: http.StatusUnauthorized},
		{name: "unknown token", header: "Bearer bad", want: http.StatusUnauthorized},
		{name: "lowercase scheme", header: "bearer good", want: http.StatusNoContent},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/me/team", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			if rec.Code != tc.want {
				t.Fatalf("expected %d, got %d: %s", tc.want, rec.Code, rec.Body.String())
			}
		})
	}

	if seen.UserID != "u1" {
		t.Fatalf("expected principal u1 in request context, got %+v", seen)
	}
}

func TestRequireAdmin(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	handler := RequireAdmin(next)

	tests := []struct {
		name      string
		principal *user.Principal
		want      int
	}{
		{name: "no principal", want: http.StatusUnauthorized},
		{name: "standard user", principal: &user.Principal{UserID: "u1", Role: user.RoleStandard}, want: http.StatusForbidden},
		{name: "admin", principal: &user.Principal{UserID: "a1", Role: user.RoleAdmin}, want: http.StatusNoContent},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v1/admin/rounds", nil)
			if tc.principal != nil {
				req = req.WithContext(withPrincipal(req.Context(), *tc.principal))
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			if rec.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, rec.Code)
			}
		})
	}
}
