package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/fantasy"
	"github.com/riskibarqy/fantasy-cricket/internal/usecase"
)

func TestWriteSuccess_GoogleEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeSuccess(context.Background(), rec, http.StatusOK, map[string]string{"status": "ok"})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}

	if got, _ := body["apiVersion"].(string); got != "2.0" {
		t.Fatalf("expected apiVersion=2.0, got %v", body["apiVersion"])
	}
	if _, ok := body["data"]; !ok {
		t.Fatalf("expected data key in success response")
	}
	if _, ok := body["error"]; ok {
		t.Fatalf("did not expect error key in success response")
	}
}

func TestWriteError_GoogleEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, fmt.Errorf("%w: bad payload", usecase.ErrInvalidInput))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}

	if got, _ := body["apiVersion"].(string); got != "2.0" {
		t.Fatalf("expected apiVersion=2.0, got %v", body["apiVersion"])
	}
	errorObj, ok := body["error"].(map[string]any)
	if !ok {
		t.Fatalf("expected error object in response")
	}
	if got, _ := errorObj["status"].(string); got != "INVALID_ARGUMENT" {
		t.Fatalf("expected error status INVALID_ARGUMENT, got %v", errorObj["status"])
	}
}

func TestMapError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		reason string
	}{
		{name: "roster rejection", err: fmt.Errorf("%w: %w", usecase.ErrInvalidInput, fantasy.ErrInsufficientBudget), status: http.StatusBadRequest, reason: "insufficientBudget"},
		{name: "bench cap", err: fmt.Errorf("%w: %w", usecase.ErrInvalidInput, fantasy.ErrSubstituteCapReached), status: http.StatusBadRequest, reason: "substituteCapReached"},
		{name: "invalid input", err: fmt.Errorf("%w: bad", usecase.ErrInvalidInput), status: http.StatusBadRequest, reason: "invalidInput"},
		{name: "not found", err: fmt.Errorf("%w: player", usecase.ErrNotFound), status: http.StatusNotFound, reason: "notFound"},
		{name: "conflict", err: fmt.Errorf("%w: sequence", usecase.ErrConflict), status: http.StatusConflict, reason: "conflict"},
		{name: "locked", err: fmt.Errorf("%w: round 1", usecase.ErrLocked), status: http.StatusLocked, reason: "roundLocked"},
		{name: "unauthorized", err: usecase.ErrUnauthorized, status: http.StatusUnauthorized, reason: "unauthorized"},
		{name: "forbidden", err: usecase.ErrForbidden, status: http.StatusForbidden, reason: "forbidden"},
		{name: "dependency", err: usecase.ErrDependencyUnavailable, status: http.StatusServiceUnavailable, reason: "dependencyUnavailable"},
		{name: "unknown", err: errors.New("boom"), status: http.StatusInternalServerError, reason: "internalError"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapError(tt.err)
			if got.HTTPStatus != tt.status || got.Reason != tt.reason {
				t.Fatalf("mapError(%v)=%d/%s want=%d/%s", tt.err, got.HTTPStatus, got.Reason, tt.status, tt.reason)
			}
		})
	}
}

func TestWriteError_HidesInternalMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, errors.New("pq: connection refused"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "connection refused") {
		t.Fatalf("internal error detail leaked: %s", rec.Body.String())
	}
}
