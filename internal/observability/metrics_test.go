package observability

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics_RecordsCounters(t *testing.T) {
	m := NewMetrics()

	m.RecordRosterMutation("buy", "ok")
	m.RecordRosterMutation("buy", "ok")
	m.RecordRosterMutation("sell", "notOwned")
	m.RecordRoundStart()
	m.RecordStatEntry()
	m.RecordH2HRecompute(3, 1)

	if got := testutil.ToFloat64(m.rosterMutations.WithLabelValues("buy", "ok")); got != 2 {
		t.Fatalf("unexpected buy count: %v", got)
	}
	if got := testutil.ToFloat64(m.rosterMutations.WithLabelValues("sell", "notOwned")); got != 1 {
		t.Fatalf("unexpected sell count: %v", got)
	}
	if got := testutil.ToFloat64(m.roundStarts); got != 1 {
		t.Fatalf("unexpected round start count: %v", got)
	}
	if got := testutil.ToFloat64(m.statEntries); got != 1 {
		t.Fatalf("unexpected stat entry count: %v", got)
	}
	if got := testutil.ToFloat64(m.h2hRecomputed.WithLabelValues("failed")); got != 1 {
		t.Fatalf("unexpected h2h failed count: %v", got)
	}
}

func TestMetrics_HandlerExposesHTTPSeries(t *testing.T) {
	m := NewMetrics()
	m.ObserveHTTP(http.MethodGet, "GET /v1/players", http.StatusOK, 20*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "fantasy_cricket_http_requests_total") {
		t.Fatalf("expected http request series in output")
	}
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics

	m.RecordRosterMutation("buy", "ok")
	m.RecordRoundStart()
	m.ObserveHTTP(http.MethodGet, "/", http.StatusOK, time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 for nil metrics, got %d", rec.Code)
	}
}
