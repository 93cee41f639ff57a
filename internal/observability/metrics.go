package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricsNamespace = "fantasy_cricket"

// Metrics owns a private registry so tests can build as many as they like.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
	rosterMutations *prometheus.CounterVec
	statEntries     prometheus.Counter
	roundStarts     prometheus.Counter
	h2hRecomputed   *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5},
		}, []string{"method", "route"}),
		rosterMutations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "roster_mutations_total",
			Help:      "Roster mutations by action and outcome.",
		}, []string{"action", "outcome"}),
		statEntries: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "stat_entries_total",
			Help:      "Stat entries recorded.",
		}),
		roundStarts: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "round_starts_total",
			Help:      "Rounds started.",
		}),
		h2hRecomputed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "h2h_recomputed_total",
			Help:      "Head-to-head matchups recomputed, by outcome.",
		}, []string{"outcome"}),
	}
}

func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// RecordRosterMutation counts one mutation; outcome is "ok" or the rejection reason.
func (m *Metrics) RecordRosterMutation(action, outcome string) {
	if m == nil {
		return
	}
	m.rosterMutations.WithLabelValues(action, outcome).Inc()
}

func (m *Metrics) RecordStatEntry() {
	if m == nil {
		return
	}
	m.statEntries.Inc()
}

func (m *Metrics) RecordRoundStart() {
	if m == nil {
		return
	}
	m.roundStarts.Inc()
}

func (m *Metrics) RecordH2HRecompute(updated, failed int) {
	if m == nil {
		return
	}
	m.h2hRecomputed.WithLabelValues("updated").Add(float64(updated))
	m.h2hRecomputed.WithLabelValues("failed").Add(float64(failed))
}
