// Package observability exposes Prometheus instrumentation for the matching
// engine.
package observability

import (
	"fmt"
	"net/http"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the engine's Prometheus collectors on a private registry.
type Metrics struct {
	registry     *prom.Registry
	matchTotal   *prom.CounterVec
	matchSeconds *prom.HistogramVec
	collabTotal  *prom.CounterVec
}

// NewMetrics creates and registers the engine's collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prom.NewRegistry(),
		matchTotal: prom.NewCounterVec(prom.CounterOpts{
			Name: "match_requests_total",
			Help: "Total number of matching pipeline runs",
		}, []string{"strategy", "outcome"}),
		matchSeconds: prom.NewHistogramVec(prom.HistogramOpts{
			Name:    "match_request_seconds",
			Help:    "Matching pipeline duration in seconds",
			Buckets: prom.DefBuckets,
		}, []string{"strategy"}),
		collabTotal: prom.NewCounterVec(prom.CounterOpts{
			Name: "collaborator_calls_total",
			Help: "Total number of external collaborator calls",
		}, []string{"op", "success"}),
	}
	m.registry.MustRegister(m.matchTotal, m.matchSeconds, m.collabTotal)
	return m
}

// ObserveMatch records one completed matching pipeline run.
func (m *Metrics) ObserveMatch(strategy, outcome string, seconds float64) {
	m.matchTotal.WithLabelValues(strategy, outcome).Inc()
	m.matchSeconds.WithLabelValues(strategy).Observe(seconds)
}

// IncCollaborator records one external collaborator call.
func (m *Metrics) IncCollaborator(op string, success bool) {
	m.collabTotal.WithLabelValues(op, fmt.Sprintf("%t", success)).Inc()
}

// Handler returns the HTTP handler serving the /metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
