// Package server exposes the BigUint/BaseX engine over HTTP: JSON
// encode/decode/arith endpoints, a liveness probe, and a Prometheus
// metrics endpoint.
package server

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors for the HTTP surface and the
// handler that serves their current values.
type Metrics struct {
	activeRequests prometheus.Gauge
	requestsTotal  *prometheus.CounterVec
	handler        http.Handler
}

// NewMetrics registers a fresh set of collectors against a private registry
// and builds the /metrics handler. Using a private registry (rather than
// the global prometheus.DefaultRegisterer) keeps repeated NewMetrics calls
// in tests from colliding on duplicate registration.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()

	active := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "basex_active_requests",
		Help: "Number of HTTP requests currently being served.",
	})
	total := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "basex_requests_total",
		Help: "Total HTTP requests served, by route and status code.",
	}, []string{"route", "status"})

	// Pre-initialize the known routes at zero so basex_requests_total
	// appears in /metrics from startup instead of only after the first
	// request completes (a CounterVec with no observed label combination
	// is omitted from the exposition entirely).
	for _, route := range []string{"/v1/encode", "/v1/decode", "/v1/arith", "/healthz", "/metrics"} {
		total.WithLabelValues(route, strconv.Itoa(http.StatusOK))
	}

	reg.MustRegister(active, total, collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	return &Metrics{
		activeRequests: active,
		requestsTotal:  total,
		handler:        promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
	}
}

// IncrementActiveRequests marks the start of an in-flight request.
func (m *Metrics) IncrementActiveRequests() { m.activeRequests.Inc() }

// DecrementActiveRequests marks the end of an in-flight request.
func (m *Metrics) DecrementActiveRequests() { m.activeRequests.Dec() }

// ObserveRequest records a completed request against its route and status.
func (m *Metrics) ObserveRequest(route string, status int) {
	m.requestsTotal.WithLabelValues(route, strconv.Itoa(status)).Inc()
}

// WritePrometheus serves the current metrics in the Prometheus exposition
// format.
func (m *Metrics) WritePrometheus(w http.ResponseWriter, r *http.Request) {
	m.handler.ServeHTTP(w, r)
}

// statusRecorder captures the status code written by a downstream handler
// so metricsMiddleware can label the request after the fact.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(status int) {
	rec.status = status
	rec.ResponseWriter.WriteHeader(status)
}

// metricsMiddleware tracks in-flight and completed request counts for next.
func (s *Server) metricsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.metrics.IncrementActiveRequests()
		defer s.metrics.DecrementActiveRequests()

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next(rec, r)
		s.metrics.ObserveRequest(r.URL.Path, rec.status)
	}
}

// handleMetrics serves the /metrics endpoint, rejecting non-GET methods.
func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	s.metrics.WritePrometheus(w, r)
}
