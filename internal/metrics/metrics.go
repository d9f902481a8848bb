package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the API prometheus metrics
type Metrics struct {
	registry *prometheus.Registry

	// HTTP requests by route, method and status code
	RequestsTotal *prometheus.CounterVec

	// HTTP request latency by route and method
	RequestDuration *prometheus.HistogramVec

	// Normalization outcomes by operation and result ("ok" or an error kind)
	Normalizations *prometheus.CounterVec

	// Binding verification outcomes by namespace and result
	BindingVerifications *prometheus.CounterVec
}

// New creates a Metrics instance registered on its own registry
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "ff_identity_http_requests_total",
			Help: "Total HTTP requests by route, method and status code",
		}, []string{"route", "method", "status"}),

		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "ff_identity_http_request_duration_seconds",
			Help:    "Duration of HTTP requests by route and method",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"route", "method"}),

		Normalizations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "ff_identity_normalizations_total",
			Help: "Total DID and CAIP-10 normalizations by operation and result",
		}, []string{"operation", "result"}),

		BindingVerifications: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "ff_identity_binding_verifications_total",
			Help: "Total binding verifications by namespace and result",
		}, []string{"namespace", "result"}),
	}
}

// ObserveRequest records a completed HTTP request
func (m *Metrics) ObserveRequest(route, method, status string, d time.Duration) {
	if m == nil {
		return
	}
	m.RequestsTotal.WithLabelValues(route, method, status).Inc()
	m.RequestDuration.WithLabelValues(route, method).Observe(d.Seconds())
}

// IncrementNormalization records a normalization outcome
func (m *Metrics) IncrementNormalization(operation, result string) {
	if m != nil {
		m.Normalizations.WithLabelValues(operation, result).Inc()
	}
}

// IncrementBindingVerification records a binding verification outcome
func (m *Metrics) IncrementBindingVerification(namespace, result string) {
	if m != nil {
		m.BindingVerifications.WithLabelValues(namespace, result).Inc()
	}
}

// Registry returns the underlying registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler returns an HTTP handler exposing the registry in the prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
