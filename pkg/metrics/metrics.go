package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the gateway's Prometheus collectors. One instance is built
// in bootstrap and shared by the HTTP middleware and the upstream client.
type Metrics struct {
	RequestsTotal    *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
	UpstreamRequests *prometheus.CounterVec
	UpstreamErrors   *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "portal_http_requests_total",
			Help: "Total HTTP requests served by the portal gateway.",
		}, []string{"method", "path", "status"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "portal_http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),
		UpstreamRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "portal_upstream_requests_total",
			Help: "Requests issued to the upstream medical API.",
		}, []string{"operation", "status"}),
		UpstreamErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "portal_upstream_errors_total",
			Help: "Upstream requests that failed before an HTTP status was received.",
		}, []string{"operation"}),
	}
}
