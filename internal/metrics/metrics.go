package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the collectors for the resolution pipeline and the HTTP API.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	SourceRequestsTotal *prometheus.CounterVec
	ResolutionsTotal    *prometheus.CounterVec
	StoreErrorsTotal    prometheus.Counter

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
}

// NewMetrics registers all collectors with reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		SourceRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "holiday_source_requests_total",
				Help: "Total number of remote holiday source requests",
			},
			[]string{"source", "outcome"},
		),

		ResolutionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "holiday_resolutions_total",
				Help: "Total number of year resolutions by origin",
			},
			[]string{"origin"},
		),

		StoreErrorsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "holiday_store_errors_total",
				Help: "Total number of unreadable or unwritable cache entries",
			},
		),

		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"path", "method", "status_code"},
		),

		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"path", "method"},
		),
	}
}

// SourceRequest counts one request against source ("primary" or "backup")
func (m *Metrics) SourceRequest(source, outcome string) {
	if m == nil {
		return
	}
	m.SourceRequestsTotal.WithLabelValues(source, outcome).Inc()
}

// Resolution counts one year resolution served from origin
func (m *Metrics) Resolution(origin string) {
	if m == nil {
		return
	}
	m.ResolutionsTotal.WithLabelValues(origin).Inc()
}

// StoreError counts one failed cache read or write
func (m *Metrics) StoreError() {
	if m == nil {
		return
	}
	m.StoreErrorsTotal.Inc()
}
