package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	persistErrors    prometheus.Counter
	upstreamRequests *prometheus.CounterVec
	upstreamLatency  *prometheus.HistogramVec
	portfolios       prometheus.Gauge
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		persistErrors: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "portfolio_persist_errors_total",
				Help: "Total number of failed portfolio file writes",
			},
		),
		upstreamRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "upstream_requests_total",
				Help: "Total number of outbound upstream requests",
			},
			[]string{"service", "outcome"},
		),
		upstreamLatency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "upstream_request_duration_seconds",
				Help:    "Duration of outbound upstream requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"service"},
		),
		portfolios: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "portfolios_total",
				Help: "Current number of portfolio records held in memory",
			},
		),
	}
}

// RecordPersistError records a failed file write.
func (r *Recorder) RecordPersistError() {
	r.persistErrors.Inc()
}

// RecordUpstreamRequest records an outbound call outcome ("ok" or "error").
func (r *Recorder) RecordUpstreamRequest(service, outcome string) {
	r.upstreamRequests.WithLabelValues(service, outcome).Inc()
}

// RecordUpstreamLatency records outbound call latency in seconds.
func (r *Recorder) RecordUpstreamLatency(service string, seconds float64) {
	r.upstreamLatency.WithLabelValues(service).Observe(seconds)
}

// RecordPortfolioCount records the current size of the collection.
func (r *Recorder) RecordPortfolioCount(n int) {
	r.portfolios.Set(float64(n))
}
