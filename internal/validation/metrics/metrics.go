package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics for the validation service.
type Metrics struct {
	OutcomesTotal  *prometheus.CounterVec
	LookupLatency  prometheus.Histogram
	RequestsFailed prometheus.Counter
}

// New creates and registers all validation metrics.
func New() *Metrics {
	return &Metrics{
		OutcomesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "roster_validation_outcomes_total",
			Help: "Total number of validation outcomes, labeled by outcome",
		}, []string{"outcome"}),
		LookupLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "roster_validation_lookup_latency_seconds",
			Help:    "Latency of directory lookups in seconds",
			Buckets: prometheus.DefBuckets,
		}),
		RequestsFailed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "roster_validation_requests_failed_total",
			Help: "Total number of validation requests rejected before lookup",
		}),
	}
}

// IncrementOutcome counts one validation outcome.
func (m *Metrics) IncrementOutcome(outcome string) {
	m.OutcomesTotal.WithLabelValues(outcome).Inc()
}

// ObserveLookupLatency records the latency of one lookup.
func (m *Metrics) ObserveLookupLatency(duration time.Duration) {
	m.LookupLatency.Observe(duration.Seconds())
}

// IncrementRequestsFailed counts one rejected request.
func (m *Metrics) IncrementRequestsFailed() {
	m.RequestsFailed.Inc()
}
