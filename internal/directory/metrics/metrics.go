package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics for the directory store.
type Metrics struct {
	ReloadsTotal   *prometheus.CounterVec
	ReloadDuration prometheus.Histogram
	RecordsLoaded  prometheus.Gauge
}

// New creates and registers all directory metrics.
func New() *Metrics {
	return &Metrics{
		ReloadsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "roster_directory_reloads_total",
			Help: "Total number of directory snapshot reloads, labeled by result",
		}, []string{"result"}),
		ReloadDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "roster_directory_reload_duration_seconds",
			Help:    "Duration of directory snapshot reloads in seconds",
			Buckets: prometheus.DefBuckets,
		}),
		RecordsLoaded: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "roster_directory_records",
			Help: "Number of records in the current directory snapshot",
		}),
	}
}

// ObserveReload records the outcome and duration of one reload attempt.
func (m *Metrics) ObserveReload(result string, duration time.Duration) {
	m.ReloadsTotal.WithLabelValues(result).Inc()
	m.ReloadDuration.Observe(duration.Seconds())
}

// SetRecordsLoaded updates the current snapshot size gauge.
func (m *Metrics) SetRecordsLoaded(count int) {
	m.RecordsLoaded.Set(float64(count))
}
