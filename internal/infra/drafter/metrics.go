package drafter

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels recorded for every remote draft call.
const (
	outcomeSuccess     = "success"
	outcomeError       = "error"
	outcomeEmpty       = "empty"
	outcomeCircuitOpen = "circuit_open"
)

// MetricsRecorder abstracts draft metrics so tests can inject a fake.
type MetricsRecorder interface {
	// RecordDraft records one provider call with its outcome and latency.
	RecordDraft(provider, outcome string, duration time.Duration)
	// RecordLength records the length of a generated draft in characters.
	RecordLength(provider string, length int)
}

// PrometheusMetrics implements MetricsRecorder using Prometheus metrics.
type PrometheusMetrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	length   *prometheus.HistogramVec
}

var (
	prometheusMetricsInstance *PrometheusMetrics
	prometheusMetricsOnce     sync.Once
)

// NewPrometheusMetrics returns the process-wide recorder.
// Uses a singleton to avoid duplicate metric registration in tests.
func NewPrometheusMetrics() *PrometheusMetrics {
	prometheusMetricsOnce.Do(func() {
		prometheusMetricsInstance = &PrometheusMetrics{
			requests: promauto.NewCounterVec(prometheus.CounterOpts{
				Name: "article_draft_requests_total",
				Help: "Total number of draft provider calls by outcome",
			}, []string{"provider", "outcome"}),
			duration: promauto.NewHistogramVec(prometheus.HistogramOpts{
				Name:    "article_draft_duration_seconds",
				Help:    "Time taken by a draft provider call",
				Buckets: prometheus.ExponentialBuckets(0.25, 2, 10),
			}, []string{"provider"}),
			length: promauto.NewHistogramVec(prometheus.HistogramOpts{
				Name:    "article_draft_length_characters",
				Help:    "Distribution of generated draft lengths in characters",
				Buckets: []float64{100, 300, 500, 1000, 2000, 4000, 8000},
			}, []string{"provider"}),
		}
	})
	return prometheusMetricsInstance
}

// RecordDraft implements MetricsRecorder.RecordDraft
func (p *PrometheusMetrics) RecordDraft(provider, outcome string, duration time.Duration) {
	p.requests.WithLabelValues(provider, outcome).Inc()
	p.duration.WithLabelValues(provider).Observe(duration.Seconds())
}

// RecordLength implements MetricsRecorder.RecordLength
func (p *PrometheusMetrics) RecordLength(provider string, length int) {
	p.length.WithLabelValues(provider).Observe(float64(length))
}
