package pagination

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Endpoint labels for the listing metrics.
const (
	EndpointList   = "list"
	EndpointSearch = "search"
)

var (
	// RequestsTotal counts page requests by endpoint, HTTP status and page bucket.
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "article_pagination_requests_total",
			Help: "Total number of paginated article requests",
		},
		[]string{"endpoint", "status", "page_range"},
	)

	// DurationSeconds tracks how long a page takes, per layer (handler, list).
	DurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "article_pagination_duration_seconds",
			Help:    "Paginated request duration distribution",
			Buckets: []float64{0.01, 0.05, 0.1, 0.2, 0.5, 1.0, 2.0},
		},
		[]string{"operation"},
	)

	// PageSize records the page size actually served, after clamping.
	PageSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "article_pagination_page_size",
			Help:    "Distribution of served page sizes",
			Buckets: []float64{1, 5, 10, 20, 30, 50},
		},
	)

	// TotalCount is the article count seen by the last unfiltered listing.
	TotalCount = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "article_total_count",
			Help: "Current total number of articles",
		},
	)

	// ErrorsTotal counts failed page requests by endpoint and type (validation, database).
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "article_pagination_errors_total",
			Help: "Total number of failed paginated requests",
		},
		[]string{"endpoint", "type"},
	)
)

// RecordRequest counts one page request. page is ignored for non-200 statuses.
func RecordRequest(endpoint string, statusCode, page int) {
	bucket := "none"
	if statusCode < 300 {
		bucket = pageRangeBucket(page)
	}
	RequestsTotal.WithLabelValues(endpoint, strconv.Itoa(statusCode), bucket).Inc()
}

// RecordDuration records operation duration in seconds.
func RecordDuration(operation string, seconds float64) {
	DurationSeconds.WithLabelValues(operation).Observe(seconds)
}

// RecordPageSize observes the page size served.
func RecordPageSize(size int) {
	PageSize.Observe(float64(size))
}

// UpdateTotalCount updates the article count gauge.
func UpdateTotalCount(count int64) {
	TotalCount.Set(float64(count))
}

// RecordError counts a failed page request.
func RecordError(endpoint, errorType string) {
	ErrorsTotal.WithLabelValues(endpoint, errorType).Inc()
}

var pageRanges = []struct {
	upTo  int
	label string
}{
	{10, "1-10"},
	{50, "11-50"},
	{100, "51-100"},
}

func pageRangeBucket(page int) string {
	for _, r := range pageRanges {
		if page <= r.upTo {
			return r.label
		}
	}
	return "100+"
}
