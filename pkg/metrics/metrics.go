package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request latency in seconds.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)

	// Database query latency in seconds.
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
		},
		[]string{"operation", "table"},
	)

	// Record mutation counts, labeled by entity and action.
	RecordMutationCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "record_mutation_count",
			Help: "Total number of record mutations",
		},
		[]string{"entity", "action"},
	)

	// Dashboard cache hit/miss counts.
	DashboardCacheCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_cache_count",
			Help: "Dashboard stats cache lookups",
		},
		[]string{"result"}, // result: hit, miss
	)
)

// RecordHTTPRequestDuration records one request's latency.
func RecordHTTPRequestDuration(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// RecordDBQueryDuration records one query's latency.
func RecordDBQueryDuration(operation, table string, duration time.Duration) {
	DBQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
}

// IncrementRecordMutation increments the mutation counter.
func IncrementRecordMutation(entity, action string) {
	RecordMutationCount.WithLabelValues(entity, action).Inc()
}

// IncrementDashboardCache increments the cache lookup counter.
func IncrementDashboardCache(result string) {
	DashboardCacheCount.WithLabelValues(result).Inc()
}
