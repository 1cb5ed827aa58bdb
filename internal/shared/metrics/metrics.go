package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Database Metrics
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "analytics_db_query_duration_seconds",
			Help:    "Duration of database queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analytics_db_query_errors_total",
			Help: "Total number of failed database queries",
		},
		[]string{"operation"},
	)

	// API Metrics
	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "analytics_api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"method", "route", "status"},
	)

	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analytics_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "route", "status"},
	)

	// PeriodFallbacks counts period tokens that were not recognized and
	// resolved to the default window.
	PeriodFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "analytics_period_fallbacks_total",
			Help: "Total number of unrecognized period tokens resolved to the default window",
		},
	)
)

// ObserveQuery starts timing a database operation. Call the returned function
// with the query error once the operation finishes.
func ObserveQuery(operation string) func(err error) {
	start := time.Now()
	return func(err error) {
		DBQueryDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
		if err != nil {
			DBQueryErrors.WithLabelValues(operation).Inc()
		}
	}
}

// RecordAPIRequest records one finished HTTP request.
func RecordAPIRequest(method, route string, status int, duration time.Duration) {
	code := strconv.Itoa(status)
	APIRequestDuration.WithLabelValues(method, route, code).Observe(duration.Seconds())
	APIRequestsTotal.WithLabelValues(method, route, code).Inc()
}
