// Package metrics provides Prometheus metrics for news-dashboard.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// UpstreamRequestsTotal counts news API calls by endpoint and outcome.
	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "newsdash",
			Name:      "upstream_requests_total",
			Help:      "Total number of news API requests",
		},
		[]string{"endpoint", "status"},
	)

	// UpstreamRequestDuration measures news API call latency.
	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "newsdash",
			Name:      "upstream_request_duration_seconds",
			Help:      "Duration of news API requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	// DashboardLoadsTotal counts shell loads by resulting phase.
	DashboardLoadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "newsdash",
			Name:      "dashboard_loads_total",
			Help:      "Total number of dashboard loads by resulting phase",
		},
		[]string{"phase"},
	)

	// FilteredArticles observes the size of the filtered collection after each recompute.
	FilteredArticles = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "newsdash",
			Name:      "filtered_articles",
			Help:      "Distribution of filtered collection sizes",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250, 500},
		},
	)

	// ActiveSessions tracks dashboard sessions held in memory.
	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "newsdash",
			Name:      "active_sessions",
			Help:      "Number of dashboard sessions held in memory",
		},
	)
)

// RecordUpstream records one news API call. statusCode 0 means a transport failure.
func RecordUpstream(endpoint string, statusCode int, duration time.Duration) {
	status := "error"
	if statusCode > 0 {
		status = strconv.Itoa(statusCode)
	}
	UpstreamRequestsTotal.WithLabelValues(endpoint, status).Inc()
	UpstreamRequestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

// RecordLoad records the phase a shell ended its load in.
func RecordLoad(phase string) {
	DashboardLoadsTotal.WithLabelValues(phase).Inc()
}

// RecordFiltered records the size of a recomputed filtered collection.
func RecordFiltered(size int) {
	FilteredArticles.Observe(float64(size))
}

// SetActiveSessions sets the session gauge.
func SetActiveSessions(n int) {
	ActiveSessions.Set(float64(n))
}
