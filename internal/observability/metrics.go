package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrorRate counts Redis errors by operation type.
	RedisErrorRate = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "portfolio_redis_error_rate_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "portfolio_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// ContactSubmissions counts contact form submissions by outcome
	// (accepted, invalid, rate_limited).
	ContactSubmissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "portfolio_contact_submissions_total",
		Help: "Total number of contact form submissions by outcome",
	}, []string{"outcome"})

	// NotificationsSent counts outbound notifications by channel and result.
	NotificationsSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "portfolio_notifications_total",
		Help: "Total number of outbound notifications by channel and result",
	}, []string{"channel", "result"})

	// RateLimitRejections counts requests refused by the rate limiter per resource.
	RateLimitRejections = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "portfolio_rate_limit_rejections_total",
		Help: "Total number of requests rejected by the rate limiter",
	}, []string{"resource"})

	// MarkdownRenderLatency records how long Markdown to HTML conversion takes.
	MarkdownRenderLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "portfolio_markdown_render_seconds",
		Help:    "Markdown render latency in seconds",
		Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
	})
)

// TrackQuery returns a function that records query latency when called (e.g. defer).
func TrackQuery(operation, table string) func() {
	start := time.Now()
	return func() {
		DatabaseQueryLatency.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
	}
}

// TrackRender returns a function that records Markdown render latency when called.
func TrackRender() func() {
	start := time.Now()
	return func() {
		MarkdownRenderLatency.Observe(time.Since(start).Seconds())
	}
}
