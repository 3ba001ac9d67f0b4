// Package observability provides Prometheus metrics for monitoring.
package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	// Analysis metrics
	AnalysesTotal    *prometheus.CounterVec
	AnalysisDuration prometheus.Histogram

	// Upstream fetch metrics
	FetchErrors  prometheus.Counter
	FetchLatency prometheus.Histogram

	// Cache metrics
	CacheHits   prometheus.Counter
	CacheMisses prometheus.Counter

	// API metrics
	RateLimitedRequests prometheus.Counter
	InvalidMintRequests prometheus.Counter

	// Stream metrics
	StreamSubscribers prometheus.Gauge
}

// Default is the process-wide metrics instance registered with the default
// Prometheus registry.
var Default = newMetrics()

func newMetrics() *Metrics {
	return &Metrics{
		AnalysesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "feescan_analyses_total",
			Help: "Completed analyses by verdict.",
		}, []string{"verdict"}),
		AnalysisDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "feescan_analysis_duration_seconds",
			Help:    "End-to-end analysis duration including the upstream fetch.",
			Buckets: prometheus.DefBuckets,
		}),
		FetchErrors: promauto.NewCounter(prometheus.CounterOpts{
			Name: "feescan_upstream_fetch_errors_total",
			Help: "Failed upstream fee API fetches.",
		}),
		FetchLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "feescan_upstream_fetch_duration_seconds",
			Help:    "Combined five-endpoint upstream fetch duration.",
			Buckets: prometheus.DefBuckets,
		}),
		CacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "feescan_cache_hits_total",
			Help: "Analysis cache hits.",
		}),
		CacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "feescan_cache_misses_total",
			Help: "Analysis cache misses.",
		}),
		RateLimitedRequests: promauto.NewCounter(prometheus.CounterOpts{
			Name: "feescan_rate_limited_requests_total",
			Help: "Requests rejected by the per-client rate limiter.",
		}),
		InvalidMintRequests: promauto.NewCounter(prometheus.CounterOpts{
			Name: "feescan_invalid_mint_requests_total",
			Help: "Requests rejected by the mint address validator.",
		}),
		StreamSubscribers: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "feescan_stream_subscribers",
			Help: "Connected WebSocket stream subscribers.",
		}),
	}
}

// RecordAnalysis records a completed analysis.
func RecordAnalysis(verdict string, seconds float64) {
	Default.AnalysesTotal.WithLabelValues(verdict).Inc()
	Default.AnalysisDuration.Observe(seconds)
}

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
