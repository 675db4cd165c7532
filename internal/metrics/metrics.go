package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Comparison pipeline metrics
	ComparisonRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lifilens_comparison_requests_total",
			Help: "Total number of route comparison requests by outcome",
		},
		[]string{"outcome"},
	)

	ComparisonDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "lifilens_comparison_duration_seconds",
		Help:    "Full comparison pipeline duration in seconds",
		Buckets: prometheus.DefBuckets,
	})

	VariantRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lifilens_variant_requests_total",
			Help: "Total number of alternative-route variant requests by status",
		},
		[]string{"variant", "status"},
	)

	CandidateRoutes = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "lifilens_candidate_routes",
		Help:    "Number of deduplicated candidate routes per comparison",
		Buckets: []float64{0, 1, 2, 3, 5, 8, 13, 21},
	})

	// Upstream API metrics
	UpstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lifilens_upstream_requests_total",
			Help: "Total number of upstream aggregation API requests",
		},
		[]string{"endpoint", "status"},
	)

	UpstreamDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "lifilens_upstream_duration_seconds",
			Help:    "Upstream aggregation API request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	// Cache metrics
	StatusCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lifilens_status_cache_hits_total",
		Help: "Total number of transaction status cache hits",
	})

	StatusCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lifilens_status_cache_misses_total",
		Help: "Total number of transaction status cache misses",
	})

	RouteCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lifilens_route_cache_hits_total",
		Help: "Total number of route response cache hits",
	})

	RouteCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lifilens_route_cache_misses_total",
		Help: "Total number of route response cache misses",
	})

	StatusCacheSize = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "lifilens_status_cache_size",
		Help: "Current number of entries in the status cache",
	})

	// HTTP metrics
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lifilens_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "lifilens_http_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
)
