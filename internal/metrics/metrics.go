// Package metrics defines Prometheus metrics for offer-finder.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "offer_finder"

// HTTP metrics.
var (
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "path", "status"})
)

// Health metrics.
var (
	HealthzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "healthz_up",
		Help:      "Whether the last liveness probe succeeded (1) or failed (0).",
	})

	ReadyzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "readyz_up",
		Help:      "Whether the last readiness probe succeeded (1) or failed (0).",
	})
)

// Offer generation metrics.
var (
	OfferGenerationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "offer_generation_duration_seconds",
		Help:      "Duration of candidate offer generation calls in seconds.",
		Buckets:   []float64{0.5, 1, 2.5, 5, 10, 20, 30, 60},
	})

	OfferGenerationFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "offer_generation_failures_total",
		Help:      "Total number of failed candidate offer generation calls.",
	})

	OffersDroppedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "offers_dropped_total",
		Help:      "Total number of raw offers dropped by the collector.",
	})

	LLMDailyUsage = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "llm_daily_usage",
		Help:      "Current LLM call count within the rolling 24-hour window.",
	})

	LLMDailyLimitHits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "llm_daily_limit_hits_total",
		Help:      "Total number of times the daily LLM call limit was reached.",
	})
)

// Availability metrics.
var (
	OffersEvaluatedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "offers_evaluated_total",
		Help:      "Total number of offers evaluated for availability.",
	}, []string{"operation"})

	OffersUnavailableTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "offers_unavailable_total",
		Help:      "Total number of offers rejected, by reason code.",
	}, []string{"reason"})

	ProfileResolveDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "profile_resolve_duration_seconds",
		Help:      "Duration of store profile resolution in seconds.",
		Buckets:   prometheus.DefBuckets,
	})
)

// Store profile cache metrics.
var (
	ProfileCacheHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "profile_cache_hits_total",
		Help:      "Total number of store profile cache hits.",
	})

	ProfileCacheMissesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "profile_cache_misses_total",
		Help:      "Total number of store profile cache misses.",
	})

	ProfileCacheErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "profile_cache_errors_total",
		Help:      "Total number of Redis errors in the store profile cache.",
	})

	CacheWarmDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "cache_warm_duration_seconds",
		Help:      "Duration of store profile cache warm-up runs in seconds.",
		Buckets:   prometheus.DefBuckets,
	})
)

// Notification metrics.
var (
	UnknownStoresNotifiedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "unknown_stores_notified_total",
		Help:      "Total number of not-onboarded store domains reported.",
	})

	NotificationFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notification_failures_total",
		Help:      "Total number of notification send failures.",
	})

	NotificationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "notification_duration_seconds",
		Help:      "Duration of webhook notification requests.",
		Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
	})
)
