package main

import "errors"

// KnownMetrics is the set of metric names exported by offer-finder plus
// recording rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"offer_finder_http_request_duration_seconds": true,
	"offer_finder_http_requests_total":           true,

	// Health metrics.
	"offer_finder_healthz_up": true,
	"offer_finder_readyz_up":  true,

	// Offer generation metrics.
	"offer_finder_offer_generation_duration_seconds": true,
	"offer_finder_offer_generation_failures_total":   true,
	"offer_finder_offers_dropped_total":              true,
	"offer_finder_llm_daily_usage":                   true,
	"offer_finder_llm_daily_limit_hits_total":        true,

	// Availability metrics.
	"offer_finder_offers_evaluated_total":           true,
	"offer_finder_offers_unavailable_total":         true,
	"offer_finder_profile_resolve_duration_seconds": true,

	// Profile cache metrics.
	"offer_finder_profile_cache_hits_total":    true,
	"offer_finder_profile_cache_misses_total":  true,
	"offer_finder_profile_cache_errors_total":  true,
	"offer_finder_cache_warm_duration_seconds": true,

	// Notification metrics.
	"offer_finder_unknown_stores_notified_total": true,
	"offer_finder_notification_failures_total":   true,
	"offer_finder_notification_duration_seconds": true,

	// Recording rules.
	"offer_finder:http_requests:rate5m":             true,
	"offer_finder:http_errors:rate5m":               true,
	"offer_finder:offer_generation_failures:rate5m": true,
	"offer_finder:offers_unavailable:rate5m":        true,
	"offer_finder:profile_cache_hit_ratio:5m":       true,
	"offer_finder:notification_duration:p95_5m":     true,

	// Standard Prometheus metrics referenced in dashboards.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
