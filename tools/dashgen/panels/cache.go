package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/gauge"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// CacheHitRatio returns a gauge panel showing the profile cache hit ratio.
func CacheHitRatio() *gauge.PanelBuilder {
	return gauge.NewPanelBuilder().
		Title("Profile Cache Hit %").
		Description("Store profile lookups served from Redis").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(StatWidth).
		WithTarget(PromQuery(`offer_finder:profile_cache_hit_ratio:5m * 100`, "", "A")).
		Unit("percent").
		Min(0).
		Max(100).
		Thresholds(ThresholdsRedGreen(80)).
		ColorScheme(ColorSchemeThresholds())
}

// CacheErrors returns a timeseries panel showing Redis errors in the
// profile cache. Lookups fall back to PostgreSQL on error.
func CacheErrors() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Profile Cache Errors").
		Description("Redis errors per second; lookups fall back to PostgreSQL").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(9).
		WithTarget(PromQuery(`sum(rate(offer_finder_profile_cache_errors_total[5m]))`, "errors/s", "A")).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenYellowRed(0.01, 0.1)).
		ColorScheme(ColorSchemeThresholds()).
		DrawStyle(common.GraphDrawStyleLine)
}

// WarmDuration returns a timeseries panel showing cache warm-up duration.
func WarmDuration() *timeseries.PanelBuilder {
	const metric = "offer_finder_cache_warm_duration_seconds"
	return timeseries.NewPanelBuilder().
		Title("Cache Warm Duration").
		Description("Duration of scheduled profile cache warm-ups").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(9).
		WithTarget(PromQuery(Quantile(0.95, metric), "p95", "A")).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}
