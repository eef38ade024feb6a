package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// OffersEvaluated returns a timeseries panel showing offers checked against
// shipping rules, split by search operation.
func OffersEvaluated() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Offers Evaluated").
		Description("Offers checked for availability per second, by operation").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(
			`sum by (operation) (rate(offer_finder_offers_evaluated_total[5m]))`,
			"{{operation}}", "A",
		)).
		Unit("short").
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// UnavailableByReason returns a stacked timeseries panel of rejected offers
// by reason code.
func UnavailableByReason() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Unavailable Offers by Reason").
		Description("NO_COUNTRY_MATCH, CITY_REQUIRED, and NO_CITY_MATCH rejections per second").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(`offer_finder:offers_unavailable:rate5m`, "{{reason}}", "A")).
		Unit("short").
		FillOpacity(30).
		LineWidth(1).
		Stacking(common.NewStackingConfigBuilder().Mode(common.StackingModeNormal)).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// ResolveDuration returns a timeseries panel showing store profile
// resolution latency.
func ResolveDuration() *timeseries.PanelBuilder {
	const metric = "offer_finder_profile_resolve_duration_seconds"
	return timeseries.NewPanelBuilder().
		Title("Profile Resolve Duration").
		Description("Time to load store profiles for one search").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(Quantile(0.50, metric), "p50", "A")).
		WithTarget(PromQuery(Quantile(0.95, metric), "p95", "B")).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}
