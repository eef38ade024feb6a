package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// GenerationDuration returns a timeseries panel showing p50 and p95 offer
// generation latencies.
func GenerationDuration() *timeseries.PanelBuilder {
	const metric = "offer_finder_offer_generation_duration_seconds"
	return timeseries.NewPanelBuilder().
		Title("Offer Generation Duration").
		Description("LLM candidate offer call duration percentiles").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(Quantile(0.50, metric), "p50", "A")).
		WithTarget(PromQuery(Quantile(0.95, metric), "p95", "B")).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// GenerationFailures returns a timeseries panel showing the offer generation
// failure rate.
func GenerationFailures() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Generation Failures").
		Description("Failed or unparseable LLM offer calls per second").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(`offer_finder:offer_generation_failures:rate5m`, "failures/s", "A")).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenYellowRed(0.01, 0.1)).
		ColorScheme(ColorSchemeThresholds()).
		DrawStyle(common.GraphDrawStyleLine)
}

// OffersDropped returns a timeseries panel showing raw offers discarded by
// the collector for missing or invalid fields.
func OffersDropped() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Offers Dropped").
		Description("Raw offers rejected for missing fields, bad prices, or duplicate domains").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(`sum(rate(offer_finder_offers_dropped_total[5m]))`, "dropped/s", "A")).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// LimitHits returns a stat panel counting daily LLM quota exhaustions.
func LimitHits() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Quota Exhausted (24h)").
		Description("Searches refused because the daily LLM call limit was reached").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(`increase(offer_finder_llm_daily_limit_hits_total[24h])`, "", "A")).
		Thresholds(ThresholdsGreenYellowRed(1, 10)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeNone)
}
