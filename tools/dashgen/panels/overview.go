package panels

import (
	"fmt"

	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
)

func upStat(title, description, metric string) *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title(title).
		Description(description).
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(metric, "", "A")).
		Thresholds(ThresholdsRedGreen(1)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeNone).
		TextMode(common.BigValueTextModeValue)
}

// HealthzStat returns a stat panel showing the liveness probe status.
func HealthzStat() *stat.PanelBuilder {
	return upStat("Healthz", "Liveness probe status (1 = ok, 0 = failing)", `offer_finder_healthz_up`)
}

// ReadyzStat returns a stat panel showing the readiness probe status. It
// drops to 0 when the database or Redis is unreachable.
func ReadyzStat() *stat.PanelBuilder {
	return upStat("Readyz", "Readiness probe status (1 = ready, 0 = not ready)", `offer_finder_readyz_up`)
}

// LLMUsageStat returns a stat panel showing LLM calls made in the current
// 24-hour window.
func LLMUsageStat() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("LLM Calls (24h)").
		Description("Offer generation calls counted against the daily quota").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(`offer_finder_llm_daily_usage`, "", "A")).
		Unit("short").
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemeThresholds()).
		GraphMode(common.BigValueGraphModeArea)
}

// UptimeStat returns a stat panel showing process uptime.
func UptimeStat() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Uptime").
		Description("Time since process start").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(
			fmt.Sprintf(`time() - process_start_time_seconds{job=%q}`, Job),
			"", "A",
		)).
		Unit("s").
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemeThresholds()).
		GraphMode(common.BigValueGraphModeNone)
}
