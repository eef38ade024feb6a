// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/donaldgifford/offer-finder/tools/dashgen/panels"
)

// UID is the stable dashboard identifier.
const UID = "offer-finder-overview"

// BuildOverview constructs the Offer Finder overview dashboard.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("Offer Finder Overview").
		Uid(UID).
		Tags([]string{"offer-finder"}).
		Refresh("30s").
		Time("now-6h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	b.WithRow(dashboard.NewRowBuilder("Overview").
		WithPanel(panels.HealthzStat()).
		WithPanel(panels.ReadyzStat()).
		WithPanel(panels.LLMUsageStat()).
		WithPanel(panels.UptimeStat()))

	b.WithRow(dashboard.NewRowBuilder("HTTP").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.ErrorRate()))

	b.WithRow(dashboard.NewRowBuilder("Offer Generation").
		WithPanel(panels.GenerationDuration()).
		WithPanel(panels.GenerationFailures()).
		WithPanel(panels.OffersDropped()).
		WithPanel(panels.LimitHits()))

	b.WithRow(dashboard.NewRowBuilder("Availability").
		WithPanel(panels.OffersEvaluated()).
		WithPanel(panels.UnavailableByReason()).
		WithPanel(panels.ResolveDuration()))

	b.WithRow(dashboard.NewRowBuilder("Profile Cache").
		WithPanel(panels.CacheHitRatio()).
		WithPanel(panels.CacheErrors()).
		WithPanel(panels.WarmDuration()))

	b.WithRow(dashboard.NewRowBuilder("Notifications").
		WithPanel(panels.UnknownStoresRate()).
		WithPanel(panels.NotificationLatency()).
		WithPanel(panels.NotificationFailures()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
