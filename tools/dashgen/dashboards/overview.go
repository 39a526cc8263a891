// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/donaldgifford/deal-desk/tools/dashgen/panels"
)

// BuildOverview constructs the Deal Desk Overview dashboard with all metric rows.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("Deal Desk Overview").
		Uid("deal-desk-overview").
		Tags([]string{"deal-desk", "crm"}).
		Refresh("1m").
		Time("now-24h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	b.WithRow(dashboard.NewRowBuilder("Overview").
		WithPanel(panels.HealthzStat()).
		WithPanel(panels.ReadyzStat()).
		WithPanel(panels.NextDigestStat()).
		WithPanel(panels.UptimeStat()))

	b.WithRow(dashboard.NewRowBuilder("HTTP").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.SlowestRoutes()).
		WithPanel(panels.ErrorRate()))

	b.WithRow(dashboard.NewRowBuilder("Scoring").
		WithPanel(panels.ScoreDistribution()).
		WithPanel(panels.MatchTiers()).
		WithPanel(panels.RescoreVolume()))

	b.WithRow(dashboard.NewRowBuilder("Focus").
		WithPanel(panels.FocusListSizes()).
		WithPanel(panels.AgingStat()).
		WithPanel(panels.OnboardingStat()))

	b.WithRow(dashboard.NewRowBuilder("Outreach").
		WithPanel(panels.InteractionsRate()).
		WithPanel(panels.FeedbackByStatus()).
		WithPanel(panels.TouchResetsStat()))

	b.WithRow(dashboard.NewRowBuilder("Notifications").
		WithPanel(panels.DigestsSent()).
		WithPanel(panels.NotificationLatency()).
		WithPanel(panels.NotificationFailures()))

	b.WithRow(dashboard.NewRowBuilder("Jobs").
		WithPanel(panels.JobDuration()).
		WithPanel(panels.JobFailures()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
