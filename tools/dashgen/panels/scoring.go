package panels

import (
	"fmt"

	"github.com/grafana/grafana-foundation-sdk/go/bargauge"
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// ScoreDistribution returns a bar gauge panel showing the distribution of
// computed priority scores across histogram buckets, split by entity kind.
func ScoreDistribution() *bargauge.PanelBuilder {
	return bargauge.NewPanelBuilder().
		Title("Priority Score Distribution").
		Description("Distribution of lead and listing priority scores (0-100) over the last hour").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			fmt.Sprintf(`sum(increase(%s[1h])) by (le)`,
				Selector("dealdesk_priority_score_distribution_bucket", `kind="lead"`)),
			"lead {{le}}", "A",
		)).
		WithTarget(PromQuery(
			fmt.Sprintf(`sum(increase(%s[1h])) by (le)`,
				Selector("dealdesk_priority_score_distribution_bucket", `kind="listing"`)),
			"listing {{le}}", "B",
		)).
		Orientation(common.VizOrientationHorizontal).
		Min(0).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic())
}

// MatchTiers returns a timeseries panel showing how lead/listing pairs fall
// into each match tier.
func MatchTiers() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Match Tiers").
		Description("Pairs evaluated per hour by match tier").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`dealdesk:match_tiers:rate1h`, "{{tier}}", "A")).
		FillOpacity(30).
		LineWidth(1).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleBars)
}

// RescoreVolume returns a timeseries panel showing how many stored scores
// the periodic rescore rewrites.
func RescoreVolume() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Rescored Entities").
		Description("Stored priority scores rewritten per hour").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(FullWidth).
		WithTarget(PromQuery(
			fmt.Sprintf(`sum(increase(%s[1h]))`, Selector("dealdesk_rescored_total")),
			"rescored", "A",
		)).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}
