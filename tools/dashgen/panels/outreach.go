package panels

import (
	"fmt"

	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// InteractionsRate returns a timeseries panel showing logged interactions
// per hour by entity kind and interaction type.
func InteractionsRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Interactions / hour").
		Description("Logged calls, messages and meetings by entity kind").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`dealdesk:interactions:rate1h`, "{{kind}} {{type}}", "A")).
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// FeedbackByStatus returns a timeseries panel showing match feedback writes
// by status.
func FeedbackByStatus() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Match Feedback").
		Description("Feedback recorded on suggested matches, by status").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			fmt.Sprintf(`sum(increase(%s[1d])) by (status)`, Selector("dealdesk_feedback_upserts_total")),
			"{{status}}", "A",
		)).
		FillOpacity(30).
		LineWidth(1).
		Legend(TableLegend("last")).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleBars)
}

// TouchResetsStat returns a stat panel showing weekly touch counter resets
// over the past week.
func TouchResetsStat() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Touch Resets (7d)").
		Description("Weekly touch counter resets in the last 7 days").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(
			fmt.Sprintf(`sum(increase(%s[7d]))`, Selector("dealdesk_touch_resets_total")),
			"", "A",
		)).
		Thresholds(ThresholdsRedGreen(1)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeNone)
}
