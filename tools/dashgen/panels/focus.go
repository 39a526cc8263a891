package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// FocusListSizes returns a timeseries panel showing the size of each work
// list the last time it was built.
func FocusListSizes() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Work List Sizes").
		Description("Items on the daily focus, hot deals, aging and onboarding lists").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`max by (list) (`+Selector("dealdesk_focus_list_size")+`)`, "{{list}}", "A")).
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("last", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// AgingStat returns a stat panel showing how many entities have gone stale.
func AgingStat() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Aging").
		Description("Entities not contacted within the aging window").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(`max(`+Selector("dealdesk_focus_list_size", `list="aging"`)+`)`, "", "A")).
		Thresholds(ThresholdsGreenYellowRed(10, 25)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeArea)
}

// OnboardingStat returns a stat panel showing the onboarding queue length.
func OnboardingStat() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Onboarding Queue").
		Description("Leads still waiting on onboarding").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(`max(`+Selector("dealdesk_focus_list_size", `list="onboarding"`)+`)`, "", "A")).
		Thresholds(ThresholdsGreenYellowRed(5, 15)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeArea)
}
