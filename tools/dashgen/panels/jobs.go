package panels

import (
	"fmt"

	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// JobDuration returns a timeseries panel showing the p95 duration of each
// scheduled job.
func JobDuration() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Job Duration (p95)").
		Description("95th percentile runtime of the touch reset, rescore and digest jobs").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			fmt.Sprintf(`histogram_quantile(0.95, sum(rate(%s[1h])) by (le, exported_job))`,
				Selector("dealdesk_job_duration_seconds_bucket")),
			"{{exported_job}}", "A",
		)).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// JobFailures returns a timeseries panel showing scheduled job failures per
// hour.
func JobFailures() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Job Failures").
		Description("Scheduled job failures per hour").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`dealdesk:job_failures:increase1h`, "{{exported_job}}", "A")).
		FillOpacity(30).
		LineWidth(1).
		Thresholds(ThresholdsGreenYellowRed(1, 3)).
		ColorScheme(ColorSchemeThresholds()).
		DrawStyle(common.GraphDrawStyleBars)
}
