package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/donaldgifford/deal-desk/tools/dashgen/dashboards"
	"github.com/donaldgifford/deal-desk/tools/dashgen/rules"
	"github.com/donaldgifford/deal-desk/tools/dashgen/validate"
)

func TestDefaultConfigValid(t *testing.T) {
	t.Parallel()
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
}

func TestConfigValidate_EmptyOutputDir(t *testing.T) {
	t.Parallel()
	cfg := Config{OutputDir: "", DashboardEnabled: true}
	assert.Error(t, cfg.Validate())
}

func TestConfigValidate_NothingEnabled(t *testing.T) {
	t.Parallel()
	cfg := Config{OutputDir: "/tmp", DashboardEnabled: false, RulesEnabled: false}
	assert.Error(t, cfg.Validate())
}

func TestBuildOverviewDashboard(t *testing.T) {
	t.Parallel()

	dash, err := dashboards.BuildOverview().Build()
	require.NoError(t, err)

	require.NotNil(t, dash.Uid)
	assert.Equal(t, "deal-desk-overview", *dash.Uid)

	require.NotNil(t, dash.Title)
	assert.Equal(t, "Deal Desk Overview", *dash.Title)

	require.NotNil(t, dash.Templating)
	assert.Len(t, dash.Templating.List, 1)
	assert.Equal(t, "datasource", dash.Templating.List[0].Name)

	// Overview, HTTP, Scoring, Focus, Outreach, Notifications, Jobs.
	assert.Len(t, dash.Panels, 7)

	totalPanels := 0
	for _, p := range dash.Panels {
		if p.RowPanel != nil {
			totalPanels += len(p.RowPanel.Panels)
		}
	}
	assert.Equal(t, 22, totalPanels)

	data, err := json.Marshal(dash)
	require.NoError(t, err)
	result := validate.Dashboard(data, KnownMetrics)
	assert.True(t, result.Ok(), "validation errors: %v", result.Errors)
	assert.Empty(t, result.Warnings, "unexpected warnings: %v", result.Warnings)
}

func TestRecordingRules(t *testing.T) {
	t.Parallel()

	cr := rules.RecordingRules()
	assert.Equal(t, "monitoring.coreos.com/v1", cr.APIVersion)
	assert.Equal(t, "PrometheusRule", cr.Kind)
	assert.Equal(t, "deal-desk-recording-rules", cr.Metadata.Name)

	require.Len(t, cr.Spec.Groups, 1)
	group := cr.Spec.Groups[0]
	assert.Equal(t, "deal-desk-recording", group.Name)

	expectedRecords := []string{
		"dealdesk:http_requests:rate5m",
		"dealdesk:http_errors:rate5m",
		"dealdesk:interactions:rate1h",
		"dealdesk:match_tiers:rate1h",
		"dealdesk:job_failures:increase1h",
		"dealdesk:notification_duration:p95_5m",
	}
	require.Len(t, group.Rules, len(expectedRecords))
	for i, rule := range group.Rules {
		assert.Equal(t, expectedRecords[i], rule.Record)
		assert.NotEmpty(t, rule.Expr)
	}

	result := validate.Rules(cr, KnownMetrics)
	assert.True(t, result.Ok(), "validation errors: %v", result.Errors)

	data, err := yaml.Marshal(cr)
	require.NoError(t, err)
	assert.Contains(t, string(data), "apiVersion: monitoring.coreos.com/v1")
}

func TestAlertRules(t *testing.T) {
	t.Parallel()

	cr := rules.AlertRules()
	assert.Equal(t, "monitoring.coreos.com/v1", cr.APIVersion)
	assert.Equal(t, "PrometheusRule", cr.Kind)
	assert.Equal(t, "deal-desk-alerts", cr.Metadata.Name)

	require.Len(t, cr.Spec.Groups, 1)
	group := cr.Spec.Groups[0]
	assert.Equal(t, "deal-desk-alerts", group.Name)

	expectedAlerts := []string{
		"DealDeskDown",
		"DealDeskReadinessDown",
		"DealDeskHighErrorRate",
		"DealDeskJobFailing",
		"DealDeskTouchResetMissed",
		"DealDeskNotificationFailures",
	}
	require.Len(t, group.Rules, len(expectedAlerts))
	for i, rule := range group.Rules {
		assert.Equal(t, expectedAlerts[i], rule.Alert)
		assert.NotEmpty(t, rule.Expr)
		assert.NotEmpty(t, rule.Labels["severity"], "alert %s missing severity", rule.Alert)
		assert.NotEmpty(t, rule.Annotations["summary"], "alert %s missing summary", rule.Alert)
		assert.NotEmpty(t, rule.Annotations["description"], "alert %s missing description", rule.Alert)
	}

	result := validate.Rules(cr, KnownMetrics)
	assert.True(t, result.Ok(), "validation errors: %v", result.Errors)
}

func TestRun(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		validateOnly bool
		wantFiles    []string
	}{
		{
			name: "writes every artifact",
			wantFiles: []string{
				filepath.Join("grafana", "data", "deal-desk-overview.json"),
				filepath.Join("prometheus", "deal-desk-recording-rules.yaml"),
				filepath.Join("prometheus", "deal-desk-alerts.yaml"),
			},
		},
		{
			name:         "validate only writes nothing",
			validateOnly: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			cfg.OutputDir = t.TempDir()

			var out bytes.Buffer
			require.NoError(t, run(&out, cfg, tt.validateOnly))

			entries, err := os.ReadDir(cfg.OutputDir)
			require.NoError(t, err)
			if len(tt.wantFiles) == 0 {
				assert.Empty(t, entries)
				assert.Contains(t, out.String(), "validation passed")
				return
			}
			for _, f := range tt.wantFiles {
				data, err := os.ReadFile(filepath.Join(cfg.OutputDir, f))
				require.NoError(t, err, f)
				assert.NotEmpty(t, data)
			}

			rulesFile, err := os.ReadFile(filepath.Join(cfg.OutputDir, "prometheus", "deal-desk-alerts.yaml"))
			require.NoError(t, err)
			assert.True(t, bytes.HasPrefix(rulesFile, []byte(generatedHeader)))
		})
	}
}
