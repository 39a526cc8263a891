package main

import "errors"

// KnownMetrics is the set of metric names exported by deal-desk plus the
// recording rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"dealdesk_http_request_duration_seconds": true,
	"dealdesk_http_requests_total":           true,

	// Health metrics.
	"dealdesk_healthz_up": true,
	"dealdesk_readyz_up":  true,

	// Scoring metrics.
	"dealdesk_priority_score_distribution": true,
	"dealdesk_match_tiers_total":           true,
	"dealdesk_rescored_total":              true,

	// Focus metrics.
	"dealdesk_focus_list_size": true,

	// Activity metrics.
	"dealdesk_interactions_total":     true,
	"dealdesk_feedback_upserts_total": true,
	"dealdesk_touch_resets_total":     true,

	// Notification metrics.
	"dealdesk_digests_sent_total":            true,
	"dealdesk_notification_failures_total":   true,
	"dealdesk_notification_duration_seconds": true,

	// Scheduler metrics.
	"dealdesk_job_duration_seconds":           true,
	"dealdesk_job_failures_total":             true,
	"dealdesk_job_next_run_timestamp_seconds": true,

	// Recording rules.
	"dealdesk:http_requests:rate5m":         true,
	"dealdesk:http_errors:rate5m":           true,
	"dealdesk:interactions:rate1h":          true,
	"dealdesk:match_tiers:rate1h":           true,
	"dealdesk:job_failures:increase1h":      true,
	"dealdesk:notification_duration:p95_5m": true,

	// Standard Prometheus metrics referenced in dashboards.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
