package rules

// RecordingRules returns a PrometheusRule CR containing pre-computed rate
// expressions used by dashboards and alert rules.
func RecordingRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "deal-desk-recording-rules",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "deal-desk-recording",
					Rules: []Rule{
						{
							Record: "dealdesk:http_requests:rate5m",
							Expr:   `sum(rate(dealdesk_http_requests_total[5m]))`,
						},
						{
							Record: "dealdesk:http_errors:rate5m",
							Expr:   `sum(rate(dealdesk_http_requests_total{status=~"5.."}[5m]))`,
						},
						{
							Record: "dealdesk:interactions:rate1h",
							Expr:   `sum(increase(dealdesk_interactions_total[1h])) by (kind, type)`,
						},
						{
							Record: "dealdesk:match_tiers:rate1h",
							Expr:   `sum(increase(dealdesk_match_tiers_total[1h])) by (tier)`,
						},
						{
							Record: "dealdesk:job_failures:increase1h",
							Expr:   `sum(increase(dealdesk_job_failures_total[1h])) by (exported_job)`,
						},
						{
							Record: "dealdesk:notification_duration:p95_5m",
							Expr:   `histogram_quantile(0.95, sum(rate(dealdesk_notification_duration_seconds_bucket[5m])) by (le))`,
						},
					},
				},
			},
		},
	}
}
