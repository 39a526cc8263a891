package rules

// AlertRules returns a PrometheusRule CR containing alert rules for
// deal-desk operational monitoring.
func AlertRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "deal-desk-alerts",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "deal-desk-alerts",
					Rules: []Rule{
						{
							Alert: "DealDeskDown",
							Expr:  `absent(up{job="deal-desk"})`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "Deal Desk is down",
								"description": "The deal-desk job has been absent for more than 2 minutes.",
							},
						},
						{
							Alert: "DealDeskReadinessDown",
							Expr:  `dealdesk_readyz_up == 0`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "Deal Desk readiness check is failing",
								"description": "The database has been unreachable from the readiness check for more than 2 minutes.",
							},
						},
						{
							Alert: "DealDeskHighErrorRate",
							Expr:  `dealdesk:http_errors:rate5m / dealdesk:http_requests:rate5m > 0.05`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "High HTTP error rate on Deal Desk",
								"description": "More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes.",
							},
						},
						{
							Alert: "DealDeskJobFailing",
							Expr:  `dealdesk:job_failures:increase1h > 0`,
							For:   "0m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "A scheduled job is failing",
								"description": "The {{ $labels.exported_job }} job failed in the last hour.",
							},
						},
						{
							Alert: "DealDeskTouchResetMissed",
							Expr:  `increase(dealdesk_touch_resets_total[8d]) == 0`,
							For:   "1h",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Weekly touch counters were not reset",
								"description": "No touch counter reset has run in 8 days. Capped leads will stay off the daily focus list.",
							},
						},
						{
							Alert: "DealDeskNotificationFailures",
							Expr:  `increase(dealdesk_notification_failures_total[5m]) > 0`,
							For:   "1m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Notification delivery failures detected",
								"description": "One or more digest notifications (Discord webhooks) have failed to send.",
							},
						},
					},
				},
			},
		},
	}
}
