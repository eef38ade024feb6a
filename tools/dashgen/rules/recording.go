package rules

// RecordingRules returns a PrometheusRule CR containing pre-computed
// expressions used by dashboards and alert rules.
func RecordingRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: apiVersion,
		Kind:       kind,
		Metadata: PrometheusRuleMetadata{
			Name:   "offer-finder-recording-rules",
			Labels: defaultLabels(),
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "offer-finder-recording",
					Rules: []Rule{
						{
							Record: "offer_finder:http_requests:rate5m",
							Expr:   `sum(rate(offer_finder_http_requests_total[5m]))`,
						},
						{
							Record: "offer_finder:http_errors:rate5m",
							Expr:   `sum(rate(offer_finder_http_requests_total{status=~"5.."}[5m]))`,
						},
						{
							Record: "offer_finder:offer_generation_failures:rate5m",
							Expr:   `rate(offer_finder_offer_generation_failures_total[5m])`,
						},
						{
							Record: "offer_finder:offers_unavailable:rate5m",
							Expr:   `sum by (reason) (rate(offer_finder_offers_unavailable_total[5m]))`,
						},
						{
							Record: "offer_finder:profile_cache_hit_ratio:5m",
							Expr: `sum(rate(offer_finder_profile_cache_hits_total[5m])) / ` +
								`(sum(rate(offer_finder_profile_cache_hits_total[5m])) + sum(rate(offer_finder_profile_cache_misses_total[5m])))`,
						},
						{
							Record: "offer_finder:notification_duration:p95_5m",
							Expr:   `histogram_quantile(0.95, sum(rate(offer_finder_notification_duration_seconds_bucket[5m])) by (le))`,
						},
					},
				},
			},
		},
	}
}
