package rules

// AlertRules returns a PrometheusRule CR containing alert rules for
// offer-finder operational monitoring.
func AlertRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: apiVersion,
		Kind:       kind,
		Metadata: PrometheusRuleMetadata{
			Name:   "offer-finder-alerts",
			Labels: defaultLabels(),
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "offer-finder-alerts",
					Rules: []Rule{
						alert("OfferFinderDown", `absent(up{job="offer-finder"})`, "2m", "critical",
							"Offer Finder is down",
							"The offer-finder job has been absent for more than 2 minutes."),
						alert("OfferFinderReadinessDown", `offer_finder_readyz_up == 0`, "2m", "critical",
							"Offer Finder readiness check is failing",
							"PostgreSQL or Redis has been unreachable for more than 2 minutes."),
						alert("OfferFinderHighErrorRate",
							`offer_finder:http_errors:rate5m / offer_finder:http_requests:rate5m > 0.05`, "5m", "warning",
							"High HTTP error rate on Offer Finder",
							"More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes."),
						alert("OfferFinderGenerationFailures",
							`offer_finder:offer_generation_failures:rate5m > 0.1`, "5m", "warning",
							"LLM offer generation failure rate is elevated",
							"Offer generation is failing at more than 0.1/s; check the LLM backend."),
						alert("OfferFinderLLMQuotaExhausted",
							`increase(offer_finder_llm_daily_limit_hits_total[5m]) > 0`, "0m", "critical",
							"Daily LLM call limit has been reached",
							"Searches are refused with 429 until the 24-hour window resets."),
						alert("OfferFinderProfileCacheErrors",
							`sum(rate(offer_finder_profile_cache_errors_total[5m])) > 0`, "10m", "warning",
							"Redis profile cache is failing",
							"Store profile lookups are falling back to PostgreSQL."),
						alert("OfferFinderNotificationFailures",
							`increase(offer_finder_notification_failures_total[5m]) > 0`, "1m", "warning",
							"Unknown-store notifications are failing",
							"One or more Discord webhook deliveries have failed."),
					},
				},
			},
		},
	}
}

func alert(name, expr, forDur, severity, summary, description string) Rule {
	return Rule{
		Alert:  name,
		Expr:   expr,
		For:    forDur,
		Labels: map[string]string{"severity": severity},
		Annotations: map[string]string{
			"summary":     summary,
			"description": description,
		},
	}
}
