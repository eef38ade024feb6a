package notify

import (
	"context"
	"log/slog"
)

// NoOpNotifier implements Notifier by logging the report. It is used when
// Discord is not configured.
type NoOpNotifier struct {
	log *slog.Logger
}

// NewNoOpNotifier creates a notifier that only logs.
func NewNoOpNotifier(log *slog.Logger) *NoOpNotifier {
	return &NoOpNotifier{log: log}
}

// NotifyUnknownStores logs the domains at info level.
func (n *NoOpNotifier) NotifyUnknownStores(_ context.Context, report UnknownStores) error {
	if len(report.Domains) == 0 {
		return nil
	}
	n.log.Info("stores to onboard (no notification backend configured)",
		"domains", report.Domains,
		"item", report.ItemTitle,
		"country", report.CountryCode,
	)
	return nil
}
