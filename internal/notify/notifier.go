// Package notify reports store domains that offer sources surfaced but that
// have no store record yet, so operators can onboard them.
package notify

import "context"

// UnknownStores describes one batch of not-onboarded domains.
type UnknownStores struct {
	Domains     []string
	ItemTitle   string
	CountryCode string
}

// Notifier delivers unknown-store reports.
type Notifier interface {
	NotifyUnknownStores(ctx context.Context, report UnknownStores) error
}
