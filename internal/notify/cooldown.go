package notify

import (
	"context"
	"sync"
	"time"

	"github.com/donaldgifford/offer-finder/internal/metrics"
	domain "github.com/donaldgifford/offer-finder/pkg/types"
)

const defaultCooldown = 24 * time.Hour

// CooldownNotifier drops domains that were already reported within the
// cooldown window and forwards the rest. State is per process.
type CooldownNotifier struct {
	next     Notifier
	cooldown time.Duration
	now      func() time.Time

	mu   sync.Mutex
	sent map[string]time.Time
}

// CooldownOption configures a CooldownNotifier.
type CooldownOption func(*CooldownNotifier)

// WithNowFunc overrides the clock.
func WithNowFunc(fn func() time.Time) CooldownOption {
	return func(c *CooldownNotifier) {
		c.now = fn
	}
}

// NewCooldownNotifier wraps next. A cooldown of zero or less uses 24h.
func NewCooldownNotifier(next Notifier, cooldown time.Duration, opts ...CooldownOption) *CooldownNotifier {
	if cooldown <= 0 {
		cooldown = defaultCooldown
	}
	c := &CooldownNotifier{
		next:     next,
		cooldown: cooldown,
		now:      time.Now,
		sent:     make(map[string]time.Time),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NotifyUnknownStores forwards only the domains not reported recently. When
// the downstream send fails those domains are released so a later call
// retries them.
func (c *CooldownNotifier) NotifyUnknownStores(ctx context.Context, report UnknownStores) error {
	fresh := c.claim(report.Domains)
	if len(fresh) == 0 {
		return nil
	}

	report.Domains = fresh
	if err := c.next.NotifyUnknownStores(ctx, report); err != nil {
		c.release(fresh)
		metrics.NotificationFailuresTotal.Inc()
		return err
	}

	metrics.UnknownStoresNotifiedTotal.Add(float64(len(fresh)))
	return nil
}

func (c *CooldownNotifier) claim(domains []string) []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for d, at := range c.sent {
		if now.Sub(at) >= c.cooldown {
			delete(c.sent, d)
		}
	}

	var fresh []string
	for _, d := range domains {
		d = domain.NormalizeDomain(d)
		if d == "" {
			continue
		}
		if _, seen := c.sent[d]; seen {
			continue
		}
		c.sent[d] = now
		fresh = append(fresh, d)
	}
	return fresh
}

func (c *CooldownNotifier) release(domains []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, d := range domains {
		delete(c.sent, d)
	}
}
