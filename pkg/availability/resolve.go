package availability

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	domain "github.com/donaldgifford/offer-finder/pkg/types"
)

// ErrStoreNotFound is returned by a StoreLookup for a domain that has no
// store record. ResolveProfiles treats it as "not onboarded", not a failure.
var ErrStoreNotFound = errors.New("store not found")

// defaultLookupConcurrency bounds concurrent lookups per resolution.
const defaultLookupConcurrency = 8

// StoreLookup fetches the store profile for a normalized domain.
type StoreLookup interface {
	GetStoreProfile(ctx context.Context, storeDomain string) (*domain.StoreProfile, error)
}

// ResolveOption configures ResolveProfiles.
type ResolveOption func(*resolveConfig)

type resolveConfig struct {
	concurrency int
}

// WithConcurrency caps the number of lookups in flight.
func WithConcurrency(n int) ResolveOption {
	return func(c *resolveConfig) {
		if n > 0 {
			c.concurrency = n
		}
	}
}

// ResolveProfiles looks up the store profile of every distinct domain in
// offers. Lookups run concurrently, one per domain. Domains the lookup
// reports as ErrStoreNotFound are left out of the result. Any other lookup
// error cancels the remaining lookups and is returned.
func ResolveProfiles(
	ctx context.Context,
	lookup StoreLookup,
	offers []domain.CandidateOffer,
	opts ...ResolveOption,
) (Profiles, error) {
	cfg := resolveConfig{concurrency: defaultLookupConcurrency}
	for _, opt := range opts {
		opt(&cfg)
	}

	domains := UniqueDomains(offers)
	profiles := make(Profiles, len(domains))
	if len(domains) == 0 {
		return profiles, nil
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.concurrency)

	for _, d := range domains {
		g.Go(func() error {
			p, err := lookup.GetStoreProfile(gctx, d)
			if errors.Is(err, ErrStoreNotFound) {
				return nil
			}
			if err != nil {
				return fmt.Errorf("looking up store %s: %w", d, err)
			}
			if p == nil {
				return nil
			}
			mu.Lock()
			profiles[d] = *p
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return profiles, nil
}

// UniqueDomains returns the distinct normalized domains of offers in first
// seen order.
func UniqueDomains(offers []domain.CandidateOffer) []string {
	seen := make(map[string]struct{}, len(offers))
	out := make([]string, 0, len(offers))
	for _, o := range offers {
		d := domain.NormalizeDomain(o.Domain)
		if d == "" {
			continue
		}
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	return out
}

// UnknownDomains returns the domains of offers that have no profile.
func UnknownDomains(offers []domain.CandidateOffer, profiles Profiles) []string {
	var out []string
	for _, d := range UniqueDomains(offers) {
		if _, ok := profiles[d]; !ok {
			out = append(out, d)
		}
	}
	return out
}
