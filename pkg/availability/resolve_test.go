package availability_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/offer-finder/pkg/availability"
	"github.com/donaldgifford/offer-finder/pkg/availability/mocks"
	domain "github.com/donaldgifford/offer-finder/pkg/types"
)

func storeProfile(d string, countries ...string) *domain.StoreProfile {
	return &domain.StoreProfile{Store: domain.Store{Domain: d, CountriesSupported: countries}}
}

func TestResolveProfiles(t *testing.T) {
	t.Parallel()

	lookup := mocks.NewMockStoreLookup(t)
	lookup.EXPECT().GetStoreProfile(mock.Anything, "a.com").Return(storeProfile("a.com", "US"), nil).Once()
	lookup.EXPECT().GetStoreProfile(mock.Anything, "b.com").Return(nil, availability.ErrStoreNotFound).Once()
	lookup.EXPECT().GetStoreProfile(mock.Anything, "c.com").Return(nil, nil).Once()

	offers := []domain.CandidateOffer{
		offer("A", "a.com", 1),
		offer("A again", "WWW.A.com", 2),
		offer("B", "b.com", 3),
		offer("C", "c.com", 4),
	}

	got, err := availability.ResolveProfiles(context.Background(), lookup, offers)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "a.com", got["a.com"].Store.Domain)
}

func TestResolveProfiles_Empty(t *testing.T) {
	t.Parallel()

	lookup := mocks.NewMockStoreLookup(t)

	got, err := availability.ResolveProfiles(context.Background(), lookup, nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestResolveProfiles_LookupError(t *testing.T) {
	t.Parallel()

	boom := errors.New("connection refused")
	lookup := mocks.NewMockStoreLookup(t)
	lookup.EXPECT().GetStoreProfile(mock.Anything, "a.com").Return(nil, boom).Maybe()
	lookup.EXPECT().GetStoreProfile(mock.Anything, "b.com").Return(storeProfile("b.com"), nil).Maybe()

	_, err := availability.ResolveProfiles(
		context.Background(),
		lookup,
		[]domain.CandidateOffer{offer("A", "a.com", 1), offer("B", "b.com", 1)},
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "a.com")
}

func TestResolveProfiles_RunsConcurrently(t *testing.T) {
	t.Parallel()

	const n = 4
	var inFlight, peak atomic.Int32
	release := make(chan struct{})

	lookup := mocks.NewMockStoreLookup(t)
	lookup.EXPECT().GetStoreProfile(mock.Anything, mock.AnythingOfType("string")).
		RunAndReturn(func(_ context.Context, d string) (*domain.StoreProfile, error) {
			cur := inFlight.Add(1)
			for {
				p := peak.Load()
				if cur <= p || peak.CompareAndSwap(p, cur) {
					break
				}
			}
			if cur == n {
				close(release)
			}
			select {
			case <-release:
			case <-time.After(2 * time.Second):
			}
			inFlight.Add(-1)
			return storeProfile(d), nil
		}).Times(n)

	offers := []domain.CandidateOffer{
		offer("A", "a.com", 1),
		offer("B", "b.com", 1),
		offer("C", "c.com", 1),
		offer("D", "d.com", 1),
	}

	got, err := availability.ResolveProfiles(context.Background(), lookup, offers, availability.WithConcurrency(n))
	require.NoError(t, err)
	assert.Len(t, got, n)
	assert.Equal(t, int32(n), peak.Load())
}

func TestResolveProfiles_ConcurrencyLimit(t *testing.T) {
	t.Parallel()

	var inFlight, peak atomic.Int32
	lookup := mocks.NewMockStoreLookup(t)
	lookup.EXPECT().GetStoreProfile(mock.Anything, mock.AnythingOfType("string")).
		RunAndReturn(func(_ context.Context, d string) (*domain.StoreProfile, error) {
			cur := inFlight.Add(1)
			for {
				p := peak.Load()
				if cur <= p || peak.CompareAndSwap(p, cur) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			inFlight.Add(-1)
			return storeProfile(d), nil
		}).Times(6)

	offers := make([]domain.CandidateOffer, 0, 6)
	for _, d := range []string{"a.com", "b.com", "c.com", "d.com", "e.com", "f.com"} {
		offers = append(offers, offer(d, d, 1))
	}

	got, err := availability.ResolveProfiles(context.Background(), lookup, offers, availability.WithConcurrency(1))
	require.NoError(t, err)
	assert.Len(t, got, 6)
	assert.Equal(t, int32(1), peak.Load())
}

func TestUniqueDomains(t *testing.T) {
	t.Parallel()

	offers := []domain.CandidateOffer{
		offer("A", "b.com", 1),
		offer("B", "www.a.com", 1),
		offer("C", "B.com ", 1),
		offer("D", "", 1),
		offer("E", "a.com", 1),
	}
	assert.Equal(t, []string{"b.com", "a.com"}, availability.UniqueDomains(offers))
}

func TestUnknownDomains(t *testing.T) {
	t.Parallel()

	profiles := availability.Profiles{"a.com": *storeProfile("a.com")}
	offers := []domain.CandidateOffer{
		offer("A", "a.com", 1),
		offer("B", "b.com", 1),
		offer("C", "c.com", 1),
		offer("B2", "www.b.com", 1),
	}
	assert.Equal(t, []string{"b.com", "c.com"}, availability.UnknownDomains(offers, profiles))
	assert.Empty(t, availability.UnknownDomains(offers[:1], profiles))
}
