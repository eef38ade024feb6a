package notify_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/offer-finder/internal/notify"
	notifyMocks "github.com/donaldgifford/offer-finder/internal/notify/mocks"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func domainsAre(want ...string) any {
	return mock.MatchedBy(func(r notify.UnknownStores) bool {
		return assert.ObjectsAreEqual(want, r.Domains)
	})
}

func TestCooldownNotifier_SuppressesRepeats(t *testing.T) {
	t.Parallel()

	clock := &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	next := notifyMocks.NewMockNotifier(t)
	next.EXPECT().NotifyUnknownStores(mock.Anything, domainsAre("noon.com", "opensooq.com")).Return(nil).Once()
	next.EXPECT().NotifyUnknownStores(mock.Anything, domainsAre("ubuy.jo")).Return(nil).Once()

	n := notify.NewCooldownNotifier(next, time.Hour, notify.WithNowFunc(clock.Now))
	ctx := context.Background()

	require.NoError(t, n.NotifyUnknownStores(ctx, notify.UnknownStores{
		Domains: []string{"noon.com", "www.OpenSooq.com", "noon.com", " "},
	}))

	// All repeats within the window: nothing forwarded.
	require.NoError(t, n.NotifyUnknownStores(ctx, notify.UnknownStores{Domains: []string{"opensooq.com"}}))

	// Only the new domain is forwarded.
	require.NoError(t, n.NotifyUnknownStores(ctx, notify.UnknownStores{
		Domains: []string{"noon.com", "ubuy.jo"},
	}))
}

func TestCooldownNotifier_WindowExpires(t *testing.T) {
	t.Parallel()

	clock := &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	next := notifyMocks.NewMockNotifier(t)
	next.EXPECT().NotifyUnknownStores(mock.Anything, domainsAre("noon.com")).Return(nil).Twice()

	n := notify.NewCooldownNotifier(next, time.Hour, notify.WithNowFunc(clock.Now))
	ctx := context.Background()

	require.NoError(t, n.NotifyUnknownStores(ctx, notify.UnknownStores{Domains: []string{"noon.com"}}))
	clock.Advance(59 * time.Minute)
	require.NoError(t, n.NotifyUnknownStores(ctx, notify.UnknownStores{Domains: []string{"noon.com"}}))
	clock.Advance(time.Minute)
	require.NoError(t, n.NotifyUnknownStores(ctx, notify.UnknownStores{Domains: []string{"noon.com"}}))
}

func TestCooldownNotifier_FailureReleasesDomains(t *testing.T) {
	t.Parallel()

	next := notifyMocks.NewMockNotifier(t)
	next.EXPECT().NotifyUnknownStores(mock.Anything, domainsAre("noon.com")).
		Return(errors.New("discord returned 500")).Once()
	next.EXPECT().NotifyUnknownStores(mock.Anything, domainsAre("noon.com")).Return(nil).Once()

	n := notify.NewCooldownNotifier(next, time.Hour)
	ctx := context.Background()

	err := n.NotifyUnknownStores(ctx, notify.UnknownStores{Domains: []string{"noon.com"}})
	require.Error(t, err)

	require.NoError(t, n.NotifyUnknownStores(ctx, notify.UnknownStores{Domains: []string{"noon.com"}}))
}

func TestCooldownNotifier_KeepsReportContext(t *testing.T) {
	t.Parallel()

	next := notifyMocks.NewMockNotifier(t)
	next.EXPECT().NotifyUnknownStores(mock.Anything, mock.MatchedBy(func(r notify.UnknownStores) bool {
		return r.ItemTitle == "Kettle" && r.CountryCode == "JO"
	})).Return(nil).Once()

	n := notify.NewCooldownNotifier(next, 0)
	require.NoError(t, n.NotifyUnknownStores(context.Background(), notify.UnknownStores{
		Domains:     []string{"noon.com"},
		ItemTitle:   "Kettle",
		CountryCode: "JO",
	}))
}
