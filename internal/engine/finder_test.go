package engine

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	ptestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/offer-finder/internal/metrics"
	"github.com/donaldgifford/offer-finder/internal/notify"
	notifyMocks "github.com/donaldgifford/offer-finder/internal/notify/mocks"
	"github.com/donaldgifford/offer-finder/internal/store"
	storeMocks "github.com/donaldgifford/offer-finder/internal/store/mocks"
	"github.com/donaldgifford/offer-finder/pkg/availability"
	"github.com/donaldgifford/offer-finder/pkg/currency"
	"github.com/donaldgifford/offer-finder/pkg/extract"
	extractMocks "github.com/donaldgifford/offer-finder/pkg/extract/mocks"
	domain "github.com/donaldgifford/offer-finder/pkg/types"
)

// quietLogger returns a logger that discards output for tests.
func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func ptr[T any](v T) *T { return &v }

type finderDeps struct {
	store    *storeMocks.MockStore
	source   *extractMocks.MockOfferSource
	notifier *notifyMocks.MockNotifier
}

func newTestFinder(t *testing.T, opts ...FinderOption) (*Finder, finderDeps) {
	t.Helper()

	deps := finderDeps{
		store:    storeMocks.NewMockStore(t),
		source:   extractMocks.NewMockOfferSource(t),
		notifier: notifyMocks.NewMockNotifier(t),
	}

	conv, err := currency.NewConverter(currency.DefaultBase, currency.DefaultRates)
	require.NoError(t, err)

	base := []FinderOption{
		WithLogger(quietLogger()),
		WithNotifier(deps.notifier),
		WithConverter(conv),
	}
	return NewFinder(deps.store, deps.source, append(base, opts...)...), deps
}

func kettleItem() *domain.Item {
	return &domain.Item{
		ID:        "8f14e45f-ceea-467f-a0e6-1b2b4c6d7e8f",
		UserID:    "u1",
		Title:     "Electric Kettle 1.7L",
		Price:     ptr(24.5),
		Currency:  "JOD",
		URL:       "https://www.ubuy.jo/kettle",
		StoreName: "Ubuy",
		Domain:    "ubuy.jo",
		CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func rawOffer(store, dom string, price float64, cur string) availability.RawOffer {
	return availability.RawOffer{
		"storeName": store,
		"domain":    dom,
		"price":     price,
		"currency":  cur,
		"url":       "https://" + dom + "/p/1",
	}
}

func jordanProfiles() map[string]*domain.StoreProfile {
	return map[string]*domain.StoreProfile{
		"opensooq.com": {
			Store: domain.Store{
				Domain: "opensooq.com", Name: "OpenSooq", CountriesSupported: []string{"JO"}, RequiresCity: true,
			},
			Rules: []domain.ShippingRule{{
				StoreDomain: "opensooq.com", CountryCode: "JO",
				ShipsToCountry: true, CityWhitelist: []string{"Amman"},
			}},
		},
		"noon.com": {
			Store: domain.Store{Domain: "noon.com", Name: "Noon", CountriesSupported: []string{"AE", "SA"}},
		},
	}
}

func expectProfiles(ms *storeMocks.MockStore, profiles map[string]*domain.StoreProfile) {
	ms.EXPECT().GetStoreProfile(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, d string) (*domain.StoreProfile, error) {
			if p, ok := profiles[d]; ok {
				return p, nil
			}
			return nil, availability.ErrStoreNotFound
		}).Maybe()
}

func TestNewFinder_Defaults(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	src := extractMocks.NewMockOfferSource(t)

	f := NewFinder(ms, src)
	assert.Equal(t, availability.DefaultSingleItemCap, f.singleItemCap)
	assert.Equal(t, availability.DefaultAlternativesCap, f.alternativesCap)
	assert.Equal(t, domain.SortLowestPrice, f.defaultSort)
	assert.Same(t, ms, f.lookup)
	assert.IsType(t, &notify.NoOpNotifier{}, f.notifier)
	assert.NotNil(t, f.tracer)
}

func TestNewFinder_WithOptions(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	lookup := storeMocks.NewMockStore(t)
	src := extractMocks.NewMockOfferSource(t)
	l := quietLogger()

	f := NewFinder(ms, src,
		WithLogger(l),
		WithStoreLookup(lookup),
		WithCaps(3, 0),
		WithLookupConcurrency(2),
		WithDefaultSort(domain.SortNewest),
	)
	assert.Same(t, l, f.log)
	assert.Same(t, lookup, f.lookup)
	assert.Equal(t, 3, f.singleItemCap)
	assert.Equal(t, availability.DefaultAlternativesCap, f.alternativesCap)
	assert.Equal(t, 2, f.lookupConcurrency)
	assert.Equal(t, domain.SortNewest, f.defaultSort)
}

func TestFindOtherStores_ItemNotFound(t *testing.T) {
	t.Parallel()

	f, deps := newTestFinder(t)
	deps.store.EXPECT().GetItem(mock.Anything, "u1", "missing").Return(nil, store.ErrNotFound)

	_, err := f.FindOtherStores(context.Background(), "u1", "missing")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestFindOtherStores_NoLocation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		user       *domain.User
		userErr    error
		item       *domain.Item
		wantStores int
	}{
		{
			name:       "user never saved settings",
			userErr:    store.ErrNotFound,
			item:       kettleItem(),
			wantStores: 1,
		},
		{
			name:       "user without location",
			user:       &domain.User{ID: "u1", PreferredCurrency: "JOD"},
			item:       kettleItem(),
			wantStores: 1,
		},
		{
			name:       "blank country counts as no location",
			user:       &domain.User{ID: "u1", Location: &domain.Location{CountryCode: " "}},
			item:       kettleItem(),
			wantStores: 1,
		},
		{
			name:       "item without store data",
			userErr:    store.ErrNotFound,
			item:       &domain.Item{ID: "i2", UserID: "u1", Title: "Toaster"},
			wantStores: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f, deps := newTestFinder(t)
			deps.store.EXPECT().GetItem(mock.Anything, "u1", tt.item.ID).Return(tt.item, nil)
			deps.store.EXPECT().GetUser(mock.Anything, "u1").Return(tt.user, tt.userErr)

			res, err := f.FindOtherStores(context.Background(), "u1", tt.item.ID)
			require.NoError(t, err)

			assert.False(t, res.HasLocation)
			assert.Nil(t, res.UserLocation)
			require.NotNil(t, res.Message)
			assert.Equal(t, availability.NoLocationMessage, *res.Message)
			assert.Empty(t, res.UnavailableStores)
			require.Len(t, res.Stores, tt.wantStores)
			if tt.wantStores == 1 {
				assert.Equal(t, "ubuy.jo", res.Stores[0].Domain)
				assert.InDelta(t, 24.5, res.Stores[0].Price, 0)
			}
		})
	}
}

func TestFindOtherStores_FiltersAndRanks(t *testing.T) {
	t.Parallel()

	f, deps := newTestFinder(t)
	item := kettleItem()

	deps.store.EXPECT().GetItem(mock.Anything, "u1", item.ID).Return(item, nil)
	deps.store.EXPECT().GetUser(mock.Anything, "u1").Return(&domain.User{
		ID:                "u1",
		Location:          &domain.Location{CountryCode: "jo", City: " amman "},
		PreferredCurrency: "JOD",
	}, nil)

	deps.source.EXPECT().GenerateCandidates(mock.Anything, mock.MatchedBy(func(r extract.OfferRequest) bool {
		return r.Title == item.Title && r.CountryCode == "JO" && r.City == "amman" &&
			r.Max == availability.DefaultSingleItemCap && r.OriginalURL == item.URL
	})).Return([]availability.RawOffer{
		rawOffer("OpenSooq", "opensooq.com", 20, "JOD"),
		rawOffer("Noon", "noon.com", 60, "AED"),
		{"storeName": "Broken", "domain": "broken.shop", "price": "19.99", "currency": "USD", "url": "x"},
		rawOffer("Amazon", "www.amazon.com", 25, "USD"),
	}, nil)

	expectProfiles(deps.store, jordanProfiles())

	deps.notifier.EXPECT().NotifyUnknownStores(mock.Anything, notify.UnknownStores{
		Domains:     []string{"amazon.com"},
		ItemTitle:   item.Title,
		CountryCode: "JO",
	}).Return(nil).Once()

	res, err := f.FindOtherStores(context.Background(), "u1", item.ID)
	require.NoError(t, err)

	assert.True(t, res.HasLocation)
	assert.Nil(t, res.Message)
	assert.False(t, res.CityRequired)
	require.NotNil(t, res.UserLocation)
	assert.Equal(t, domain.Location{CountryCode: "JO", City: "amman"}, *res.UserLocation)

	// 25 USD is about 17.73 JOD, so the unknown store ranks first.
	require.Len(t, res.Stores, 2)
	assert.Equal(t, "www.amazon.com", res.Stores[0].Domain)
	assert.Equal(t, "opensooq.com", res.Stores[1].Domain)
	require.NotNil(t, res.Stores[0].NormalizedPrice)
	assert.InDelta(t, 17.73, *res.Stores[0].NormalizedPrice, 0.01)
	assert.InDelta(t, 20, *res.Stores[1].NormalizedPrice, 0)

	require.Len(t, res.UnavailableStores, 1)
	assert.Equal(t, domain.UnavailableOffer{
		StoreName:     "Noon",
		Domain:        "noon.com",
		ReasonCode:    domain.ReasonNoCountryMatch,
		ReasonMessage: availability.ReasonMessage(domain.ReasonNoCountryMatch),
	}, res.UnavailableStores[0])
}

func TestFindOtherStores_CityRequired(t *testing.T) {
	t.Parallel()

	f, deps := newTestFinder(t)
	item := kettleItem()

	deps.store.EXPECT().GetItem(mock.Anything, "u1", item.ID).Return(item, nil)
	deps.store.EXPECT().GetUser(mock.Anything, "u1").
		Return(&domain.User{ID: "u1", Location: &domain.Location{CountryCode: "AE"}}, nil)
	deps.source.EXPECT().GenerateCandidates(mock.Anything, mock.Anything).Return([]availability.RawOffer{
		rawOffer("Noon", "noon.com", 60, "AED"),
	}, nil)

	expectProfiles(deps.store, map[string]*domain.StoreProfile{
		"noon.com": {
			Store: domain.Store{
				Domain: "noon.com", Name: "Noon", CountriesSupported: []string{"AE"}, RequiresCity: true,
			},
			Rules: []domain.ShippingRule{{StoreDomain: "noon.com", CountryCode: "AE", ShipsToCountry: true}},
		},
	})

	res, err := f.FindOtherStores(context.Background(), "u1", item.ID)
	require.NoError(t, err)
	assert.True(t, res.CityRequired)
	assert.Empty(t, res.Stores)
	require.Len(t, res.UnavailableStores, 1)
	assert.Equal(t, domain.ReasonCityRequired, res.UnavailableStores[0].ReasonCode)
}

func TestFindOtherStores_CapsCandidates(t *testing.T) {
	t.Parallel()

	f, deps := newTestFinder(t, WithCaps(2, 0))
	item := kettleItem()

	deps.store.EXPECT().GetItem(mock.Anything, "u1", item.ID).Return(item, nil)
	deps.store.EXPECT().GetUser(mock.Anything, "u1").
		Return(&domain.User{ID: "u1", Location: &domain.Location{CountryCode: "JO"}}, nil)
	deps.source.EXPECT().GenerateCandidates(mock.Anything, mock.MatchedBy(func(r extract.OfferRequest) bool {
		return r.Max == 2
	})).Return([]availability.RawOffer{
		{"storeName": "Bad", "price": 1},
		rawOffer("A", "a.jo", 30, "JOD"),
		rawOffer("B", "b.jo", 20, "JOD"),
		rawOffer("C", "c.jo", 10, "JOD"),
	}, nil)

	expectProfiles(deps.store, nil)
	deps.notifier.EXPECT().NotifyUnknownStores(mock.Anything, mock.Anything).Return(nil)

	res, err := f.FindOtherStores(context.Background(), "u1", item.ID)
	require.NoError(t, err)
	require.Len(t, res.Stores, 2)
	assert.Equal(t, "b.jo", res.Stores[0].Domain)
	assert.Equal(t, "a.jo", res.Stores[1].Domain)
}

func TestFindOtherStores_Errors(t *testing.T) {
	t.Parallel()

	boom := errors.New("connection reset")

	tests := []struct {
		name    string
		setup   func(d finderDeps)
		wantErr error
		errMsg  string
	}{
		{
			name: "user lookup failure",
			setup: func(d finderDeps) {
				d.store.EXPECT().GetUser(mock.Anything, "u1").Return(nil, boom)
			},
			wantErr: boom,
			errMsg:  "loading user location",
		},
		{
			name: "generation failure",
			setup: func(d finderDeps) {
				d.store.EXPECT().GetUser(mock.Anything, "u1").
					Return(&domain.User{ID: "u1", Location: &domain.Location{CountryCode: "JO"}}, nil)
				d.source.EXPECT().GenerateCandidates(mock.Anything, mock.Anything).
					Return(nil, extract.ErrMalformedResponse)
			},
			wantErr: extract.ErrMalformedResponse,
			errMsg:  "generating offers",
		},
		{
			name: "daily quota exhausted",
			setup: func(d finderDeps) {
				d.store.EXPECT().GetUser(mock.Anything, "u1").
					Return(&domain.User{ID: "u1", Location: &domain.Location{CountryCode: "JO"}}, nil)
				d.source.EXPECT().GenerateCandidates(mock.Anything, mock.Anything).
					Return(nil, extract.ErrDailyLimitReached)
			},
			wantErr: extract.ErrDailyLimitReached,
		},
		{
			name: "store lookup failure aborts",
			setup: func(d finderDeps) {
				d.store.EXPECT().GetUser(mock.Anything, "u1").
					Return(&domain.User{ID: "u1", Location: &domain.Location{CountryCode: "JO"}}, nil)
				d.source.EXPECT().GenerateCandidates(mock.Anything, mock.Anything).
					Return([]availability.RawOffer{rawOffer("A", "a.jo", 30, "JOD")}, nil)
				d.store.EXPECT().GetStoreProfile(mock.Anything, "a.jo").Return(nil, boom)
			},
			wantErr: boom,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f, deps := newTestFinder(t)
			item := kettleItem()
			deps.store.EXPECT().GetItem(mock.Anything, "u1", item.ID).Return(item, nil)
			tt.setup(deps)

			_, err := f.FindOtherStores(context.Background(), "u1", item.ID)
			require.ErrorIs(t, err, tt.wantErr)
			if tt.errMsg != "" {
				assert.Contains(t, err.Error(), tt.errMsg)
			}
		})
	}
}

func TestFindOtherStores_NotifyFailureIgnored(t *testing.T) {
	t.Parallel()

	f, deps := newTestFinder(t)
	item := kettleItem()

	deps.store.EXPECT().GetItem(mock.Anything, "u1", item.ID).Return(item, nil)
	deps.store.EXPECT().GetUser(mock.Anything, "u1").
		Return(&domain.User{ID: "u1", Location: &domain.Location{CountryCode: "JO"}}, nil)
	deps.source.EXPECT().GenerateCandidates(mock.Anything, mock.Anything).
		Return([]availability.RawOffer{rawOffer("A", "a.jo", 30, "JOD")}, nil)
	expectProfiles(deps.store, nil)
	deps.notifier.EXPECT().NotifyUnknownStores(mock.Anything, mock.Anything).
		Return(errors.New("discord returned 500"))

	res, err := f.FindOtherStores(context.Background(), "u1", item.ID)
	require.NoError(t, err)
	assert.Len(t, res.Stores, 1)
}

func TestFindAlternatives_EmptyTitle(t *testing.T) {
	t.Parallel()

	f, _ := newTestFinder(t)
	_, err := f.FindAlternatives(context.Background(), AlternativesRequest{Title: "  "})
	require.ErrorIs(t, err, ErrEmptyTitle)
}

func TestFindAlternatives_NoCountrySkipsFiltering(t *testing.T) {
	t.Parallel()

	f, deps := newTestFinder(t)

	deps.source.EXPECT().GenerateCandidates(mock.Anything, mock.MatchedBy(func(r extract.OfferRequest) bool {
		return r.CountryCode == "" && r.City == "" && r.Max == availability.DefaultAlternativesCap
	})).Return([]availability.RawOffer{
		rawOffer("Noon", "noon.com", 60, "AED"),
		rawOffer("OpenSooq", "opensooq.com", 20, "JOD"),
	}, nil)

	// No store lookups and no notifications without a country.
	got, err := f.FindAlternatives(context.Background(), AlternativesRequest{
		Title: "Electric Kettle",
		City:  "Amman",
	})
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, o := range got {
		assert.Equal(t, domain.AvailabilityAvailable, o.Availability)
		assert.Empty(t, o.ReasonCode)
	}
	// 60 AED is about 16.34 USD, 20 JOD is 28.20 USD.
	assert.Equal(t, "noon.com", got[0].Domain)
}

func TestFindAlternatives_AnnotatesUnavailableLast(t *testing.T) {
	t.Parallel()

	f, deps := newTestFinder(t)

	deps.source.EXPECT().GenerateCandidates(mock.Anything, mock.MatchedBy(func(r extract.OfferRequest) bool {
		return r.CountryCode == "JO" && r.City == "Irbid"
	})).Return([]availability.RawOffer{
		rawOffer("Noon", "noon.com", 10, "JOD"),
		rawOffer("OpenSooq", "opensooq.com", 20, "JOD"),
		rawOffer("Ubuy", "ubuy.jo", 30, "JOD"),
	}, nil)

	profiles := jordanProfiles()
	profiles["ubuy.jo"] = &domain.StoreProfile{
		Store: domain.Store{Domain: "ubuy.jo", Name: "Ubuy", CountriesSupported: []string{"JO"}},
	}
	expectProfiles(deps.store, profiles)

	got, err := f.FindAlternatives(context.Background(), AlternativesRequest{
		Title:       "Electric Kettle",
		CountryCode: "jo",
		City:        "Irbid",
		Currency:    "JOD",
	})
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, "ubuy.jo", got[0].Domain)
	assert.Equal(t, domain.AvailabilityAvailable, got[0].Availability)

	assert.Equal(t, "noon.com", got[1].Domain)
	assert.Equal(t, domain.ReasonNoCountryMatch, got[1].ReasonCode)
	assert.Equal(t, domain.AvailabilityUnavailable, got[1].Availability)

	assert.Equal(t, "opensooq.com", got[2].Domain)
	assert.Equal(t, domain.ReasonNoCityMatch, got[2].ReasonCode)
	assert.Equal(t, availability.ReasonMessage(domain.ReasonNoCityMatch), got[2].Reason)
}

func TestFindAlternatives_SortKeys(t *testing.T) {
	t.Parallel()

	raw := []availability.RawOffer{
		{"storeName": "Slow", "domain": "slow.jo", "price": 5.0, "currency": "JOD", "url": "u1",
			"deliveryTime": "5-7 days", "createdAt": "2026-01-01T00:00:00Z"},
		{"storeName": "Fast", "domain": "fast.jo", "price": 9.0, "currency": "JOD", "url": "u2",
			"deliveryTime": "1-2 days", "createdAt": "2026-03-01T00:00:00Z"},
		{"storeName": "Mid", "domain": "mid.jo", "price": 7.0, "currency": "JOD", "url": "u3",
			"deliveryTime": "3-4 days", "createdAt": "2026-02-01T00:00:00Z"},
	}

	tests := []struct {
		name        string
		sort        string
		defaultSort domain.SortKey
		want        []string
	}{
		{name: "lowest price", sort: "lowest_price", want: []string{"slow.jo", "mid.jo", "fast.jo"}},
		{name: "fastest shipping", sort: "fastest_shipping", want: []string{"fast.jo", "mid.jo", "slow.jo"}},
		{name: "newest", sort: "NEWEST", want: []string{"fast.jo", "mid.jo", "slow.jo"}},
		{name: "unknown falls back to price", sort: "cheapest", want: []string{"slow.jo", "mid.jo", "fast.jo"}},
		{
			name:        "empty uses configured default",
			defaultSort: domain.SortFastestShipping,
			want:        []string{"fast.jo", "mid.jo", "slow.jo"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var opts []FinderOption
			if tt.defaultSort != "" {
				opts = append(opts, WithDefaultSort(tt.defaultSort))
			}
			f, deps := newTestFinder(t, opts...)
			deps.source.EXPECT().GenerateCandidates(mock.Anything, mock.Anything).Return(raw, nil)

			got, err := f.FindAlternatives(context.Background(), AlternativesRequest{
				Title: "Kettle",
				Sort:  tt.sort,
			})
			require.NoError(t, err)

			domains := make([]string, len(got))
			for i, o := range got {
				domains[i] = o.Domain
			}
			assert.Equal(t, tt.want, domains)
		})
	}
}

func TestNormalizePrices_UnknownCurrencyKeepsRaw(t *testing.T) {
	t.Parallel()

	f, _ := newTestFinder(t)
	offers := []domain.CandidateOffer{
		{Domain: "a", Price: 100, Currency: "XYZ"},
		{Domain: "b", Price: 10, Currency: "USD"},
	}

	f.normalizePrices(offers, "not-a-currency")
	assert.Nil(t, offers[0].NormalizedPrice)
	require.NotNil(t, offers[1].NormalizedPrice)
	assert.InDelta(t, 10, *offers[1].NormalizedPrice, 0)
}

type fixedQuota int64

func (q fixedQuota) DailyCount() int64 { return int64(q) }

// Not parallel: reads process-global counters.
func TestFinder_RecordsMetrics(t *testing.T) {
	f, deps := newTestFinder(t, WithQuotaReporter(fixedQuota(42)))

	deps.source.EXPECT().GenerateCandidates(mock.Anything, mock.Anything).Return([]availability.RawOffer{
		rawOffer("Noon", "noon.com", 10, "JOD"),
		rawOffer("OpenSooq", "opensooq.com", 20, "JOD"),
		{"domain": "no-name.jo"},
	}, nil).Once()
	deps.source.EXPECT().GenerateCandidates(mock.Anything, mock.Anything).
		Return(nil, extract.ErrDailyLimitReached).Once()
	expectProfiles(deps.store, jordanProfiles())

	evaluated := ptestutil.ToFloat64(metrics.OffersEvaluatedTotal.WithLabelValues(opFindAlternatives))
	noCountry := ptestutil.ToFloat64(metrics.OffersUnavailableTotal.WithLabelValues(string(domain.ReasonNoCountryMatch)))
	dropped := ptestutil.ToFloat64(metrics.OffersDroppedTotal)
	limitHits := ptestutil.ToFloat64(metrics.LLMDailyLimitHits)
	failures := ptestutil.ToFloat64(metrics.OfferGenerationFailuresTotal)

	_, err := f.FindAlternatives(context.Background(), AlternativesRequest{
		Title: "Kettle", CountryCode: "JO", City: "Amman",
	})
	require.NoError(t, err)

	assert.InDelta(t, evaluated+2, ptestutil.ToFloat64(metrics.OffersEvaluatedTotal.WithLabelValues(opFindAlternatives)), 0)
	assert.InDelta(t, noCountry+1, ptestutil.ToFloat64(
		metrics.OffersUnavailableTotal.WithLabelValues(string(domain.ReasonNoCountryMatch))), 0)
	assert.InDelta(t, dropped+1, ptestutil.ToFloat64(metrics.OffersDroppedTotal), 0)
	assert.InDelta(t, 42, ptestutil.ToFloat64(metrics.LLMDailyUsage), 0)

	_, err = f.FindAlternatives(context.Background(), AlternativesRequest{Title: "Kettle"})
	require.ErrorIs(t, err, extract.ErrDailyLimitReached)
	assert.InDelta(t, limitHits+1, ptestutil.ToFloat64(metrics.LLMDailyLimitHits), 0)
	assert.InDelta(t, failures+1, ptestutil.ToFloat64(metrics.OfferGenerationFailuresTotal), 0)
}

// Not parallel: reads process-global counters.
func TestFinder_DroppedOffersCountedUpToCap(t *testing.T) {
	f, deps := newTestFinder(t, WithCaps(0, 1))

	deps.source.EXPECT().GenerateCandidates(mock.Anything, mock.MatchedBy(func(r extract.OfferRequest) bool {
		return r.Max == 1
	})).Return([]availability.RawOffer{
		{"storeName": "Broken"},
		rawOffer("Noon", "noon.com", 10, "JOD"),
		{"storeName": "Past the cap"},
		rawOffer("OpenSooq", "opensooq.com", 20, "JOD"),
	}, nil)

	dropped := ptestutil.ToFloat64(metrics.OffersDroppedTotal)

	got, err := f.FindAlternatives(context.Background(), AlternativesRequest{Title: "Kettle"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "noon.com", got[0].Domain)
	assert.InDelta(t, dropped+1, ptestutil.ToFloat64(metrics.OffersDroppedTotal), 0)
}
