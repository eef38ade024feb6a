package handlers_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/offer-finder/internal/api/handlers"
	handlerMocks "github.com/donaldgifford/offer-finder/internal/api/handlers/mocks"
	"github.com/donaldgifford/offer-finder/internal/engine"
	"github.com/donaldgifford/offer-finder/internal/store"
	"github.com/donaldgifford/offer-finder/pkg/extract"
	domain "github.com/donaldgifford/offer-finder/pkg/types"
)

const userHeader = handlers.UserHeader + ": user-1"

func TestFinderHandler_FindOtherStores(t *testing.T) {
	t.Parallel()

	const path = "/api/v1/items/item-1/find-other-stores-filtered"

	tests := []struct {
		name       string
		headers    []any
		setupMock  func(*handlerMocks.MockOfferFinder)
		wantStatus int
		wantBody   string
	}{
		{
			name:    "returns filtered stores",
			headers: []any{userHeader},
			setupMock: func(m *handlerMocks.MockOfferFinder) {
				m.EXPECT().
					FindOtherStores(mock.Anything, "user-1", "item-1").
					Return(&engine.OtherStoresResult{
						Stores: []domain.CandidateOffer{
							{StoreName: "Leaders Center", Domain: "leaders.jo", Price: 24.5, Currency: "JOD"},
						},
						UnavailableStores: []domain.UnavailableOffer{
							{StoreName: "Noon", Domain: "noon.com", ReasonCode: domain.ReasonNoCountryMatch},
						},
						UserLocation: &domain.Location{CountryCode: "JO", City: "Amman"},
						HasLocation:  true,
					}, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"reasonCode":"NO_COUNTRY_MATCH"`,
		},
		{
			name: "missing user header",
			setupMock: func(_ *handlerMocks.MockOfferFinder) {
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   `X-User-ID`,
		},
		{
			name:    "unknown item",
			headers: []any{userHeader},
			setupMock: func(m *handlerMocks.MockOfferFinder) {
				m.EXPECT().
					FindOtherStores(mock.Anything, "user-1", "item-1").
					Return(nil, fmt.Errorf("loading item item-1: %w", store.ErrNotFound)).
					Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `item not found`,
		},
		{
			name:    "quota exhausted",
			headers: []any{userHeader},
			setupMock: func(m *handlerMocks.MockOfferFinder) {
				m.EXPECT().
					FindOtherStores(mock.Anything, "user-1", "item-1").
					Return(nil, fmt.Errorf("generating offers: %w", extract.ErrDailyLimitReached)).
					Once()
			},
			wantStatus: http.StatusTooManyRequests,
			wantBody:   `quota exhausted`,
		},
		{
			name:    "unexpected error",
			headers: []any{userHeader},
			setupMock: func(m *handlerMocks.MockOfferFinder) {
				m.EXPECT().
					FindOtherStores(mock.Anything, "user-1", "item-1").
					Return(nil, errors.New("db error")).
					Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `finding other stores`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mf := handlerMocks.NewMockOfferFinder(t)
			tt.setupMock(mf)

			_, api := humatest.New(t)
			handlers.RegisterFinderRoutes(api, handlers.NewFinderHandler(mf))

			resp := api.Post(path, tt.headers...)
			require.Equal(t, tt.wantStatus, resp.Code)
			assert.Contains(t, resp.Body.String(), tt.wantBody)
		})
	}
}

func TestFinderHandler_FindAlternatives(t *testing.T) {
	t.Parallel()

	const path = "/api/v1/items/find-alternatives"

	tests := []struct {
		name       string
		body       any
		setupMock  func(*handlerMocks.MockOfferFinder)
		wantStatus int
		wantBody   string
	}{
		{
			name: "passes inline location and sort",
			body: map[string]any{
				"title":       "Philips kettle",
				"countryCode": "jo",
				"city":        "Amman",
				"sort":        "fastest_shipping",
				"price":       30,
				"currency":    "JOD",
			},
			setupMock: func(m *handlerMocks.MockOfferFinder) {
				m.EXPECT().
					FindAlternatives(mock.Anything, mock.MatchedBy(func(r engine.AlternativesRequest) bool {
						return r.Title == "Philips kettle" &&
							r.CountryCode == "jo" &&
							r.City == "Amman" &&
							r.Sort == "fastest_shipping" &&
							r.Price != nil && *r.Price == 30 &&
							r.Currency == "JOD"
					})).
					Return([]domain.AnnotatedOffer{
						{
							CandidateOffer: domain.CandidateOffer{StoreName: "Leaders", Domain: "leaders.jo"},
							Availability:   domain.AvailabilityAvailable,
						},
					}, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"availability":"available"`,
		},
		{
			name: "no offers is an empty array",
			body: map[string]any{"title": "obscure thing"},
			setupMock: func(m *handlerMocks.MockOfferFinder) {
				m.EXPECT().
					FindAlternatives(mock.Anything, mock.Anything).
					Return(nil, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `[]`,
		},
		{
			name:       "empty title rejected",
			body:       map[string]any{"title": ""},
			setupMock:  func(_ *handlerMocks.MockOfferFinder) {},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   `expected length >= 1`,
		},
		{
			name:       "malformed country rejected",
			body:       map[string]any{"title": "kettle", "countryCode": "Jordan"},
			setupMock:  func(_ *handlerMocks.MockOfferFinder) {},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   `countryCode`,
		},
		{
			name: "blank title from the service",
			body: map[string]any{"title": "   "},
			setupMock: func(m *handlerMocks.MockOfferFinder) {
				m.EXPECT().
					FindAlternatives(mock.Anything, mock.Anything).
					Return(nil, engine.ErrEmptyTitle).
					Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `title is required`,
		},
		{
			name: "unusable offer source response",
			body: map[string]any{"title": "kettle"},
			setupMock: func(m *handlerMocks.MockOfferFinder) {
				m.EXPECT().
					FindAlternatives(mock.Anything, mock.Anything).
					Return(nil, fmt.Errorf("generating offers: %w", extract.ErrMalformedResponse)).
					Once()
			},
			wantStatus: http.StatusBadGateway,
			wantBody:   `unusable response`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mf := handlerMocks.NewMockOfferFinder(t)
			tt.setupMock(mf)

			_, api := humatest.New(t)
			handlers.RegisterFinderRoutes(api, handlers.NewFinderHandler(mf))

			resp := api.Post(path, tt.body)
			require.Equal(t, tt.wantStatus, resp.Code)
			assert.Contains(t, resp.Body.String(), tt.wantBody)
		})
	}
}
