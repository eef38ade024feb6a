package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/offer-finder/internal/store"
	domain "github.com/donaldgifford/offer-finder/pkg/types"
)

// CurrencyChecker reports whether a currency can be converted to. Satisfied
// by *currency.Converter.
type CurrencyChecker interface {
	Supports(code string) bool
}

// LocationHandler reads and updates the shopper's saved location.
type LocationHandler struct {
	store      store.Store
	currencies CurrencyChecker
}

// NewLocationHandler creates a new LocationHandler. A nil checker accepts
// any well-formed currency code.
func NewLocationHandler(s store.Store, currencies CurrencyChecker) *LocationHandler {
	return &LocationHandler{store: s, currencies: currencies}
}

// --- Input/Output types ---

// GetLocationInput identifies the shopper.
type GetLocationInput struct {
	UserID string `header:"X-User-ID" required:"true" minLength:"1" doc:"Shopper id"`
}

// LocationBody is the saved location of a shopper.
type LocationBody struct {
	Location          *domain.Location `json:"location"                    doc:"Saved location, null when unset"`
	PreferredCurrency string           `json:"preferredCurrency,omitempty" doc:"Currency offers are normalized to" example:"JOD"`
	HasLocation       bool             `json:"hasLocation"                 doc:"Whether a country is saved"`
}

// LocationOutput is the response for both location endpoints.
type LocationOutput struct {
	Body LocationBody
}

// PutLocationInput replaces the shopper's location.
type PutLocationInput struct {
	UserID string `header:"X-User-ID" required:"true" minLength:"1" doc:"Shopper id"`
	Body   struct {
		CountryCode       string `json:"countryCode"                 pattern:"^[A-Za-z]{2}$" doc:"ISO-3166 alpha-2 country" example:"JO"`
		City              string `json:"city,omitempty"              maxLength:"120"         doc:"City; some stores need it to decide delivery" example:"Amman"`
		PreferredCurrency string `json:"preferredCurrency,omitempty" pattern:"^[A-Za-z]{3}$" doc:"ISO-4217 code; omit to keep the current one" example:"JOD"`
	}
}

func locationBody(u *domain.User) LocationBody {
	return LocationBody{
		Location:          u.Location,
		PreferredCurrency: u.PreferredCurrency,
		HasLocation:       u.Location != nil && u.Location.CountryCode != "",
	}
}

// --- Handlers ---

// GetLocation returns the saved location. Unknown shoppers have none.
func (h *LocationHandler) GetLocation(ctx context.Context, input *GetLocationInput) (*LocationOutput, error) {
	u, err := h.store.GetUser(ctx, input.UserID)
	if errors.Is(err, store.ErrNotFound) {
		return &LocationOutput{}, nil
	}
	if err != nil {
		return nil, apiError("user", "loading location", err)
	}
	return &LocationOutput{Body: locationBody(u)}, nil
}

// PutLocation saves the shopper's country, city and preferred currency.
func (h *LocationHandler) PutLocation(ctx context.Context, input *PutLocationInput) (*LocationOutput, error) {
	cur := strings.ToUpper(strings.TrimSpace(input.Body.PreferredCurrency))
	if cur != "" && h.currencies != nil && !h.currencies.Supports(cur) {
		return nil, huma.Error422UnprocessableEntity("unsupported currency " + cur)
	}

	loc := domain.Location{
		CountryCode: domain.NormalizeCountry(input.Body.CountryCode),
		City:        strings.TrimSpace(input.Body.City),
	}

	u, err := h.store.UpsertUserLocation(ctx, input.UserID, loc, cur)
	if err != nil {
		return nil, apiError("user", "saving location", err)
	}
	return &LocationOutput{Body: locationBody(u)}, nil
}

// RegisterLocationRoutes registers the location endpoints with the Huma API.
func RegisterLocationRoutes(api huma.API, h *LocationHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-location",
		Method:      http.MethodGet,
		Path:        "/api/v1/me/location",
		Summary:     "Get saved location",
		Description: "Returns the shopper's saved country, city and preferred currency.",
		Tags:        []string{"location"},
	}, h.GetLocation)

	huma.Register(api, huma.Operation{
		OperationID: "put-location",
		Method:      http.MethodPut,
		Path:        "/api/v1/me/location",
		Summary:     "Save location",
		Description: "Sets the shopper's country and city used to filter stores by delivery.",
		Tags:        []string{"location"},
	}, h.PutLocation)
}
