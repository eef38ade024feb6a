package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/offer-finder/internal/store"
	domain "github.com/donaldgifford/offer-finder/pkg/types"
)

// ProfileInvalidator drops cached store profiles. Satisfied by
// *cache.ProfileCache.
type ProfileInvalidator interface {
	Invalidate(ctx context.Context, storeDomain string)
}

// StoresHandler manages stores and their shipping rules.
type StoresHandler struct {
	store store.Store
	cache ProfileInvalidator
}

// NewStoresHandler creates a new StoresHandler. cache may be nil when
// profiles are not cached.
func NewStoresHandler(s store.Store, cache ProfileInvalidator) *StoresHandler {
	return &StoresHandler{store: s, cache: cache}
}

// --- Input/Output types ---

// ListStoresOutput lists every known store with its rules.
type ListStoresOutput struct {
	Body struct {
		Stores []domain.StoreProfile `json:"stores"`
	}
}

// StoreInput selects a store.
type StoreInput struct {
	Domain string `path:"domain" doc:"Store domain" example:"noon.com"`
}

// StoreProfileOutput is a store with its rules.
type StoreProfileOutput struct {
	Body domain.StoreProfile
}

// PutStoreInput creates or replaces a store.
type PutStoreInput struct {
	Domain string `path:"domain" doc:"Store domain" example:"noon.com"`
	Body   struct {
		Name               string   `json:"name"                         minLength:"1" doc:"Display name" example:"Noon"`
		CountriesSupported []string `json:"countriesSupported"                         doc:"ISO-3166 alpha-2 codes the store sells to"`
		RequiresCity       bool     `json:"requiresCity,omitempty"                     doc:"Whether delivery depends on the shopper's city"`
	}
}

// StoreOutput is a single store without rules.
type StoreOutput struct {
	Body domain.Store
}

// RuleInput selects a shipping rule.
type RuleInput struct {
	Domain  string `path:"domain"  doc:"Store domain"             example:"noon.com"`
	Country string `path:"country" doc:"ISO-3166 alpha-2 country" example:"AE" pattern:"^[A-Za-z]{2}$"`
}

// PutRuleInput creates or replaces a shipping rule.
type PutRuleInput struct {
	Domain  string `path:"domain"  doc:"Store domain"             example:"noon.com"`
	Country string `path:"country" doc:"ISO-3166 alpha-2 country" example:"AE" pattern:"^[A-Za-z]{2}$"`
	Body    struct {
		ShipsToCountry bool     `json:"shipsToCountry"          doc:"Whether the store delivers to the country at all"`
		ShipsToCity    bool     `json:"shipsToCity"             doc:"Default for cities on neither list"`
		CityWhitelist  []string `json:"cityWhitelist,omitempty" doc:"Cities always delivered to"`
		CityBlacklist  []string `json:"cityBlacklist,omitempty" doc:"Cities never delivered to; wins over the whitelist"`
	}
}

// RuleOutput is a single shipping rule.
type RuleOutput struct {
	Body domain.ShippingRule
}

// --- Handlers ---

// ListStores returns every store with its shipping rules.
func (h *StoresHandler) ListStores(ctx context.Context, _ *struct{}) (*ListStoresOutput, error) {
	profiles, err := h.store.ListStoreProfiles(ctx)
	if err != nil {
		return nil, apiError("store", "listing stores", err)
	}
	resp := &ListStoresOutput{}
	resp.Body.Stores = profiles
	if resp.Body.Stores == nil {
		resp.Body.Stores = []domain.StoreProfile{}
	}
	return resp, nil
}

// GetStore returns one store with its shipping rules.
func (h *StoresHandler) GetStore(ctx context.Context, input *StoreInput) (*StoreProfileOutput, error) {
	p, err := h.store.GetStoreProfile(ctx, input.Domain)
	if err != nil {
		return nil, apiError("store", "loading store", err)
	}
	return &StoreProfileOutput{Body: *p}, nil
}

// PutStore creates or replaces a store.
func (h *StoresHandler) PutStore(ctx context.Context, input *PutStoreInput) (*StoreOutput, error) {
	countries := make([]string, 0, len(input.Body.CountriesSupported))
	for _, c := range input.Body.CountriesSupported {
		c = domain.NormalizeCountry(c)
		if len(c) != 2 {
			return nil, huma.Error422UnprocessableEntity("invalid country code " + c)
		}
		countries = append(countries, c)
	}

	s := &domain.Store{
		Domain:             domain.NormalizeDomain(input.Domain),
		Name:               strings.TrimSpace(input.Body.Name),
		CountriesSupported: countries,
		RequiresCity:       input.Body.RequiresCity,
	}
	if err := h.store.UpsertStore(ctx, s); err != nil {
		return nil, apiError("store", "saving store", err)
	}
	h.invalidate(ctx, s.Domain)
	return &StoreOutput{Body: *s}, nil
}

// DeleteStore removes a store and its rules.
func (h *StoresHandler) DeleteStore(ctx context.Context, input *StoreInput) (*struct{}, error) {
	if err := h.store.DeleteStore(ctx, input.Domain); err != nil {
		return nil, apiError("store", "deleting store", err)
	}
	h.invalidate(ctx, input.Domain)
	return nil, nil
}

// PutRule creates or replaces the store's rule for a country.
func (h *StoresHandler) PutRule(ctx context.Context, input *PutRuleInput) (*RuleOutput, error) {
	r := &domain.ShippingRule{
		StoreDomain:    domain.NormalizeDomain(input.Domain),
		CountryCode:    domain.NormalizeCountry(input.Country),
		ShipsToCountry: input.Body.ShipsToCountry,
		ShipsToCity:    input.Body.ShipsToCity,
		CityWhitelist:  trimCities(input.Body.CityWhitelist),
		CityBlacklist:  trimCities(input.Body.CityBlacklist),
	}
	if err := h.store.UpsertShippingRule(ctx, r); err != nil {
		return nil, apiError("rule", "saving shipping rule", err)
	}
	h.invalidate(ctx, r.StoreDomain)
	return &RuleOutput{Body: *r}, nil
}

// DeleteRule removes the store's rule for a country.
func (h *StoresHandler) DeleteRule(ctx context.Context, input *RuleInput) (*struct{}, error) {
	if err := h.store.DeleteShippingRule(ctx, input.Domain, input.Country); err != nil {
		return nil, apiError("shipping rule", "deleting shipping rule", err)
	}
	h.invalidate(ctx, input.Domain)
	return nil, nil
}

func (h *StoresHandler) invalidate(ctx context.Context, storeDomain string) {
	if h.cache != nil {
		h.cache.Invalidate(ctx, domain.NormalizeDomain(storeDomain))
	}
}

// trimCities drops blank entries and surrounding whitespace.
func trimCities(cities []string) []string {
	out := make([]string, 0, len(cities))
	for _, c := range cities {
		if c = strings.TrimSpace(c); c != "" {
			out = append(out, c)
		}
	}
	return out
}

// RegisterStoreRoutes registers store and shipping rule endpoints with the
// Huma API.
func RegisterStoreRoutes(api huma.API, h *StoresHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-stores",
		Method:      http.MethodGet,
		Path:        "/api/v1/stores",
		Summary:     "List stores",
		Description: "Returns every known store with its shipping rules.",
		Tags:        []string{"stores"},
	}, h.ListStores)

	huma.Register(api, huma.Operation{
		OperationID: "get-store",
		Method:      http.MethodGet,
		Path:        "/api/v1/stores/{domain}",
		Summary:     "Get a store",
		Description: "Returns a store with its shipping rules.",
		Tags:        []string{"stores"},
		Errors:      []int{http.StatusNotFound},
	}, h.GetStore)

	huma.Register(api, huma.Operation{
		OperationID: "put-store",
		Method:      http.MethodPut,
		Path:        "/api/v1/stores/{domain}",
		Summary:     "Create or update a store",
		Description: "Creates or replaces a store. Cached profiles for the domain are dropped.",
		Tags:        []string{"stores"},
	}, h.PutStore)

	huma.Register(api, huma.Operation{
		OperationID:   "delete-store",
		Method:        http.MethodDelete,
		Path:          "/api/v1/stores/{domain}",
		Summary:       "Delete a store",
		Description:   "Removes a store and all of its shipping rules.",
		Tags:          []string{"stores"},
		DefaultStatus: http.StatusNoContent,
		Errors:        []int{http.StatusNotFound},
	}, h.DeleteStore)

	huma.Register(api, huma.Operation{
		OperationID: "put-shipping-rule",
		Method:      http.MethodPut,
		Path:        "/api/v1/stores/{domain}/rules/{country}",
		Summary:     "Create or update a shipping rule",
		Description: "Creates or replaces the store's delivery rule for one country.",
		Tags:        []string{"stores"},
		Errors:      []int{http.StatusNotFound},
	}, h.PutRule)

	huma.Register(api, huma.Operation{
		OperationID:   "delete-shipping-rule",
		Method:        http.MethodDelete,
		Path:          "/api/v1/stores/{domain}/rules/{country}",
		Summary:       "Delete a shipping rule",
		Description:   "Removes the store's rule for one country. Without a rule the country falls back to the store's supported list.",
		Tags:          []string{"stores"},
		DefaultStatus: http.StatusNoContent,
		Errors:        []int{http.StatusNotFound},
	}, h.DeleteRule)
}
