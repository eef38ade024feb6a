package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/offer-finder/internal/engine"
	domain "github.com/donaldgifford/offer-finder/pkg/types"
)

// OfferFinder runs the two store searches. Satisfied by *engine.Finder.
type OfferFinder interface {
	FindOtherStores(ctx context.Context, userID, itemID string) (*engine.OtherStoresResult, error)
	FindAlternatives(ctx context.Context, req engine.AlternativesRequest) ([]domain.AnnotatedOffer, error)
}

// FinderHandler exposes the store search endpoints.
type FinderHandler struct {
	finder OfferFinder
}

// NewFinderHandler creates a new FinderHandler.
func NewFinderHandler(f OfferFinder) *FinderHandler {
	return &FinderHandler{finder: f}
}

// --- Input/Output types ---

// FindOtherStoresInput selects the saved item to search for.
type FindOtherStoresInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"Shopper id" minLength:"1"`
	ItemID string `path:"itemId"                     doc:"Wishlist item UUID"`
}

// FindOtherStoresOutput is the filtered search result.
type FindOtherStoresOutput struct {
	Body engine.OtherStoresResult
}

// FindAlternativesInput is a free-text search with an inline location.
type FindAlternativesInput struct {
	Body struct {
		Title       string   `json:"title"                 minLength:"1" doc:"Product title to find other stores for" example:"Philips electric kettle 1.7L"`
		OriginalURL string   `json:"originalUrl,omitempty"               doc:"Product page the title came from"`
		Price       *float64 `json:"price,omitempty"       minimum:"0"   doc:"Reference price"`
		Currency    string   `json:"currency,omitempty"                  doc:"ISO-4217 code of the reference price" example:"JOD"`
		CountryCode string   `json:"countryCode,omitempty" pattern:"^[A-Za-z]{2}$" doc:"Shopper country; omit to skip filtering" example:"JO"`
		City        string   `json:"city,omitempty"                      doc:"Shopper city" example:"Amman"`
		Sort        string   `json:"sort,omitempty"                      doc:"lowest_price, fastest_shipping or newest; unknown values sort by price"`
	}
}

// FindAlternativesOutput is the annotated offer list, available first.
type FindAlternativesOutput struct {
	Body []domain.AnnotatedOffer
}

// --- Handlers ---

// FindOtherStores searches for other stores selling a saved item and filters
// them by the shopper's saved location.
func (h *FinderHandler) FindOtherStores(
	ctx context.Context,
	input *FindOtherStoresInput,
) (*FindOtherStoresOutput, error) {
	res, err := h.finder.FindOtherStores(ctx, input.UserID, input.ItemID)
	if err != nil {
		return nil, apiError("item", "finding other stores", err)
	}
	return &FindOtherStoresOutput{Body: *res}, nil
}

// FindAlternatives searches for stores selling a free-text product.
func (h *FinderHandler) FindAlternatives(
	ctx context.Context,
	input *FindAlternativesInput,
) (*FindAlternativesOutput, error) {
	offers, err := h.finder.FindAlternatives(ctx, engine.AlternativesRequest{
		Title:       input.Body.Title,
		OriginalURL: input.Body.OriginalURL,
		Price:       input.Body.Price,
		Currency:    input.Body.Currency,
		CountryCode: input.Body.CountryCode,
		City:        input.Body.City,
		Sort:        input.Body.Sort,
	})
	if err != nil {
		return nil, apiError("item", "finding alternatives", err)
	}
	if offers == nil {
		offers = []domain.AnnotatedOffer{}
	}
	return &FindAlternativesOutput{Body: offers}, nil
}

// RegisterFinderRoutes registers the search endpoints with the Huma API.
func RegisterFinderRoutes(api huma.API, h *FinderHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "find-other-stores-filtered",
		Method:      http.MethodPost,
		Path:        "/api/v1/items/{itemId}/find-other-stores-filtered",
		Summary:     "Find other stores for a saved item",
		Description: "Generates candidate offers for a wishlist item and keeps the stores that deliver to the shopper's saved location.",
		Tags:        []string{"finder"},
		Errors:      []int{http.StatusNotFound, http.StatusTooManyRequests, http.StatusBadGateway},
	}, h.FindOtherStores)

	huma.Register(api, huma.Operation{
		OperationID: "find-alternatives",
		Method:      http.MethodPost,
		Path:        "/api/v1/items/find-alternatives",
		Summary:     "Find stores for a product title",
		Description: "Generates candidate offers for a product title and annotates each with availability for the given location.",
		Tags:        []string{"finder"},
		Errors:      []int{http.StatusBadRequest, http.StatusTooManyRequests, http.StatusBadGateway},
	}, h.FindAlternatives)
}
