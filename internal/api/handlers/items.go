package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/offer-finder/internal/store"
	domain "github.com/donaldgifford/offer-finder/pkg/types"
)

// ItemsHandler handles wishlist item endpoints.
type ItemsHandler struct {
	store store.Store
}

// NewItemsHandler creates a new ItemsHandler.
func NewItemsHandler(s store.Store) *ItemsHandler {
	return &ItemsHandler{store: s}
}

// --- Input/Output types ---

// ListItemsInput filters the shopper's wishlist.
type ListItemsInput struct {
	UserID  string `header:"X-User-ID" required:"true" minLength:"1" doc:"Shopper id"`
	Domain  string `query:"domain"   doc:"Filter by store domain"`
	Search  string `query:"search"   doc:"Case-insensitive title match"`
	Limit   int    `query:"limit"    doc:"Number of results (default 50)" minimum:"0" maximum:"500"`
	Offset  int    `query:"offset"   doc:"Pagination offset"              minimum:"0"`
	OrderBy string `query:"order_by" doc:"Sort field"                     enum:"created_at,price,title,"`
}

// ListItemsOutput is a page of wishlist items.
type ListItemsOutput struct {
	Body struct {
		Items  []domain.Item `json:"items"`
		Total  int           `json:"total"`
		Limit  int           `json:"limit"`
		Offset int           `json:"offset"`
	}
}

// CreateItemInput adds an item to the wishlist.
type CreateItemInput struct {
	UserID string `header:"X-User-ID" required:"true" minLength:"1" doc:"Shopper id"`
	Body   struct {
		Title     string   `json:"title"               minLength:"1" maxLength:"500" doc:"Product title" example:"Philips electric kettle 1.7L"`
		Price     *float64 `json:"price,omitempty"     minimum:"0"                   doc:"Price at the original store"`
		Currency  string   `json:"currency,omitempty"  pattern:"^[A-Za-z]{3}$"       doc:"ISO-4217 code of price"`
		URL       string   `json:"url,omitempty"       format:"uri"                  doc:"Product page"`
		StoreName string   `json:"storeName,omitempty"                               doc:"Original store name"`
		Domain    string   `json:"domain,omitempty"                                  doc:"Original store domain"`
	}
}

// ItemInput selects one wishlist item.
type ItemInput struct {
	UserID string `header:"X-User-ID" required:"true" minLength:"1" doc:"Shopper id"`
	ItemID string `path:"itemId"                                   doc:"Wishlist item UUID"`
}

// ItemOutput is a single wishlist item.
type ItemOutput struct {
	Body domain.Item
}

// --- Handlers ---

// ListItems returns the shopper's items, newest first by default.
func (h *ItemsHandler) ListItems(ctx context.Context, input *ListItemsInput) (*ListItemsOutput, error) {
	q := &store.ItemQuery{
		UserID:  input.UserID,
		Limit:   input.Limit,
		Offset:  input.Offset,
		OrderBy: input.OrderBy,
	}
	if input.Domain != "" {
		q.Domain = &input.Domain
	}
	if input.Search != "" {
		q.Search = &input.Search
	}

	items, total, err := h.store.ListItems(ctx, q)
	if err != nil {
		return nil, apiError("item", "listing items", err)
	}

	resp := &ListItemsOutput{}
	resp.Body.Items = items
	if resp.Body.Items == nil {
		resp.Body.Items = []domain.Item{}
	}
	resp.Body.Total = total
	resp.Body.Limit = q.EffectiveLimit()
	resp.Body.Offset = q.Offset
	return resp, nil
}

// CreateItem saves a new wishlist item.
func (h *ItemsHandler) CreateItem(ctx context.Context, input *CreateItemInput) (*ItemOutput, error) {
	if strings.TrimSpace(input.Body.Title) == "" {
		return nil, huma.Error400BadRequest("title is required")
	}

	it := &domain.Item{
		UserID:    input.UserID,
		Title:     strings.TrimSpace(input.Body.Title),
		Price:     input.Body.Price,
		Currency:  strings.ToUpper(input.Body.Currency),
		URL:       input.Body.URL,
		StoreName: input.Body.StoreName,
		Domain:    input.Body.Domain,
	}
	if err := h.store.CreateItem(ctx, it); err != nil {
		return nil, apiError("item", "creating item", err)
	}
	return &ItemOutput{Body: *it}, nil
}

// GetItem returns one of the shopper's items.
func (h *ItemsHandler) GetItem(ctx context.Context, input *ItemInput) (*ItemOutput, error) {
	it, err := h.store.GetItem(ctx, input.UserID, input.ItemID)
	if err != nil {
		return nil, apiError("item", "loading item", err)
	}
	return &ItemOutput{Body: *it}, nil
}

// DeleteItem removes one of the shopper's items.
func (h *ItemsHandler) DeleteItem(ctx context.Context, input *ItemInput) (*struct{}, error) {
	if err := h.store.DeleteItem(ctx, input.UserID, input.ItemID); err != nil {
		return nil, apiError("item", "deleting item", err)
	}
	return nil, nil
}

// RegisterItemRoutes registers wishlist item endpoints with the Huma API.
func RegisterItemRoutes(api huma.API, h *ItemsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-items",
		Method:      http.MethodGet,
		Path:        "/api/v1/items",
		Summary:     "List wishlist items",
		Description: "Returns the shopper's items with optional domain and title filters.",
		Tags:        []string{"items"},
	}, h.ListItems)

	huma.Register(api, huma.Operation{
		OperationID:   "create-item",
		Method:        http.MethodPost,
		Path:          "/api/v1/items",
		Summary:       "Add a wishlist item",
		Description:   "Saves a product to the shopper's wishlist.",
		Tags:          []string{"items"},
		DefaultStatus: http.StatusCreated,
	}, h.CreateItem)

	huma.Register(api, huma.Operation{
		OperationID: "get-item",
		Method:      http.MethodGet,
		Path:        "/api/v1/items/{itemId}",
		Summary:     "Get a wishlist item",
		Description: "Returns one of the shopper's items by UUID.",
		Tags:        []string{"items"},
		Errors:      []int{http.StatusNotFound},
	}, h.GetItem)

	huma.Register(api, huma.Operation{
		OperationID:   "delete-item",
		Method:        http.MethodDelete,
		Path:          "/api/v1/items/{itemId}",
		Summary:       "Delete a wishlist item",
		Description:   "Removes one of the shopper's items.",
		Tags:          []string{"items"},
		DefaultStatus: http.StatusNoContent,
		Errors:        []int{http.StatusNotFound},
	}, h.DeleteItem)
}
