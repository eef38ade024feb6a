package client

import (
	"context"
	"net/url"

	domain "github.com/donaldgifford/offer-finder/pkg/types"
)

// OtherStoresResponse mirrors the filtered search result.
type OtherStoresResponse struct {
	Stores            []domain.CandidateOffer   `json:"stores"`
	UnavailableStores []domain.UnavailableOffer `json:"unavailableStores"`
	UserLocation      *domain.Location          `json:"userLocation"`
	CityRequired      bool                      `json:"cityRequired"`
	HasLocation       bool                      `json:"hasLocation"`
	Message           *string                   `json:"message"`
}

// AlternativesRequest is a free-text search with an optional inline location.
type AlternativesRequest struct {
	Title       string   `json:"title"`
	OriginalURL string   `json:"originalUrl,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Currency    string   `json:"currency,omitempty"`
	CountryCode string   `json:"countryCode,omitempty"`
	City        string   `json:"city,omitempty"`
	Sort        string   `json:"sort,omitempty"`
}

// FindOtherStores searches for other stores selling a saved item.
func (c *Client) FindOtherStores(ctx context.Context, itemID string) (*OtherStoresResponse, error) {
	var resp OtherStoresResponse
	path := "/api/v1/items/" + url.PathEscape(itemID) + "/find-other-stores-filtered"
	if err := c.post(ctx, path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// FindAlternatives searches for stores selling a product title.
func (c *Client) FindAlternatives(ctx context.Context, req *AlternativesRequest) ([]domain.AnnotatedOffer, error) {
	var offers []domain.AnnotatedOffer
	if err := c.post(ctx, "/api/v1/items/find-alternatives", req, &offers); err != nil {
		return nil, err
	}
	return offers, nil
}

// ReasonCode is one entry of the reason code table.
type ReasonCode struct {
	Code    domain.ReasonCode `json:"code"`
	Message string            `json:"message"`
}

// ListReasonCodes returns the reason code table.
func (c *Client) ListReasonCodes(ctx context.Context) ([]ReasonCode, error) {
	var resp struct {
		Reasons []ReasonCode `json:"reasons"`
	}
	if err := c.get(ctx, "/api/v1/reason-codes", &resp); err != nil {
		return nil, err
	}
	return resp.Reasons, nil
}
