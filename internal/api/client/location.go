package client

import (
	"context"

	domain "github.com/donaldgifford/offer-finder/pkg/types"
)

// LocationResponse is the shopper's saved location.
type LocationResponse struct {
	Location          *domain.Location `json:"location"`
	PreferredCurrency string           `json:"preferredCurrency,omitempty"`
	HasLocation       bool             `json:"hasLocation"`
}

// LocationUpdate replaces the shopper's location. An empty
// PreferredCurrency keeps the saved one.
type LocationUpdate struct {
	CountryCode       string `json:"countryCode"`
	City              string `json:"city,omitempty"`
	PreferredCurrency string `json:"preferredCurrency,omitempty"`
}

// GetLocation returns the shopper's saved location.
func (c *Client) GetLocation(ctx context.Context) (*LocationResponse, error) {
	var resp LocationResponse
	if err := c.get(ctx, "/api/v1/me/location", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SetLocation saves the shopper's location.
func (c *Client) SetLocation(ctx context.Context, u *LocationUpdate) (*LocationResponse, error) {
	var resp LocationResponse
	if err := c.put(ctx, "/api/v1/me/location", u, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
