package client

import (
	"context"
	"net/url"

	domain "github.com/donaldgifford/offer-finder/pkg/types"
)

// StoreUpdate is the body accepted when saving a store.
type StoreUpdate struct {
	Name               string   `json:"name"`
	CountriesSupported []string `json:"countriesSupported"`
	RequiresCity       bool     `json:"requiresCity,omitempty"`
}

// RuleUpdate is the body accepted when saving a shipping rule.
type RuleUpdate struct {
	ShipsToCountry bool     `json:"shipsToCountry"`
	ShipsToCity    bool     `json:"shipsToCity"`
	CityWhitelist  []string `json:"cityWhitelist,omitempty"`
	CityBlacklist  []string `json:"cityBlacklist,omitempty"`
}

// ListStores returns every store with its shipping rules.
func (c *Client) ListStores(ctx context.Context) ([]domain.StoreProfile, error) {
	var resp struct {
		Stores []domain.StoreProfile `json:"stores"`
	}
	if err := c.get(ctx, "/api/v1/stores", &resp); err != nil {
		return nil, err
	}
	return resp.Stores, nil
}

// GetStore returns a store with its shipping rules.
func (c *Client) GetStore(ctx context.Context, storeDomain string) (*domain.StoreProfile, error) {
	var p domain.StoreProfile
	if err := c.get(ctx, storePath(storeDomain), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// PutStore creates or replaces a store.
func (c *Client) PutStore(ctx context.Context, storeDomain string, s *StoreUpdate) (*domain.Store, error) {
	if s.CountriesSupported == nil {
		s.CountriesSupported = []string{}
	}
	var saved domain.Store
	if err := c.put(ctx, storePath(storeDomain), s, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

// DeleteStore removes a store and its rules.
func (c *Client) DeleteStore(ctx context.Context, storeDomain string) error {
	return c.del(ctx, storePath(storeDomain))
}

// PutRule creates or replaces a store's rule for a country.
func (c *Client) PutRule(ctx context.Context, storeDomain, country string, r *RuleUpdate) (*domain.ShippingRule, error) {
	var saved domain.ShippingRule
	if err := c.put(ctx, rulePath(storeDomain, country), r, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

// DeleteRule removes a store's rule for a country.
func (c *Client) DeleteRule(ctx context.Context, storeDomain, country string) error {
	return c.del(ctx, rulePath(storeDomain, country))
}

func storePath(storeDomain string) string {
	return "/api/v1/stores/" + url.PathEscape(storeDomain)
}

func rulePath(storeDomain, country string) string {
	return storePath(storeDomain) + "/rules/" + url.PathEscape(country)
}
