package client

import (
	"context"
	"net/url"
	"strconv"

	domain "github.com/donaldgifford/offer-finder/pkg/types"
)

// ListItemsParams filters the wishlist.
type ListItemsParams struct {
	Domain  string
	Search  string
	Limit   int
	Offset  int
	OrderBy string
}

// ItemsResponse is a page of wishlist items.
type ItemsResponse struct {
	Items  []domain.Item `json:"items"`
	Total  int           `json:"total"`
	Limit  int           `json:"limit"`
	Offset int           `json:"offset"`
}

// NewItem is the body accepted when creating an item.
type NewItem struct {
	Title     string   `json:"title"`
	Price     *float64 `json:"price,omitempty"`
	Currency  string   `json:"currency,omitempty"`
	URL       string   `json:"url,omitempty"`
	StoreName string   `json:"storeName,omitempty"`
	Domain    string   `json:"domain,omitempty"`
}

// ListItems returns a page of the shopper's items.
func (c *Client) ListItems(ctx context.Context, p *ListItemsParams) (*ItemsResponse, error) {
	q := url.Values{}
	if p != nil {
		if p.Domain != "" {
			q.Set("domain", p.Domain)
		}
		if p.Search != "" {
			q.Set("search", p.Search)
		}
		if p.Limit > 0 {
			q.Set("limit", strconv.Itoa(p.Limit))
		}
		if p.Offset > 0 {
			q.Set("offset", strconv.Itoa(p.Offset))
		}
		if p.OrderBy != "" {
			q.Set("order_by", p.OrderBy)
		}
	}

	path := "/api/v1/items"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var resp ItemsResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetItem returns one of the shopper's items.
func (c *Client) GetItem(ctx context.Context, id string) (*domain.Item, error) {
	var it domain.Item
	if err := c.get(ctx, "/api/v1/items/"+url.PathEscape(id), &it); err != nil {
		return nil, err
	}
	return &it, nil
}

// CreateItem adds an item to the shopper's wishlist.
func (c *Client) CreateItem(ctx context.Context, it *NewItem) (*domain.Item, error) {
	var created domain.Item
	if err := c.post(ctx, "/api/v1/items", it, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// DeleteItem removes one of the shopper's items.
func (c *Client) DeleteItem(ctx context.Context, id string) error {
	return c.del(ctx, "/api/v1/items/"+url.PathEscape(id))
}
