// Package store defines the datastore abstraction for offer-finder.
// All business logic depends on the Store interface, never on concrete
// implementations. This enables mock-based testing without a running database.
package store

import (
	"context"
	"errors"

	domain "github.com/donaldgifford/offer-finder/pkg/types"
)

// ErrNotFound is returned when a user, item or shipping rule does not exist.
// Missing stores are reported as availability.ErrStoreNotFound.
var ErrNotFound = errors.New("not found")

// ItemQuery defines optional filters for wishlist item queries.
type ItemQuery struct {
	UserID  string
	Domain  *string
	Search  *string // case-insensitive title match
	Limit   int     // default 50
	Offset  int
	OrderBy string // "created_at", "price", "title"
}

// Store defines all data access operations for offer-finder.
type Store interface {
	// Users
	GetUser(ctx context.Context, id string) (*domain.User, error)
	UpsertUserLocation(
		ctx context.Context,
		userID string,
		loc domain.Location,
		preferredCurrency string,
	) (*domain.User, error)

	// Items
	CreateItem(ctx context.Context, it *domain.Item) error
	GetItem(ctx context.Context, userID, itemID string) (*domain.Item, error)
	ListItems(ctx context.Context, q *ItemQuery) ([]domain.Item, int, error)
	DeleteItem(ctx context.Context, userID, itemID string) error

	// Stores and shipping rules
	GetStoreProfile(ctx context.Context, storeDomain string) (*domain.StoreProfile, error)
	ListStoreProfiles(ctx context.Context) ([]domain.StoreProfile, error)
	UpsertStore(ctx context.Context, s *domain.Store) error
	DeleteStore(ctx context.Context, storeDomain string) error
	UpsertShippingRule(ctx context.Context, r *domain.ShippingRule) error
	DeleteShippingRule(ctx context.Context, storeDomain, countryCode string) error

	// Migrations
	Migrate(ctx context.Context) error

	// Health
	Ping(ctx context.Context) error
}
