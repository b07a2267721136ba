// Package store defines the storage facade the API layer depends on.
// Two implementations exist: memstore (transient, in-process) and
// gormstore (Postgres). Callers must not depend on either directly.
package store

import (
	"context"
	"errors"

	"github.com/tindahanph/bottleshop/internal/domain"
)

// ErrNotFound is the sentinel returned when a referenced entity is absent.
// The API boundary translates it into HTTP 404; any other error is an
// infrastructure failure and surfaces as a server error.
var ErrNotFound = errors.New("record not found")

// Store is the storage facade for the storefront. Catalog data is
// read-only; carts and orders are the only mutable state.
type Store interface {
	GetCategories(ctx context.Context) ([]domain.Category, error)
	GetCategory(ctx context.Context, id string) (domain.Category, error)

	GetProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id string) (domain.Product, error)
	GetProductsByCategory(ctx context.Context, categoryID string) ([]domain.Product, error)
	GetFeaturedProducts(ctx context.Context) ([]domain.Product, error)
	// SearchProducts matches query case-insensitively as a substring of
	// name, description, or any tag. Union of matches, no ranking.
	SearchProducts(ctx context.Context, query string) ([]domain.Product, error)

	GetCart(ctx context.Context, sessionID string) ([]domain.CartItem, error)
	GetCartItem(ctx context.Context, sessionID, productID string) (domain.CartItem, error)
	// AddToCart merges on an existing (sessionID, productID) row by
	// incrementing its quantity, otherwise inserts a new row with a fresh
	// identifier. Quantity must already be validated >= 1 by the caller.
	AddToCart(ctx context.Context, sessionID, productID string, quantity int) (domain.CartItem, error)
	// UpdateCartItem replaces the quantity unconditionally.
	UpdateCartItem(ctx context.Context, id string, quantity int) (domain.CartItem, error)
	// RemoveFromCart is idempotent; removing an unknown id is not an error.
	RemoveFromCart(ctx context.Context, id string) error
	// ClearCart removes every item for the session; idempotent.
	ClearCart(ctx context.Context, sessionID string) error

	// CreateOrder assigns a new identifier, status pending and the current
	// time, and persists the caller's snapshot verbatim otherwise.
	CreateOrder(ctx context.Context, input domain.OrderInput) (domain.Order, error)
	GetOrder(ctx context.Context, id string) (domain.Order, error)
	GetOrdersBySession(ctx context.Context, sessionID string) ([]domain.Order, error)
}

// IsNotFound reports whether err is the facade's absence sentinel.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
