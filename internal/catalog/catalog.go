// Package catalog provides read access to the menu. The storefront never
// mutates menu items; admin tooling owns writes.
package catalog

import (
	"context"
	"errors"

	"github.com/giridhar-narapusetty/Sunnycafe/internal/domain"
)

var ErrItemNotFound = errors.New("menu item not found")

// Provider is the catalog collaborator as seen by the cart and the handlers.
type Provider interface {
	ListAvailable(ctx context.Context) ([]domain.MenuItem, error)
	ListByCategory(ctx context.Context, category domain.Category) ([]domain.MenuItem, error)
	ListFeatured(ctx context.Context, limit int) ([]domain.MenuItem, error)
	GetByID(ctx context.Context, id string) (*domain.MenuItem, error)
	Search(ctx context.Context, term string) ([]domain.MenuItem, error)
}
