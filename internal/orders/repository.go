// Package orders persists finalized orders and answers order history and
// reporting queries. The assembler produces the record; this package only
// stores it.
package orders

import (
	"context"
	"errors"
	"time"

	"github.com/giridhar-narapusetty/Sunnycafe/internal/domain"
)

var ErrOrderNotFound = errors.New("order not found")

// Repository is the order persistence collaborator. Implementations exist for
// the hosted document store and for Mongo.
type Repository interface {
	// Submit stores the order and returns its storage id.
	Submit(ctx context.Context, o *domain.Order) (string, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]domain.Order, error)
	ListBetween(ctx context.Context, from, to time.Time) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error
	Cancel(ctx context.Context, id, reason string) error
}
