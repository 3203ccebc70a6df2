package orders

import (
	"context"
	"sync"
	"time"

	"github.com/giridhar-narapusetty/Sunnycafe/internal/domain"
)

// MemoryRepository keeps orders in a map. For dev setups without a document
// store, and for tests.
type MemoryRepository struct {
	mu     sync.RWMutex
	byID   map[string]domain.Order
	serial []string
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byID: make(map[string]domain.Order)}
}

func (m *MemoryRepository) Submit(_ context.Context, o *domain.Order) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.byID[o.ID] = *o
	m.serial = append(m.serial, o.ID)
	return o.ID, nil
}

func (m *MemoryRepository) GetByID(_ context.Context, id string) (*domain.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	o, ok := m.byID[id]
	if !ok {
		return nil, ErrOrderNotFound
	}
	return &o, nil
}

func (m *MemoryRepository) ListByUser(_ context.Context, userID string, limit int) ([]domain.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []domain.Order
	// newest first
	for i := len(m.serial) - 1; i >= 0; i-- {
		o := m.byID[m.serial[i]]
		if o.UserID != userID {
			continue
		}
		out = append(out, o)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (m *MemoryRepository) ListBetween(_ context.Context, from, to time.Time) ([]domain.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []domain.Order
	for _, id := range m.serial {
		o := m.byID[id]
		if !o.CreatedAt.Before(from) && !o.CreatedAt.After(to) {
			out = append(out, o)
		}
	}
	return out, nil
}

func (m *MemoryRepository) UpdateStatus(_ context.Context, id string, s domain.OrderStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	o, ok := m.byID[id]
	if !ok {
		return ErrOrderNotFound
	}
	o.Status = s
	o.UpdatedAt = time.Now()
	if s == domain.OrderStatusDelivered {
		now := time.Now()
		o.CompletedAt = &now
	}
	m.byID[id] = o
	return nil
}

func (m *MemoryRepository) Cancel(_ context.Context, id, reason string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	o, ok := m.byID[id]
	if !ok {
		return ErrOrderNotFound
	}
	o.Status = domain.OrderStatusCancelled
	if reason != "" {
		o.Instructions = "Cancelled: " + reason
	} else {
		o.Instructions = "Cancelled by user"
	}
	o.UpdatedAt = time.Now()
	m.byID[id] = o
	return nil
}
