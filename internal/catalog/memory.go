package catalog

import (
	"context"
	"sync"

	"github.com/giridhar-narapusetty/Sunnycafe/internal/domain"
)

// MemoryProvider serves a fixed menu from memory. Used when no document store
// is configured and throughout the tests.
type MemoryProvider struct {
	mu    sync.RWMutex
	items []domain.MenuItem
}

func NewMemoryProvider(items []domain.MenuItem) *MemoryProvider {
	return &MemoryProvider{items: items}
}

func (p *MemoryProvider) ListAvailable(_ context.Context) ([]domain.MenuItem, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	var out []domain.MenuItem
	for _, item := range p.items {
		if item.Available {
			out = append(out, item)
		}
	}
	return out, nil
}

func (p *MemoryProvider) ListByCategory(ctx context.Context, category domain.Category) ([]domain.MenuItem, error) {
	items, _ := p.ListAvailable(ctx)
	var out []domain.MenuItem
	for _, item := range items {
		if item.Category == category {
			out = append(out, item)
		}
	}
	return out, nil
}

func (p *MemoryProvider) ListFeatured(ctx context.Context, limit int) ([]domain.MenuItem, error) {
	items, _ := p.ListAvailable(ctx)
	var out []domain.MenuItem
	for _, item := range items {
		if item.Featured {
			out = append(out, item)
			if limit > 0 && len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

func (p *MemoryProvider) GetByID(_ context.Context, id string) (*domain.MenuItem, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	for _, item := range p.items {
		if item.ID == id {
			cp := item
			return &cp, nil
		}
	}
	return nil, ErrItemNotFound
}

func (p *MemoryProvider) Search(ctx context.Context, term string) ([]domain.MenuItem, error) {
	items, _ := p.ListAvailable(ctx)
	return filterItems(items, term), nil
}
