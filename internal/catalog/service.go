package catalog

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/giridhar-narapusetty/Sunnycafe/internal/domain"
)

// CachedProvider fronts a Provider with a short-lived in-process cache of the
// available menu. Singleflight collapses concurrent misses so a cold cache
// costs one upstream read, not one per request.
type CachedProvider struct {
	upstream Provider
	ttl      time.Duration
	sfg      singleflight.Group

	mu        sync.RWMutex
	items     []domain.MenuItem
	fetchedAt time.Time
}

func NewCachedProvider(upstream Provider, ttl time.Duration) *CachedProvider {
	return &CachedProvider{upstream: upstream, ttl: ttl}
}

func (c *CachedProvider) ListAvailable(ctx context.Context) ([]domain.MenuItem, error) {
	c.mu.RLock()
	if c.items != nil && time.Since(c.fetchedAt) < c.ttl {
		items := c.items
		c.mu.RUnlock()
		return items, nil
	}
	c.mu.RUnlock()

	v, err, _ := c.sfg.Do("menu", func() (interface{}, error) {
		items, err := c.upstream.ListAvailable(ctx)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.items = items
		c.fetchedAt = time.Now()
		c.mu.Unlock()
		return items, nil
	})
	if err != nil {
		// A stale menu beats no menu while the upstream is down.
		c.mu.RLock()
		defer c.mu.RUnlock()
		if c.items != nil {
			return c.items, nil
		}
		return nil, err
	}
	return v.([]domain.MenuItem), nil
}

func (c *CachedProvider) ListByCategory(ctx context.Context, category domain.Category) ([]domain.MenuItem, error) {
	items, err := c.ListAvailable(ctx)
	if err != nil {
		return nil, err
	}
	var out []domain.MenuItem
	for _, item := range items {
		if item.Category == category {
			out = append(out, item)
		}
	}
	return out, nil
}

func (c *CachedProvider) ListFeatured(ctx context.Context, limit int) ([]domain.MenuItem, error) {
	items, err := c.ListAvailable(ctx)
	if err != nil {
		return nil, err
	}
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

func (c *CachedProvider) GetByID(ctx context.Context, id string) (*domain.MenuItem, error) {
	items, err := c.ListAvailable(ctx)
	if err == nil {
		for _, item := range items {
			if item.ID == id {
				cp := item
				return &cp, nil
			}
		}
	}
	// Unavailable items are not in the cached list but still resolvable.
	return c.upstream.GetByID(ctx, id)
}

func (c *CachedProvider) Search(ctx context.Context, term string) ([]domain.MenuItem, error) {
	items, err := c.ListAvailable(ctx)
	if err != nil {
		return nil, err
	}
	return filterItems(items, term), nil
}
