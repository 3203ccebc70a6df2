package catalog

import (
	"context"
	"fmt"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/giridhar-narapusetty/Sunnycafe/internal/domain"
)

const menuCollection = "menu_items"

// FirestoreProvider reads the menu from the hosted document store.
type FirestoreProvider struct {
	client *firestore.Client
}

func NewFirestoreProvider(client *firestore.Client) *FirestoreProvider {
	return &FirestoreProvider{client: client}
}

func (p *FirestoreProvider) ListAvailable(ctx context.Context) ([]domain.MenuItem, error) {
	q := p.client.Collection(menuCollection).Where("available", "==", true)
	return p.collect(ctx, q.Documents(ctx))
}

func (p *FirestoreProvider) ListByCategory(ctx context.Context, category domain.Category) ([]domain.MenuItem, error) {
	q := p.client.Collection(menuCollection).
		Where("available", "==", true).
		Where("category", "==", string(category))
	return p.collect(ctx, q.Documents(ctx))
}

func (p *FirestoreProvider) ListFeatured(ctx context.Context, limit int) ([]domain.MenuItem, error) {
	q := p.client.Collection(menuCollection).
		Where("available", "==", true).
		Where("featured", "==", true).
		Limit(limit)
	return p.collect(ctx, q.Documents(ctx))
}

func (p *FirestoreProvider) GetByID(ctx context.Context, id string) (*domain.MenuItem, error) {
	snap, err := p.client.Collection(menuCollection).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get menu item: %w", err)
	}

	var item domain.MenuItem
	if err := snap.DataTo(&item); err != nil {
		return nil, fmt.Errorf("failed to decode menu item: %w", err)
	}
	item.ID = snap.Ref.ID
	return &item, nil
}

// Search filters name, description and tags in memory; the document store has
// no substring queries.
func (p *FirestoreProvider) Search(ctx context.Context, term string) ([]domain.MenuItem, error) {
	items, err := p.ListAvailable(ctx)
	if err != nil {
		return nil, err
	}
	return filterItems(items, term), nil
}

func (p *FirestoreProvider) collect(ctx context.Context, iter *firestore.DocumentIterator) ([]domain.MenuItem, error) {
	defer iter.Stop()

	var items []domain.MenuItem
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list menu items: %w", err)
		}

		var item domain.MenuItem
		if err := snap.DataTo(&item); err != nil {
			return nil, fmt.Errorf("failed to decode menu item %s: %w", snap.Ref.ID, err)
		}
		item.ID = snap.Ref.ID
		items = append(items, item)
	}
	return items, nil
}

func filterItems(items []domain.MenuItem, term string) []domain.MenuItem {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return items
	}

	var out []domain.MenuItem
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Name), term) ||
			strings.Contains(strings.ToLower(item.Description), term) ||
			tagMatches(item.Tags, term) {
			out = append(out, item)
		}
	}
	return out
}

func tagMatches(tags []string, term string) bool {
	for _, tag := range tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}
