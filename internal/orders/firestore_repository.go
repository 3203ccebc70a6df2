package orders

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/giridhar-narapusetty/Sunnycafe/internal/domain"
)

const orderCollection = "orders"

type FirestoreRepository struct {
	client *firestore.Client
}

func NewFirestoreRepository(client *firestore.Client) *FirestoreRepository {
	return &FirestoreRepository{client: client}
}

func (r *FirestoreRepository) Submit(ctx context.Context, o *domain.Order) (string, error) {
	ref := r.client.Collection(orderCollection).NewDoc()
	if _, err := ref.Set(ctx, o); err != nil {
		return "", fmt.Errorf("failed to submit order: %w", err)
	}
	return ref.ID, nil
}

func (r *FirestoreRepository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	snap, err := r.client.Collection(orderCollection).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return decodeOrder(snap)
}

func (r *FirestoreRepository) ListByUser(ctx context.Context, userID string, limit int) ([]domain.Order, error) {
	q := r.client.Collection(orderCollection).
		Where("userId", "==", userID).
		OrderBy("createdAt", firestore.Desc).
		Limit(limit)
	return r.collect(ctx, q.Documents(ctx))
}

func (r *FirestoreRepository) ListBetween(ctx context.Context, from, to time.Time) ([]domain.Order, error) {
	q := r.client.Collection(orderCollection).
		Where("createdAt", ">=", from).
		Where("createdAt", "<=", to)
	return r.collect(ctx, q.Documents(ctx))
}

func (r *FirestoreRepository) UpdateStatus(ctx context.Context, id string, s domain.OrderStatus) error {
	updates := []firestore.Update{
		{Path: "status", Value: string(s)},
		{Path: "updatedAt", Value: time.Now()},
	}
	if s == domain.OrderStatusDelivered {
		updates = append(updates, firestore.Update{Path: "completedAt", Value: time.Now()})
	}

	_, err := r.client.Collection(orderCollection).Doc(id).Update(ctx, updates)
	if status.Code(err) == codes.NotFound {
		return ErrOrderNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	return nil
}

func (r *FirestoreRepository) Cancel(ctx context.Context, id, reason string) error {
	note := "Cancelled by user"
	if reason != "" {
		note = "Cancelled: " + reason
	}

	_, err := r.client.Collection(orderCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: string(domain.OrderStatusCancelled)},
		{Path: "specialInstructions", Value: note},
		{Path: "updatedAt", Value: time.Now()},
	})
	if status.Code(err) == codes.NotFound {
		return ErrOrderNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to cancel order: %w", err)
	}
	return nil
}

func (r *FirestoreRepository) collect(ctx context.Context, iter *firestore.DocumentIterator) ([]domain.Order, error) {
	defer iter.Stop()

	var out []domain.Order
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list orders: %w", err)
		}
		o, err := decodeOrder(snap)
		if err != nil {
			return nil, err
		}
		out = append(out, *o)
	}
	return out, nil
}

func decodeOrder(snap *firestore.DocumentSnapshot) (*domain.Order, error) {
	var o domain.Order
	if err := snap.DataTo(&o); err != nil {
		return nil, fmt.Errorf("failed to decode order %s: %w", snap.Ref.ID, err)
	}
	o.ID = snap.Ref.ID
	return &o, nil
}
