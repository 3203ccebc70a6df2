package orders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/giridhar-narapusetty/Sunnycafe/internal/domain"
)

type mongoRepository struct {
	collection *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) Repository {
	return &mongoRepository{collection: db.Collection("orders")}
}

// ConnectMongoDB dials and pings the database.
func ConnectMongoDB(ctx context.Context, uri, database string) (*mongo.Database, error) {
	clientOpts := options.Client().
		ApplyURI(uri).
		SetConnectTimeout(10 * time.Second).
		SetServerSelectionTimeout(5 * time.Second)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	return client.Database(database), nil
}

func (m *mongoRepository) Submit(ctx context.Context, o *domain.Order) (string, error) {
	if _, err := m.collection.InsertOne(ctx, o); err != nil {
		return "", fmt.Errorf("failed to submit order: %w", err)
	}
	return o.ID, nil
}

func (m *mongoRepository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	var o domain.Order
	err := m.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&o)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return &o, nil
}

func (m *mongoRepository) ListByUser(ctx context.Context, userID string, limit int) ([]domain.Order, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))

	cur, err := m.collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer cur.Close(ctx)

	var out []domain.Order
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to decode orders: %w", err)
	}
	return out, nil
}

func (m *mongoRepository) ListBetween(ctx context.Context, from, to time.Time) ([]domain.Order, error) {
	filter := bson.M{"created_at": bson.M{"$gte": from, "$lte": to}}

	cur, err := m.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer cur.Close(ctx)

	var out []domain.Order
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to decode orders: %w", err)
	}
	return out, nil
}

func (m *mongoRepository) UpdateStatus(ctx context.Context, id string, s domain.OrderStatus) error {
	set := bson.M{"status": s, "updated_at": time.Now()}
	if s == domain.OrderStatusDelivered {
		set["completed_at"] = time.Now()
	}

	result, err := m.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrOrderNotFound
	}
	return nil
}

func (m *mongoRepository) Cancel(ctx context.Context, id, reason string) error {
	note := "Cancelled by user"
	if reason != "" {
		note = "Cancelled: " + reason
	}

	update := bson.M{"$set": bson.M{
		"status":               domain.OrderStatusCancelled,
		"special_instructions": note,
		"updated_at":           time.Now(),
	}}

	result, err := m.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to cancel order: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrOrderNotFound
	}
	return nil
}
