package orders

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giridhar-narapusetty/Sunnycafe/internal/domain"
)

func orderWith(status domain.OrderStatus, total float64, items ...domain.OrderItem) domain.Order {
	return domain.Order{
		ID:        "order-" + string(status) + "-x",
		Status:    status,
		Total:     total,
		Items:     items,
		CreatedAt: time.Now(),
	}
}

func TestComputeStats_Empty(t *testing.T) {
	s := ComputeStats(nil)
	assert.Zero(t, s.TotalOrders)
	assert.Zero(t, s.TotalRevenue)
	assert.Zero(t, s.AverageOrderValue)
	assert.Empty(t, s.TopItems)
}

func TestComputeStats_CancelledExcludedFromRevenue(t *testing.T) {
	list := []domain.Order{
		orderWith(domain.OrderStatusDelivered, 10.00,
			domain.OrderItem{MenuItemID: "coffee-01", Name: "Artisan Espresso", Quantity: 2, Subtotal: 6.50}),
		orderWith(domain.OrderStatusPending, 20.00,
			domain.OrderItem{MenuItemID: "coffee-02", Name: "Golden Latte", Quantity: 1, Subtotal: 4.75}),
		orderWith(domain.OrderStatusCancelled, 50.00,
			domain.OrderItem{MenuItemID: "coffee-01", Name: "Artisan Espresso", Quantity: 9, Subtotal: 29.25}),
	}

	s := ComputeStats(list)

	assert.Equal(t, 3, s.TotalOrders)
	assert.Equal(t, 1, s.CancelledOrders)
	assert.Equal(t, 1, s.CompletedOrders)
	assert.InDelta(t, 30.00, s.TotalRevenue, 1e-9)
	// Average over the two non-cancelled orders.
	assert.InDelta(t, 15.00, s.AverageOrderValue, 1e-9)

	// Cancelled quantities never reach item sales.
	require.Len(t, s.TopItems, 2)
	assert.Equal(t, "coffee-01", s.TopItems[0].MenuItemID)
	assert.Equal(t, 2, s.TopItems[0].Quantity)
}

func TestComputeStats_TopItemsOrdering(t *testing.T) {
	list := []domain.Order{
		orderWith(domain.OrderStatusDelivered, 30,
			domain.OrderItem{MenuItemID: "tea-01", Name: "Green Tea", Quantity: 3, Subtotal: 10.50},
			domain.OrderItem{MenuItemID: "coffee-01", Name: "Artisan Espresso", Quantity: 3, Subtotal: 9.75},
			domain.OrderItem{MenuItemID: "cold-01", Name: "Iced Americano", Quantity: 5, Subtotal: 27.50}),
	}

	s := ComputeStats(list)

	require.Len(t, s.TopItems, 3)
	assert.Equal(t, "cold-01", s.TopItems[0].MenuItemID)
	// Ties break on item id.
	assert.Equal(t, "coffee-01", s.TopItems[1].MenuItemID)
	assert.Equal(t, "tea-01", s.TopItems[2].MenuItemID)
}

func TestStatsBetween_FiltersWindow(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	old := orderWith(domain.OrderStatusDelivered, 10)
	old.ID = "order-old"
	old.CreatedAt = time.Now().AddDate(0, 0, -60)
	recent := orderWith(domain.OrderStatusDelivered, 25)
	recent.ID = "order-recent"

	_, err := repo.Submit(ctx, &old)
	require.NoError(t, err)
	_, err = repo.Submit(ctx, &recent)
	require.NoError(t, err)

	s, err := StatsBetween(ctx, repo, time.Now().AddDate(0, 0, -30), time.Now().Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 1, s.TotalOrders)
	assert.InDelta(t, 25, s.TotalRevenue, 1e-9)
}

func TestMemoryRepository_Lifecycle(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	o := orderWith(domain.OrderStatusPending, 14.03)
	o.ID = "order-1"
	o.UserID = "user-1"

	id, err := repo.Submit(ctx, &o)
	require.NoError(t, err)
	assert.Equal(t, "order-1", id)

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPending, got.Status)

	require.NoError(t, repo.UpdateStatus(ctx, id, domain.OrderStatusDelivered))
	got, err = repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusDelivered, got.Status)
	require.NotNil(t, got.CompletedAt)

	mine, err := repo.ListByUser(ctx, "user-1", 10)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrOrderNotFound)
	assert.ErrorIs(t, repo.UpdateStatus(ctx, "missing", domain.OrderStatusReady), ErrOrderNotFound)
}

func TestMemoryRepository_Cancel(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	o := orderWith(domain.OrderStatusPending, 10)
	o.ID = "order-1"
	_, err := repo.Submit(ctx, &o)
	require.NoError(t, err)

	require.NoError(t, repo.Cancel(ctx, "order-1", "changed my mind"))
	got, err := repo.GetByID(ctx, "order-1")
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusCancelled, got.Status)
	assert.Equal(t, "Cancelled: changed my mind", got.Instructions)
}

func TestMemoryRepository_ListByUserNewestFirst(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	for _, id := range []string{"order-1", "order-2", "order-3"} {
		o := orderWith(domain.OrderStatusPending, 5)
		o.ID = id
		o.UserID = "user-1"
		_, err := repo.Submit(ctx, &o)
		require.NoError(t, err)
	}

	mine, err := repo.ListByUser(ctx, "user-1", 2)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "order-3", mine[0].ID)
	assert.Equal(t, "order-2", mine[1].ID)
}
