package orders

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/giridhar-narapusetty/Sunnycafe/internal/domain"
)

// ItemSales is aggregate sales for one menu item over a window.
type ItemSales struct {
	MenuItemID string  `json:"menu_item_id"`
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	Revenue    float64 `json:"revenue"`
}

// Stats summarises a window of orders for reporting and the insights agents.
type Stats struct {
	TotalOrders       int         `json:"total_orders"`
	TotalRevenue      float64     `json:"total_revenue"`
	AverageOrderValue float64     `json:"average_order_value"`
	CompletedOrders   int         `json:"completed_orders"`
	CancelledOrders   int         `json:"cancelled_orders"`
	TopItems          []ItemSales `json:"top_items"`
}

// ComputeStats folds a set of orders into a Stats. Cancelled orders count
// toward volume but not revenue or item sales.
func ComputeStats(list []domain.Order) Stats {
	s := Stats{TotalOrders: len(list)}
	sales := make(map[string]*ItemSales)

	for _, o := range list {
		switch o.Status {
		case domain.OrderStatusCancelled:
			s.CancelledOrders++
			continue
		case domain.OrderStatusDelivered:
			s.CompletedOrders++
		}

		s.TotalRevenue += o.Total
		for _, item := range o.Items {
			entry, ok := sales[item.MenuItemID]
			if !ok {
				entry = &ItemSales{MenuItemID: item.MenuItemID, Name: item.Name}
				sales[item.MenuItemID] = entry
			}
			entry.Quantity += item.Quantity
			entry.Revenue += item.Subtotal
		}
	}

	if n := s.TotalOrders - s.CancelledOrders; n > 0 {
		s.AverageOrderValue = s.TotalRevenue / float64(n)
	}

	for _, entry := range sales {
		s.TopItems = append(s.TopItems, *entry)
	}
	sort.Slice(s.TopItems, func(i, j int) bool {
		if s.TopItems[i].Quantity != s.TopItems[j].Quantity {
			return s.TopItems[i].Quantity > s.TopItems[j].Quantity
		}
		return s.TopItems[i].MenuItemID < s.TopItems[j].MenuItemID
	})
	return s
}

// StatsBetween loads the window from the repository and aggregates it.
func StatsBetween(ctx context.Context, repo Repository, from, to time.Time) (Stats, error) {
	list, err := repo.ListBetween(ctx, from, to)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to load orders for stats: %w", err)
	}
	return ComputeStats(list), nil
}
