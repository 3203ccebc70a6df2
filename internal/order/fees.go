package order

import "github.com/giridhar-narapusetty/Sunnycafe/internal/domain"

// DeliveryFee resolves the fee for an order: only delivery orders pay it, and
// subtotals at or above the free-delivery threshold waive it.
func DeliveryFee(subtotal float64, orderType domain.OrderType, fee, freeThreshold float64) float64 {
	if orderType != domain.OrderTypeDelivery {
		return 0
	}
	if freeThreshold > 0 && subtotal >= freeThreshold {
		return 0
	}
	return fee
}

// MeetsMinimum reports whether the subtotal clears the minimum order amount.
func MeetsMinimum(subtotal, minimum float64) bool {
	return subtotal >= minimum
}
