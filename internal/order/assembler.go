// Package order turns a finalized cart into an immutable order record:
// validation, tax/discount/fee arithmetic, order number generation and a deep
// snapshot of the cart lines.
package order

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/giridhar-narapusetty/Sunnycafe/internal/domain"
)

// DefaultTaxRate matches the 10% service tax printed on receipts.
const DefaultTaxRate = 0.10

// ValidationError is a user-facing checkout failure. No order is produced and
// no state is mutated when one is returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

var (
	ErrEmptyCart    = &ValidationError{Field: "cart", Reason: "cart is empty, nothing to checkout"}
	ErrCustomerName = &ValidationError{Field: "customer_name", Reason: "customer name is required"}
)

// Options carries everything finalize needs beyond the cart itself. The zero
// value means: default tax rate, no fee, no discount, pickup.
type Options struct {
	TaxRate     float64 // 0 means DefaultTaxRate
	DeliveryFee float64
	Discount    float64

	UserID        string
	CustomerEmail string
	CustomerPhone string
	OrderType     domain.OrderType
	PaymentMethod domain.PaymentMethod
	Instructions  string
}

func (o Options) taxRate() float64 {
	if o.TaxRate == 0 {
		return DefaultTaxRate
	}
	return o.TaxRate
}

// Finalize validates and assembles the immutable order. The returned order is
// fully detached: mutating the source cart afterwards changes nothing here.
func Finalize(lines []domain.CartLine, customerName string, opts Options) (*domain.Order, error) {
	customerName = strings.TrimSpace(customerName)
	if customerName == "" {
		return nil, ErrCustomerName
	}
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	items := make([]domain.OrderItem, len(lines))
	var subtotal float64
	for i, l := range lines {
		items[i] = domain.OrderItem{
			MenuItemID:    l.Item.ID,
			Name:          l.Item.Name,
			Price:         l.Item.Price,
			Quantity:      l.Quantity,
			Customization: l.Customization.Clone(),
			Subtotal:      l.LineTotal,
		}
		subtotal += l.LineTotal
	}

	tax := Tax(subtotal, opts.taxRate())
	total := subtotal + tax + opts.DeliveryFee - opts.Discount

	orderType := opts.OrderType
	if orderType == "" {
		orderType = domain.OrderTypePickup
	}
	paymentMethod := opts.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = domain.PaymentMethodCard
	}

	now := time.Now()
	return &domain.Order{
		ID:            uuid.New().String(),
		OrderNumber:   NewOrderNumber(),
		UserID:        opts.UserID,
		CustomerName:  customerName,
		CustomerEmail: opts.CustomerEmail,
		CustomerPhone: opts.CustomerPhone,
		Items:         items,
		Subtotal:      subtotal,
		Tax:           tax,
		Discount:      opts.Discount,
		DeliveryFee:   opts.DeliveryFee,
		Total:         total,
		Status:        domain.OrderStatusPending,
		PaymentStatus: domain.PaymentStatusPending,
		PaymentMethod: paymentMethod,
		OrderType:     orderType,
		Instructions:  opts.Instructions,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}
