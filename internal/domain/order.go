package domain

import "time"

type OrderStatus string

const (
	OrderStatusPending        OrderStatus = "pending"
	OrderStatusConfirmed      OrderStatus = "confirmed"
	OrderStatusPreparing      OrderStatus = "preparing"
	OrderStatusReady          OrderStatus = "ready"
	OrderStatusOutForDelivery OrderStatus = "out_for_delivery"
	OrderStatusDelivered      OrderStatus = "delivered"
	OrderStatusCancelled      OrderStatus = "cancelled"
)

// IsTerminal reports whether no further status transitions are expected.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

func (s OrderStatus) String() string { return string(s) }

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

type PaymentMethod string

const (
	PaymentMethodCard   PaymentMethod = "card"
	PaymentMethodCash   PaymentMethod = "cash"
	PaymentMethodWallet PaymentMethod = "wallet"
)

type OrderType string

const (
	OrderTypePickup   OrderType = "pickup"
	OrderTypeDelivery OrderType = "delivery"
	OrderTypeDineIn   OrderType = "dine_in"
)

// OrderItem is a detached snapshot of a cart line at checkout time. Later
// catalog price changes never alter a historical order.
type OrderItem struct {
	MenuItemID    string         `json:"menu_item_id" bson:"menu_item_id" firestore:"menuItemId"`
	Name          string         `json:"name" bson:"name" firestore:"name"`
	Price         float64        `json:"price" bson:"price" firestore:"price"`
	Quantity      int            `json:"quantity" bson:"quantity" firestore:"quantity"`
	Customization *Customization `json:"customization,omitempty" bson:"customization,omitempty" firestore:"customization"`
	Subtotal      float64        `json:"subtotal" bson:"subtotal" firestore:"subtotal"`
}

// Order is the immutable record produced at checkout. Status transitions after
// submission belong to whoever stores the order, not to the assembler.
type Order struct {
	ID            string        `json:"id" bson:"_id,omitempty" firestore:"-"`
	OrderNumber   string        `json:"order_number" bson:"order_number" firestore:"orderNumber"`
	UserID        string        `json:"user_id,omitempty" bson:"user_id" firestore:"userId"`
	CustomerName  string        `json:"customer_name" bson:"customer_name" firestore:"customerName"`
	CustomerEmail string        `json:"customer_email,omitempty" bson:"customer_email,omitempty" firestore:"customerEmail"`
	CustomerPhone string        `json:"customer_phone,omitempty" bson:"customer_phone,omitempty" firestore:"customerPhone"`
	Items         []OrderItem   `json:"items" bson:"items" firestore:"items"`
	Subtotal      float64       `json:"subtotal" bson:"subtotal" firestore:"subtotal"`
	Tax           float64       `json:"tax" bson:"tax" firestore:"tax"`
	Discount      float64       `json:"discount" bson:"discount" firestore:"discount"`
	DeliveryFee   float64       `json:"delivery_fee" bson:"delivery_fee" firestore:"deliveryFee"`
	Total         float64       `json:"total" bson:"total" firestore:"total"`
	Status        OrderStatus   `json:"status" bson:"status" firestore:"status"`
	PaymentStatus PaymentStatus `json:"payment_status" bson:"payment_status" firestore:"paymentStatus"`
	PaymentMethod PaymentMethod `json:"payment_method" bson:"payment_method" firestore:"paymentMethod"`
	OrderType     OrderType     `json:"order_type" bson:"order_type" firestore:"orderType"`
	Instructions  string        `json:"special_instructions,omitempty" bson:"special_instructions,omitempty" firestore:"specialInstructions"`
	CreatedAt     time.Time     `json:"created_at" bson:"created_at" firestore:"createdAt"`
	UpdatedAt     time.Time     `json:"updated_at" bson:"updated_at" firestore:"updatedAt"`
	CompletedAt   *time.Time    `json:"completed_at,omitempty" bson:"completed_at,omitempty" firestore:"completedAt"`
}
