package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/giridhar-narapusetty/Sunnycafe/internal/cart"
	"github.com/giridhar-narapusetty/Sunnycafe/internal/cart/store"
	"github.com/giridhar-narapusetty/Sunnycafe/internal/domain"
	"github.com/giridhar-narapusetty/Sunnycafe/internal/order"
	"github.com/giridhar-narapusetty/Sunnycafe/internal/orders"
	"github.com/giridhar-narapusetty/Sunnycafe/internal/payment"
)

// CheckoutConfig is the commerce policy the handler applies at finalize time.
type CheckoutConfig struct {
	TaxRate               float64
	Currency              string
	DeliveryFee           float64
	FreeDeliveryThreshold float64
	MinOrderAmount        float64
}

type CheckoutHandler struct {
	store   store.SnapshotStore
	repo    orders.Repository
	charger payment.Charger
	cfg     CheckoutConfig
	log     logrus.FieldLogger
}

func NewCheckoutHandler(s store.SnapshotStore, repo orders.Repository, charger payment.Charger, cfg CheckoutConfig, log logrus.FieldLogger) *CheckoutHandler {
	return &CheckoutHandler{store: s, repo: repo, charger: charger, cfg: cfg, log: log}
}

type checkoutRequest struct {
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email,omitempty"`
	CustomerPhone string `json:"customer_phone,omitempty"`
	OrderType     string `json:"order_type,omitempty"`
	PaymentMethod string `json:"payment_method,omitempty"`
	LoyaltyPoints int    `json:"loyalty_points,omitempty"`
	Instructions  string `json:"special_instructions,omitempty"`
}

type checkoutResponse struct {
	Order         *domain.Order   `json:"order"`
	OrderID       string          `json:"order_id"`
	DisplayTotal  string          `json:"display_total"`
	PaymentIntent *payment.Intent `json:"payment_intent,omitempty"`
}

// Checkout finalizes the session's cart into an order, submits it, and (for
// card payments) opens a payment intent. The cart is cleared only after the
// order is safely stored; any earlier failure leaves it intact.
func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	engine := cart.NewEngine(ctx, h.store, sessionID(ctx), h.log)
	lines := engine.Lines()
	subtotal := engine.Total()

	orderType := domain.OrderType(req.OrderType)
	if orderType == "" {
		orderType = domain.OrderTypePickup
	}

	if orderType == domain.OrderTypeDelivery && !order.MeetsMinimum(subtotal, h.cfg.MinOrderAmount) {
		respondError(w, http.StatusUnprocessableEntity, "below_minimum",
			fmt.Sprintf("delivery orders require a %s minimum", order.FormatAmount(h.cfg.MinOrderAmount)))
		return
	}

	tier := domain.TierForPoints(req.LoyaltyPoints)
	discount := subtotal * tier.DiscountRate()

	o, err := order.Finalize(lines, req.CustomerName, order.Options{
		TaxRate:       h.cfg.TaxRate,
		DeliveryFee:   order.DeliveryFee(subtotal, orderType, h.cfg.DeliveryFee, h.cfg.FreeDeliveryThreshold),
		Discount:      discount,
		UserID:        userID(ctx),
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		OrderType:     orderType,
		PaymentMethod: domain.PaymentMethod(req.PaymentMethod),
		Instructions:  req.Instructions,
	})
	var vErr *order.ValidationError
	if errors.As(err, &vErr) {
		respondError(w, http.StatusUnprocessableEntity, "validation_failed", vErr.Error())
		return
	}
	if err != nil {
		h.log.WithError(err).Error("order finalize failed")
		respondError(w, http.StatusInternalServerError, "internal_error", "could not finalize order")
		return
	}

	var intent *payment.Intent
	if o.PaymentMethod == domain.PaymentMethodCard && h.charger != nil {
		intent, err = h.charger.CreateIntent(ctx, order.Round2(o.Total), h.cfg.Currency)
		if err != nil {
			h.log.WithError(err).Error("payment intent creation failed")
			respondError(w, http.StatusBadGateway, "payment_unavailable", "payment could not be started, please retry")
			return
		}
	}

	id, err := h.repo.Submit(ctx, o)
	if err != nil {
		h.log.WithError(err).Error("order submission failed")
		respondError(w, http.StatusBadGateway, "order_unavailable", "order could not be stored, please retry")
		return
	}

	if err := engine.Clear(ctx); err != nil {
		// The order went through; a stale cart snapshot is the lesser problem.
		h.log.WithError(err).Warn("could not clear cart after checkout")
	}

	h.log.WithFields(logrus.Fields{
		"order_number": o.OrderNumber,
		"total":        order.Round2(o.Total),
	}).Info("order submitted")

	respondJSON(w, http.StatusCreated, checkoutResponse{
		Order:         o,
		OrderID:       id,
		DisplayTotal:  order.FormatAmount(o.Total),
		PaymentIntent: intent,
	})
}
