package httpapi

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/giridhar-narapusetty/Sunnycafe/internal/orders"
)

type OrdersHandler struct {
	repo orders.Repository
	log  logrus.FieldLogger
}

func NewOrdersHandler(repo orders.Repository, log logrus.FieldLogger) *OrdersHandler {
	return &OrdersHandler{repo: repo, log: log}
}

// ListMine returns the signed-in customer's recent orders, newest first.
func (h *OrdersHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	uid := userID(r.Context())
	if uid == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "sign in to see order history")
		return
	}

	list, err := h.repo.ListByUser(r.Context(), uid, 20)
	if err != nil {
		h.log.WithError(err).Error("order history failed")
		respondError(w, http.StatusServiceUnavailable, "orders_unavailable", "order history is temporarily unavailable, please retry")
		return
	}
	respondJSON(w, http.StatusOK, list)
}

func (h *OrdersHandler) Get(w http.ResponseWriter, r *http.Request) {
	o, err := h.repo.GetByID(r.Context(), chi.URLParam(r, "orderID"))
	if errors.Is(err, orders.ErrOrderNotFound) {
		respondError(w, http.StatusNotFound, "not_found", "order not found")
		return
	}
	if err != nil {
		h.log.WithError(err).Error("order lookup failed")
		respondError(w, http.StatusServiceUnavailable, "orders_unavailable", "order lookup is temporarily unavailable, please retry")
		return
	}

	// Anonymous orders are addressable only by their storage id; account
	// orders stay private to their owner.
	if o.UserID != "" && o.UserID != userID(r.Context()) {
		respondError(w, http.StatusNotFound, "not_found", "order not found")
		return
	}
	respondJSON(w, http.StatusOK, o)
}
