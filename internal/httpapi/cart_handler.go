package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/giridhar-narapusetty/Sunnycafe/internal/cart"
	"github.com/giridhar-narapusetty/Sunnycafe/internal/cart/store"
	"github.com/giridhar-narapusetty/Sunnycafe/internal/catalog"
	"github.com/giridhar-narapusetty/Sunnycafe/internal/domain"
)

type CartHandler struct {
	store   store.SnapshotStore
	catalog catalog.Provider
	log     logrus.FieldLogger
}

func NewCartHandler(s store.SnapshotStore, c catalog.Provider, log logrus.FieldLogger) *CartHandler {
	return &CartHandler{store: s, catalog: c, log: log}
}

type addItemRequest struct {
	ItemID        string                `json:"item_id"`
	Customization *domain.Customization `json:"customization,omitempty"`
}

type updateQuantityRequest struct {
	Delta int `json:"delta"`
}

type cartLineView struct {
	Key           string                `json:"key"`
	ItemID        string                `json:"item_id"`
	Name          string                `json:"name"`
	UnitPrice     float64               `json:"unit_price"`
	Quantity      int                   `json:"quantity"`
	Customization *domain.Customization `json:"customization,omitempty"`
	LineTotal     float64               `json:"line_total"`
}

type cartView struct {
	Lines     []cartLineView `json:"lines"`
	Total     float64        `json:"total"`
	ItemCount int            `json:"item_count"`
}

func viewOf(e *cart.Engine) cartView {
	lines := e.Lines()
	v := cartView{
		Lines:     make([]cartLineView, len(lines)),
		Total:     e.Total(),
		ItemCount: e.ItemCount(),
	}
	for i, l := range lines {
		v.Lines[i] = cartLineView{
			Key:           l.Key(),
			ItemID:        l.Item.ID,
			Name:          l.Item.Name,
			UnitPrice:     l.Item.Price,
			Quantity:      l.Quantity,
			Customization: l.Customization,
			LineTotal:     l.LineTotal,
		}
	}
	return v
}

func (h *CartHandler) engine(r *http.Request) *cart.Engine {
	return cart.NewEngine(r.Context(), h.store, sessionID(r.Context()), h.log)
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, viewOf(h.engine(r)))
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.ItemID == "" {
		respondError(w, http.StatusBadRequest, "invalid_item_id", "item_id is required")
		return
	}

	item, err := h.catalog.GetByID(r.Context(), req.ItemID)
	if errors.Is(err, catalog.ErrItemNotFound) {
		respondError(w, http.StatusNotFound, "not_found", "menu item not found")
		return
	}
	if err != nil {
		h.log.WithError(err).Error("catalog lookup failed")
		respondError(w, http.StatusServiceUnavailable, "catalog_unavailable", "menu is temporarily unavailable, please retry")
		return
	}
	if !item.Available {
		respondError(w, http.StatusConflict, "item_unavailable", "menu item is currently unavailable")
		return
	}

	engine := h.engine(r)
	if err := engine.AddItem(r.Context(), *item, req.Customization); err != nil {
		respondError(w, http.StatusServiceUnavailable, "cart_unavailable", "could not save cart, please retry")
		return
	}
	respondJSON(w, http.StatusCreated, viewOf(engine))
}

func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "lineKey")

	var req updateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Delta == 0 {
		respondError(w, http.StatusBadRequest, "invalid_delta", "delta must be non-zero")
		return
	}

	engine := h.engine(r)
	if err := engine.UpdateQuantity(r.Context(), key, req.Delta); err != nil {
		respondError(w, http.StatusServiceUnavailable, "cart_unavailable", "could not save cart, please retry")
		return
	}
	respondJSON(w, http.StatusOK, viewOf(engine))
}

func (h *CartHandler) RemoveLine(w http.ResponseWriter, r *http.Request) {
	engine := h.engine(r)
	if err := engine.RemoveLine(r.Context(), chi.URLParam(r, "lineKey")); err != nil {
		respondError(w, http.StatusServiceUnavailable, "cart_unavailable", "could not save cart, please retry")
		return
	}
	respondJSON(w, http.StatusOK, viewOf(engine))
}

func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	engine := h.engine(r)
	if err := engine.Clear(r.Context()); err != nil {
		respondError(w, http.StatusServiceUnavailable, "cart_unavailable", "could not clear cart, please retry")
		return
	}
	respondJSON(w, http.StatusOK, viewOf(engine))
}
