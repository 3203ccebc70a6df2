package httpapi

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/giridhar-narapusetty/Sunnycafe/internal/catalog"
	"github.com/giridhar-narapusetty/Sunnycafe/internal/domain"
)

type MenuHandler struct {
	catalog catalog.Provider
	log     logrus.FieldLogger
}

func NewMenuHandler(c catalog.Provider, log logrus.FieldLogger) *MenuHandler {
	return &MenuHandler{catalog: c, log: log}
}

func (h *MenuHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		items []domain.MenuItem
		err   error
	)
	if category := r.URL.Query().Get("category"); category != "" {
		items, err = h.catalog.ListByCategory(r.Context(), domain.Category(category))
	} else {
		items, err = h.catalog.ListAvailable(r.Context())
	}
	if err != nil {
		h.log.WithError(err).Error("menu list failed")
		respondError(w, http.StatusServiceUnavailable, "catalog_unavailable", "menu is temporarily unavailable, please retry")
		return
	}
	respondJSON(w, http.StatusOK, items)
}

func (h *MenuHandler) Featured(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalog.ListFeatured(r.Context(), 6)
	if err != nil {
		h.log.WithError(err).Error("featured list failed")
		respondError(w, http.StatusServiceUnavailable, "catalog_unavailable", "menu is temporarily unavailable, please retry")
		return
	}
	respondJSON(w, http.StatusOK, items)
}

func (h *MenuHandler) Search(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("q")
	if term == "" {
		respondError(w, http.StatusBadRequest, "invalid_query", "q parameter is required")
		return
	}

	items, err := h.catalog.Search(r.Context(), term)
	if err != nil {
		h.log.WithError(err).Error("menu search failed")
		respondError(w, http.StatusServiceUnavailable, "catalog_unavailable", "menu is temporarily unavailable, please retry")
		return
	}
	respondJSON(w, http.StatusOK, items)
}

func (h *MenuHandler) Get(w http.ResponseWriter, r *http.Request) {
	item, err := h.catalog.GetByID(r.Context(), chi.URLParam(r, "itemID"))
	if errors.Is(err, catalog.ErrItemNotFound) {
		respondError(w, http.StatusNotFound, "not_found", "menu item not found")
		return
	}
	if err != nil {
		h.log.WithError(err).Error("menu get failed")
		respondError(w, http.StatusServiceUnavailable, "catalog_unavailable", "menu is temporarily unavailable, please retry")
		return
	}
	respondJSON(w, http.StatusOK, item)
}
