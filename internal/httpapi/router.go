// Package httpapi exposes the storefront over a JSON API.
package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"github.com/giridhar-narapusetty/Sunnycafe/internal/auth"
	"github.com/giridhar-narapusetty/Sunnycafe/internal/cart/store"
	"github.com/giridhar-narapusetty/Sunnycafe/internal/catalog"
	"github.com/giridhar-narapusetty/Sunnycafe/internal/insights"
	"github.com/giridhar-narapusetty/Sunnycafe/internal/orders"
	"github.com/giridhar-narapusetty/Sunnycafe/internal/payment"
	"github.com/giridhar-narapusetty/Sunnycafe/internal/recommend"
)

// Deps is everything the router needs. Verifier, Charger, Recommender and
// Agent may be nil; the matching surfaces degrade or disable themselves.
type Deps struct {
	Store       store.SnapshotStore
	Catalog     catalog.Provider
	Orders      orders.Repository
	Charger     payment.Charger
	Verifier    auth.Verifier
	Recommender *recommend.Recommender
	Agent       *insights.Agent

	Checkout       CheckoutConfig
	RequestTimeout time.Duration
	BusinessOpen   func(time.Time) bool
	Log            logrus.FieldLogger
}

func NewRouter(d Deps) http.Handler {
	cartHandler := NewCartHandler(d.Store, d.Catalog, d.Log)
	menuHandler := NewMenuHandler(d.Catalog, d.Log)
	checkoutHandler := NewCheckoutHandler(d.Store, d.Orders, d.Charger, d.Checkout, d.Log)
	ordersHandler := NewOrdersHandler(d.Orders, d.Log)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Timeout(d.RequestTimeout))
	r.Use(middleware.Compress(5))
	r.Use(SessionMiddleware)
	r.Use(AuthMiddleware(d.Verifier, d.Log))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/status", func(w http.ResponseWriter, req *http.Request) {
			open := true
			if d.BusinessOpen != nil {
				open = d.BusinessOpen(time.Now())
			}
			respondJSON(w, http.StatusOK, map[string]interface{}{"open": open})
		})

		r.Route("/menu", func(r chi.Router) {
			r.Get("/", menuHandler.List)
			r.Get("/featured", menuHandler.Featured)
			r.Get("/search", menuHandler.Search)
			r.Get("/{itemID}", menuHandler.Get)
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cartHandler.GetCart)
			r.Delete("/", cartHandler.ClearCart)
			r.Post("/items", cartHandler.AddItem)
			r.Put("/items/{lineKey}", cartHandler.UpdateQuantity)
			r.Delete("/items/{lineKey}", cartHandler.RemoveLine)
		})

		r.Post("/checkout", checkoutHandler.Checkout)

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", ordersHandler.ListMine)
			r.Get("/{orderID}", ordersHandler.Get)
		})

		if d.Recommender != nil {
			recommendHandler := NewRecommendHandler(d.Recommender, d.Catalog, d.Log)
			r.Post("/recommend", recommendHandler.Recommend)
		}

		if d.Agent != nil {
			insightsHandler := NewInsightsHandler(d.Agent, d.Orders, d.Catalog, d.Log)
			r.Get("/insights", insightsHandler.Report)
		}
	})

	return r
}
