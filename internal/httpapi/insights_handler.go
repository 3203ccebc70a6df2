package httpapi

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/giridhar-narapusetty/Sunnycafe/internal/catalog"
	"github.com/giridhar-narapusetty/Sunnycafe/internal/insights"
	"github.com/giridhar-narapusetty/Sunnycafe/internal/orders"
)

// InsightsHandler serves the AI business reports over the last 30 days of
// orders. Stats come straight from the order store; narrative text is best
// effort.
type InsightsHandler struct {
	agent   *insights.Agent
	repo    orders.Repository
	catalog catalog.Provider
	log     logrus.FieldLogger
}

func NewInsightsHandler(agent *insights.Agent, repo orders.Repository, c catalog.Provider, log logrus.FieldLogger) *InsightsHandler {
	return &InsightsHandler{agent: agent, repo: repo, catalog: c, log: log}
}

type insightsResponse struct {
	Stats         orders.Stats `json:"stats"`
	Combos        string       `json:"combos"`
	LowPerformers string       `json:"low_performers"`
}

func (h *InsightsHandler) Report(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stats, err := orders.StatsBetween(ctx, h.repo, time.Now().AddDate(0, 0, -30), time.Now())
	if err != nil {
		h.log.WithError(err).Error("order stats failed")
		respondError(w, http.StatusServiceUnavailable, "orders_unavailable", "order history is temporarily unavailable, please retry")
		return
	}

	menu, err := h.catalog.ListAvailable(ctx)
	if err != nil {
		h.log.WithError(err).Warn("menu unavailable for insights")
	}

	respondJSON(w, http.StatusOK, insightsResponse{
		Stats:         stats,
		Combos:        h.agent.SuggestCombos(ctx, stats),
		LowPerformers: h.agent.AnalyzeLowPerformers(ctx, menu, stats),
	})
}
