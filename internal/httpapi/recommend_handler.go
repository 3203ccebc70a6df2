package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/giridhar-narapusetty/Sunnycafe/internal/catalog"
	"github.com/giridhar-narapusetty/Sunnycafe/internal/domain"
	"github.com/giridhar-narapusetty/Sunnycafe/internal/recommend"
)

type RecommendHandler struct {
	rec     *recommend.Recommender
	catalog catalog.Provider
	log     logrus.FieldLogger
}

func NewRecommendHandler(rec *recommend.Recommender, c catalog.Provider, log logrus.FieldLogger) *RecommendHandler {
	return &RecommendHandler{rec: rec, catalog: c, log: log}
}

type recommendRequest struct {
	Mood string `json:"mood"`
}

type recommendResponse struct {
	Suggestion string `json:"suggestion"`
}

// Recommend always answers 200: the recommendation collaborator is best
// effort and degrades to a fallback suggestion on any failure.
func (h *RecommendHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	var req recommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Mood == "" {
		respondError(w, http.StatusBadRequest, "invalid_mood", "mood is required")
		return
	}

	menu, err := h.catalog.ListAvailable(r.Context())
	if err != nil {
		h.log.WithError(err).Warn("menu unavailable for recommendation")
		menu = []domain.MenuItem{}
	}

	suggestion := h.rec.ForMood(r.Context(), req.Mood, menu, recommend.DefaultFallback)
	respondJSON(w, http.StatusOK, recommendResponse{Suggestion: suggestion})
}
