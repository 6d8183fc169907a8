package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/skillsync/skillsync-backend/internal/service/ranking"
)

// rankingService defines the minimal interface needed by RankingHandler.
type rankingService interface {
	Rank(ctx context.Context, input ranking.RankInput) ([]ranking.Entry, error)
}

// RankingHandler serves ranking REST endpoints.
type RankingHandler struct {
	svc rankingService
	log *slog.Logger
}

// NewRankingHandler creates a RankingHandler.
func NewRankingHandler(svc rankingService, logger *slog.Logger) *RankingHandler {
	return &RankingHandler{svc: svc, log: logger.With("handler", "rankings")}
}

// Get handles GET /rankings/{postingId}.
func (h *RankingHandler) Get(w http.ResponseWriter, r *http.Request) {
	postingID, err := pathUUID(r, "postingId")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	entries, err := h.svc.Rank(r.Context(), ranking.RankInput{PostingID: postingID})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string][]ranking.Entry{"rankings": entries})
}
