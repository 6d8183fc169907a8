package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/skillsync/skillsync-backend/internal/domain"
	"github.com/skillsync/skillsync-backend/internal/service/score"
	"github.com/skillsync/skillsync-backend/internal/transport/middleware"
)

// scoreService defines the minimal interface needed by ScoreHandler.
type scoreService interface {
	CheckScore(ctx context.Context, input score.CheckScoreInput) (*domain.ScoreResult, error)
}

// ScoreHandler serves score-check REST endpoints.
type ScoreHandler struct {
	svc scoreService
	log *slog.Logger
}

// NewScoreHandler creates a ScoreHandler.
func NewScoreHandler(svc scoreService, logger *slog.Logger) *ScoreHandler {
	return &ScoreHandler{svc: svc, log: logger.With("handler", "scores")}
}

type scoreResponse struct {
	Source       string                     `json:"source"`
	Score        int                        `json:"score"`
	Breakdown    []domain.SkillContribution `json:"breakdown"`
	Gaps         []domain.SkillGap          `json:"gaps"`
	CalculatedAt time.Time                  `json:"calculatedAt"`
}

// Check handles POST /scores/check/{postingId}.
func (h *ScoreHandler) Check(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireRole(r.Context(), domain.UserRoleCandidate); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	postingID, err := pathUUID(r, "postingId")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	result, err := h.svc.CheckScore(r.Context(), score.CheckScoreInput{PostingID: postingID})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, scoreResponse{
		Source:       result.Source.String(),
		Score:        result.Score,
		Breakdown:    result.Breakdown,
		Gaps:         result.Gaps,
		CalculatedAt: result.CalculatedAt,
	})
}
