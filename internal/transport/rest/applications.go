package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/skillsync/skillsync-backend/internal/domain"
	"github.com/skillsync/skillsync-backend/internal/service/application"
	"github.com/skillsync/skillsync-backend/internal/transport/middleware"
)

// applicationService defines the minimal interface needed by ApplicationHandler.
type applicationService interface {
	Apply(ctx context.Context, input application.ApplyInput) (*application.ApplyResult, error)
	Withdraw(ctx context.Context, input application.WithdrawInput) (*domain.Application, error)
	ListMine(ctx context.Context) ([]domain.Application, error)
	ListApplicants(ctx context.Context, input application.ListApplicantsInput) ([]domain.Application, error)
}

// ApplicationHandler serves application REST endpoints.
type ApplicationHandler struct {
	svc applicationService
	log *slog.Logger
}

// NewApplicationHandler creates an ApplicationHandler.
func NewApplicationHandler(svc applicationService, logger *slog.Logger) *ApplicationHandler {
	return &ApplicationHandler{svc: svc, log: logger.With("handler", "applications")}
}

type applicationResponse struct {
	ID          string    `json:"id"`
	CandidateID string    `json:"candidateId"`
	PostingID   string    `json:"postingId"`
	Withdrawn   bool      `json:"withdrawn"`
	AppliedAt   time.Time `json:"appliedAt"`
}

type applyResponse struct {
	Application applicationResponse `json:"application"`
	MatchScore  matchScoreResponse  `json:"matchScore"`
}

type matchScoreResponse struct {
	Score        int       `json:"score"`
	CalculatedAt time.Time `json:"calculatedAt"`
}

// Apply handles POST /applications/{postingId}.
func (h *ApplicationHandler) Apply(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireRole(r.Context(), domain.UserRoleCandidate); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	postingID, err := pathUUID(r, "postingId")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	result, err := h.svc.Apply(r.Context(), application.ApplyInput{PostingID: postingID})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, applyResponse{
		Application: toApplicationResponse(result.Application),
		MatchScore: matchScoreResponse{
			Score:        result.MatchScore.Score,
			CalculatedAt: result.MatchScore.CalculatedAt,
		},
	})
}

// Withdraw handles DELETE /applications/{postingId}.
func (h *ApplicationHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireRole(r.Context(), domain.UserRoleCandidate); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	postingID, err := pathUUID(r, "postingId")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	app, err := h.svc.Withdraw(r.Context(), application.WithdrawInput{PostingID: postingID})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toApplicationResponse(app))
}

// ListMine handles GET /applications/mine.
func (h *ApplicationHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireRole(r.Context(), domain.UserRoleCandidate); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	apps, err := h.svc.ListMine(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toApplicationList(apps))
}

// ListApplicants handles GET /applications/posting/{postingId}.
func (h *ApplicationHandler) ListApplicants(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireRole(r.Context(), domain.UserRoleRecruiter); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	postingID, err := pathUUID(r, "postingId")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	apps, err := h.svc.ListApplicants(r.Context(), application.ListApplicantsInput{PostingID: postingID})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toApplicationList(apps))
}

func toApplicationResponse(a *domain.Application) applicationResponse {
	return applicationResponse{
		ID:          a.ID.String(),
		CandidateID: a.CandidateID.String(),
		PostingID:   a.PostingID.String(),
		Withdrawn:   a.Withdrawn,
		AppliedAt:   a.AppliedAt,
	}
}

func toApplicationList(apps []domain.Application) map[string][]applicationResponse {
	list := make([]applicationResponse, 0, len(apps))
	for i := range apps {
		list = append(list, toApplicationResponse(&apps[i]))
	}
	return map[string][]applicationResponse{"applications": list}
}
