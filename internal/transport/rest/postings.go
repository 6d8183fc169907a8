package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/skillsync/skillsync-backend/internal/domain"
	"github.com/skillsync/skillsync-backend/internal/service/posting"
	"github.com/skillsync/skillsync-backend/internal/transport/middleware"
)

// postingService defines the minimal interface needed by PostingHandler.
type postingService interface {
	Create(ctx context.Context, input posting.CreateInput) (*domain.Posting, error)
	Get(ctx context.Context, postingID uuid.UUID) (*posting.Details, error)
	ReplaceRequirements(ctx context.Context, input posting.ReplaceRequirementsInput) ([]domain.PostingRequirement, error)
}

// PostingHandler serves posting REST endpoints.
type PostingHandler struct {
	svc postingService
	log *slog.Logger
}

// NewPostingHandler creates a PostingHandler.
func NewPostingHandler(svc postingService, logger *slog.Logger) *PostingHandler {
	return &PostingHandler{svc: svc, log: logger.With("handler", "postings")}
}

type requirementPayload struct {
	SkillName string `json:"skillName"`
	Weight    int    `json:"weight"`
}

type createPostingRequest struct {
	Title        string               `json:"title"`
	Description  *string              `json:"description,omitempty"`
	Type         string               `json:"type"`
	Deadline     time.Time            `json:"deadline"`
	Requirements []requirementPayload `json:"requirements"`
}

type replaceRequirementsRequest struct {
	Requirements []requirementPayload `json:"requirements"`
}

type postingResponse struct {
	ID           string               `json:"id"`
	RecruiterID  string               `json:"recruiterId"`
	Title        string               `json:"title"`
	Description  *string              `json:"description,omitempty"`
	Type         string               `json:"type"`
	Deadline     time.Time            `json:"deadline"`
	Requirements []requirementPayload `json:"requirements,omitempty"`
	CreatedAt    time.Time            `json:"createdAt"`
}

// Create handles POST /postings.
func (h *PostingHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireRole(r.Context(), domain.UserRoleRecruiter); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	var req createPostingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.Create(r.Context(), posting.CreateInput{
		Title:        req.Title,
		Description:  req.Description,
		Type:         domain.PostingType(req.Type),
		Deadline:     req.Deadline,
		Requirements: toRequirementInputs(req.Requirements),
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toPostingResponse(created, nil))
}

// Get handles GET /postings/{postingId}.
func (h *PostingHandler) Get(w http.ResponseWriter, r *http.Request) {
	postingID, err := pathUUID(r, "postingId")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	details, err := h.svc.Get(r.Context(), postingID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toPostingResponse(details.Posting, details.Requirements))
}

// ReplaceRequirements handles PUT /postings/{postingId}/requirements.
func (h *PostingHandler) ReplaceRequirements(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireRole(r.Context(), domain.UserRoleRecruiter); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	postingID, err := pathUUID(r, "postingId")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	var req replaceRequirementsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	reqs, err := h.svc.ReplaceRequirements(r.Context(), posting.ReplaceRequirementsInput{
		PostingID:    postingID,
		Requirements: toRequirementInputs(req.Requirements),
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string][]requirementPayload{
		"requirements": toRequirementPayloads(reqs),
	})
}

func toRequirementInputs(reqs []requirementPayload) []posting.RequirementInput {
	result := make([]posting.RequirementInput, 0, len(reqs))
	for _, req := range reqs {
		result = append(result, posting.RequirementInput{
			SkillName: req.SkillName,
			Weight:    req.Weight,
		})
	}
	return result
}

func toRequirementPayloads(reqs []domain.PostingRequirement) []requirementPayload {
	result := make([]requirementPayload, 0, len(reqs))
	for _, req := range reqs {
		result = append(result, requirementPayload{
			SkillName: req.SkillName,
			Weight:    req.Weight,
		})
	}
	return result
}

func toPostingResponse(p *domain.Posting, reqs []domain.PostingRequirement) postingResponse {
	resp := postingResponse{
		ID:          p.ID.String(),
		RecruiterID: p.RecruiterID.String(),
		Title:       p.Title,
		Description: p.Description,
		Type:        p.Type.String(),
		Deadline:    p.Deadline,
		CreatedAt:   p.CreatedAt,
	}
	if reqs != nil {
		resp.Requirements = toRequirementPayloads(reqs)
	}
	return resp
}
