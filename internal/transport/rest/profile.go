package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/skillsync/skillsync-backend/internal/domain"
	"github.com/skillsync/skillsync-backend/internal/service/profile"
	"github.com/skillsync/skillsync-backend/internal/transport/middleware"
)

// profileService defines the minimal interface needed by ProfileHandler.
type profileService interface {
	GetSkills(ctx context.Context) ([]domain.CandidateSkill, error)
	ReplaceSkills(ctx context.Context, input profile.ReplaceSkillsInput) ([]domain.CandidateSkill, error)
}

// ProfileHandler serves candidate profile REST endpoints.
type ProfileHandler struct {
	svc profileService
	log *slog.Logger
}

// NewProfileHandler creates a ProfileHandler.
func NewProfileHandler(svc profileService, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{svc: svc, log: logger.With("handler", "profile")}
}

type skillPayload struct {
	SkillName   string `json:"skillName"`
	Proficiency int    `json:"proficiency"`
}

type replaceSkillsRequest struct {
	Skills []skillPayload `json:"skills"`
}

type skillsResponse struct {
	Skills []skillPayload `json:"skills"`
}

// GetSkills handles GET /profile/skills.
func (h *ProfileHandler) GetSkills(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireRole(r.Context(), domain.UserRoleCandidate); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	skills, err := h.svc.GetSkills(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toSkillsResponse(skills))
}

// ReplaceSkills handles PUT /profile/skills.
func (h *ProfileHandler) ReplaceSkills(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireRole(r.Context(), domain.UserRoleCandidate); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	var req replaceSkillsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := profile.ReplaceSkillsInput{Skills: make([]profile.SkillInput, 0, len(req.Skills))}
	for _, s := range req.Skills {
		input.Skills = append(input.Skills, profile.SkillInput{
			SkillName:   s.SkillName,
			Proficiency: s.Proficiency,
		})
	}

	skills, err := h.svc.ReplaceSkills(r.Context(), input)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toSkillsResponse(skills))
}

func toSkillsResponse(skills []domain.CandidateSkill) skillsResponse {
	resp := skillsResponse{Skills: make([]skillPayload, 0, len(skills))}
	for _, s := range skills {
		resp.Skills = append(resp.Skills, skillPayload{
			SkillName:   s.SkillName,
			Proficiency: s.Proficiency,
		})
	}
	return resp
}
