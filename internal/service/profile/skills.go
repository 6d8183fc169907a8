package profile

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/skillsync/skillsync-backend/internal/domain"
	"github.com/skillsync/skillsync-backend/pkg/ctxutil"
)

// GetSkills returns the calling candidate's skills ordered by name.
func (s *Service) GetSkills(ctx context.Context) ([]domain.CandidateSkill, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	candidate, err := s.candidates.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get candidate: %w", err)
	}

	skills, err := s.candidates.ListSkills(ctx, candidate.ID)
	if err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}

	return skills, nil
}

// SkillInput is one skill in a skill-set replacement.
type SkillInput struct {
	SkillName   string
	Proficiency int
}

// ReplaceSkillsInput holds the parameters for replacing the skill set.
type ReplaceSkillsInput struct {
	Skills []SkillInput
}

// Validate checks all fields and collects all errors. Names are checked
// for duplicates after normalization, since that is how they are stored.
func (i ReplaceSkillsInput) Validate() error {
	var errs []domain.FieldError

	seen := make(map[string]bool, len(i.Skills))
	for idx, skill := range i.Skills {
		field := fmt.Sprintf("skills[%d]", idx)

		name := domain.NormalizeSkillName(skill.SkillName)
		if name == "" {
			errs = append(errs, domain.FieldError{Field: field + ".skill_name", Message: "required"})
		} else if seen[name] {
			errs = append(errs, domain.FieldError{Field: field + ".skill_name", Message: "duplicate skill"})
		}
		seen[name] = true

		if !domain.ValidSkillLevel(skill.Proficiency) {
			errs = append(errs, domain.FieldError{
				Field:   field + ".proficiency",
				Message: fmt.Sprintf("must be between %d and %d", domain.SkillLevelMin, domain.SkillLevelMax),
			})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ReplaceSkills swaps the calling candidate's entire skill set and flags
// every cached score for the candidate stale, atomically.
func (s *Service) ReplaceSkills(ctx context.Context, input ReplaceSkillsInput) ([]domain.CandidateSkill, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	candidate, err := s.candidates.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get candidate: %w", err)
	}

	skills := make([]domain.CandidateSkill, 0, len(input.Skills))
	for _, in := range input.Skills {
		skills = append(skills, domain.CandidateSkill{
			CandidateID: candidate.ID,
			SkillName:   domain.NormalizeSkillName(in.SkillName),
			Proficiency: in.Proficiency,
		})
	}

	var staled int
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.candidates.ReplaceSkills(ctx, candidate.ID, skills); err != nil {
			return fmt.Errorf("replace skills: %w", err)
		}
		staled, err = s.scores.MarkStaleByCandidate(ctx, candidate.ID)
		if err != nil {
			return fmt.Errorf("mark scores stale: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "skills replaced",
		slog.String("candidate_id", candidate.ID.String()),
		slog.Int("skills", len(skills)),
		slog.Int("scores_staled", staled),
	)

	updated, err := s.candidates.ListSkills(ctx, candidate.ID)
	if err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}

	return updated, nil
}
