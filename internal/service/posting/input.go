package posting

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/skillsync/skillsync-backend/internal/domain"
)

const maxTitleLen = 200

// RequirementInput is one required skill in a posting.
type RequirementInput struct {
	SkillName string
	Weight    int
}

// CreateInput holds the parameters for creating a posting.
type CreateInput struct {
	Title        string
	Description  *string
	Type         domain.PostingType
	Deadline     time.Time
	Requirements []RequirementInput
}

// Validate checks all fields and collects all errors. now is the clock
// reading the deadline is compared against.
func (i CreateInput) Validate(now time.Time) error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(i.Title) > maxTitleLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: fmt.Sprintf("max %d characters", maxTitleLen)})
	}
	if !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "must be INTERNSHIP or PROJECT"})
	}
	if !i.Deadline.After(now) {
		errs = append(errs, domain.FieldError{Field: "deadline", Message: "must be in the future"})
	}

	errs = append(errs, validateRequirements(i.Requirements)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ReplaceRequirementsInput holds the parameters for replacing a posting's
// requirement set.
type ReplaceRequirementsInput struct {
	PostingID    uuid.UUID
	Requirements []RequirementInput
}

// Validate checks all fields and collects all errors.
func (i ReplaceRequirementsInput) Validate() error {
	var errs []domain.FieldError

	if i.PostingID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "posting_id", Message: "required"})
	}

	errs = append(errs, validateRequirements(i.Requirements)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateRequirements(reqs []RequirementInput) []domain.FieldError {
	var errs []domain.FieldError

	seen := make(map[string]bool, len(reqs))
	for idx, req := range reqs {
		field := fmt.Sprintf("requirements[%d]", idx)

		name := domain.NormalizeSkillName(req.SkillName)
		if name == "" {
			errs = append(errs, domain.FieldError{Field: field + ".skill_name", Message: "required"})
		} else if seen[name] {
			errs = append(errs, domain.FieldError{Field: field + ".skill_name", Message: "duplicate skill"})
		}
		seen[name] = true

		if !domain.ValidSkillLevel(req.Weight) {
			errs = append(errs, domain.FieldError{
				Field:   field + ".weight",
				Message: fmt.Sprintf("must be between %d and %d", domain.SkillLevelMin, domain.SkillLevelMax),
			})
		}
	}

	return errs
}

func normalizeRequirements(postingID uuid.UUID, reqs []RequirementInput) []domain.PostingRequirement {
	result := make([]domain.PostingRequirement, 0, len(reqs))
	for _, req := range reqs {
		result = append(result, domain.PostingRequirement{
			PostingID: postingID,
			SkillName: domain.NormalizeSkillName(req.SkillName),
			Weight:    req.Weight,
		})
	}
	return result
}
