// Package scoring provides match-score computation: a remote HTTP client
// for the scoring backend and a pure local implementation of the same
// contract.
package scoring

import (
	"context"

	"github.com/skillsync/skillsync-backend/internal/domain"
)

// Result is the scoring function's output for one candidate/posting pair.
type Result struct {
	Score          int                        `json:"score"`
	Breakdown      []domain.SkillContribution `json:"breakdown"`
	Gaps           []domain.SkillGap          `json:"gaps"`
	ProjectedScore *float64                   `json:"projectedScore,omitempty"`
}

// Scorer computes a match score from a candidate's skills and a posting's
// requirements. Implementations must be deterministic: identical inputs
// yield identical output, or the score cache's staleness contract breaks.
type Scorer interface {
	Score(ctx context.Context, skills []domain.CandidateSkill, reqs []domain.PostingRequirement) (*Result, error)
}
