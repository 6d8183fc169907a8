package domain

import (
	"time"

	"github.com/google/uuid"
)

// SkillContribution is one required skill's line in a score breakdown.
type SkillContribution struct {
	SkillName            string `json:"skillName"`
	Weight               int    `json:"weight"`
	CandidateProficiency int    `json:"candidateProficiency"`
	Contribution         int    `json:"contribution"`
	MaxContribution      int    `json:"maxContribution"`
	Matched              bool   `json:"matched"`
}

// SkillGap is a required skill the candidate under-satisfies
// (proficiency strictly below the posting's weight).
type SkillGap struct {
	SkillName          string `json:"skillName"`
	CurrentProficiency int    `json:"currentProficiency"`
	RequiredWeight     int    `json:"requiredWeight"`
}

// MatchScore is the cached score for one (candidate, posting) pair.
//
// A non-stale row's Score equals the scoring function's output for the
// current skill and requirement sets. Staleness is marked on writes to
// either side, never derived lazily; stale rows stay in place until the
// next score check overwrites them.
type MatchScore struct {
	CandidateID    uuid.UUID
	PostingID      uuid.UUID
	Score          int
	Breakdown      []SkillContribution
	Gaps           []SkillGap
	ProjectedScore *float64
	IsStale        bool
	CalculatedAt   time.Time
}

// ScoreResult is what a score check returns: the (possibly fresh) cached
// row plus where it came from.
type ScoreResult struct {
	Source       ScoreSource
	Score        int
	Breakdown    []SkillContribution
	Gaps         []SkillGap
	CalculatedAt time.Time
}
