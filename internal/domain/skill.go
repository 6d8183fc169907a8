package domain

import (
	"github.com/google/uuid"
)

// Proficiency and weight share the same 1–5 scale.
const (
	SkillLevelMin = 1
	SkillLevelMax = 5
)

// CandidateSkill is a candidate's self-rated skill. The whole set is
// replaced on every edit; SkillName is stored normalized.
type CandidateSkill struct {
	CandidateID uuid.UUID
	SkillName   string
	Proficiency int
}

// PostingRequirement is a weighted skill a posting asks for. The whole set
// is replaced on every edit; SkillName is stored normalized.
type PostingRequirement struct {
	PostingID uuid.UUID
	SkillName string
	Weight    int
}

// ValidSkillLevel reports whether a proficiency or weight is on the 1–5 scale.
func ValidSkillLevel(level int) bool {
	return level >= SkillLevelMin && level <= SkillLevelMax
}
