package scoring

import (
	"context"
	"math"
	"strings"

	"github.com/skillsync/skillsync-backend/internal/domain"
)

// Local is a pure in-process scorer. It is the reference implementation of
// the scoring contract and the default when no remote backend is configured.
type Local struct{}

// NewLocal creates a new in-process scorer.
func NewLocal() *Local { return &Local{} }

// Score computes the weighted-overlap match score.
//
// For each required skill with weight w, p is the candidate's proficiency
// for that skill name (case-insensitive match, 0 if absent). Then
// contribution = p*w, maxContribution = 5*w, and the total score is
// round(100 * Σcontribution / ΣmaxContribution) clamped to [0, 100].
// A skill is a gap when p < w.
func (l *Local) Score(_ context.Context, skills []domain.CandidateSkill, reqs []domain.PostingRequirement) (*Result, error) {
	byName := make(map[string]int, len(skills))
	for _, s := range skills {
		byName[strings.ToLower(s.SkillName)] = s.Proficiency
	}

	result := &Result{
		Breakdown: make([]domain.SkillContribution, 0, len(reqs)),
		Gaps:      []domain.SkillGap{},
	}

	var sum, maxSum, projSum int
	for _, req := range reqs {
		p := byName[strings.ToLower(req.SkillName)]

		contribution := p * req.Weight
		maxContribution := domain.SkillLevelMax * req.Weight
		sum += contribution
		maxSum += maxContribution

		result.Breakdown = append(result.Breakdown, domain.SkillContribution{
			SkillName:            req.SkillName,
			Weight:               req.Weight,
			CandidateProficiency: p,
			Contribution:         contribution,
			MaxContribution:      maxContribution,
			Matched:              p > 0,
		})

		if p < req.Weight {
			result.Gaps = append(result.Gaps, domain.SkillGap{
				SkillName:          req.SkillName,
				CurrentProficiency: p,
				RequiredWeight:     req.Weight,
			})
			projSum += req.Weight * req.Weight
		} else {
			projSum += contribution
		}
	}

	if maxSum == 0 {
		return result, nil
	}

	result.Score = roundRatio(sum, maxSum)

	// Projected score assumes every gap is raised exactly to its required
	// weight. Only reported when there is a gap to close.
	if len(result.Gaps) > 0 {
		projected := float64(roundRatio(projSum, maxSum))
		result.ProjectedScore = &projected
	}

	return result, nil
}

// roundRatio returns 100*num/den rounded to the nearest integer and
// clamped to [0, 100].
func roundRatio(num, den int) int {
	v := int(math.Round(100 * float64(num) / float64(den)))
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
