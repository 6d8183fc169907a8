package scoring

import (
	"context"
	"testing"

	"github.com/skillsync/skillsync-backend/internal/domain"
)

func TestLocal_Score_WeightedOverlap(t *testing.T) {
	t.Parallel()

	skills := []domain.CandidateSkill{
		{SkillName: "python", Proficiency: 4},
		{SkillName: "sql", Proficiency: 3},
	}
	reqs := []domain.PostingRequirement{
		{SkillName: "python", Weight: 5},
		{SkillName: "sql", Weight: 3},
		{SkillName: "node.js", Weight: 4},
	}

	result, err := NewLocal().Score(context.Background(), skills, reqs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// (4*5 + 3*3 + 0*4) / (5*5 + 5*3 + 5*4) = 29/60 -> 48
	if result.Score != 48 {
		t.Errorf("Score = %d, want 48", result.Score)
	}

	if len(result.Breakdown) != 3 {
		t.Fatalf("len(Breakdown) = %d, want 3", len(result.Breakdown))
	}
	python := result.Breakdown[0]
	if python.Contribution != 20 || python.MaxContribution != 25 || !python.Matched {
		t.Errorf("python breakdown = %+v", python)
	}
	nodejs := result.Breakdown[2]
	if nodejs.Contribution != 0 || nodejs.Matched {
		t.Errorf("node.js breakdown = %+v", nodejs)
	}

	// python 4 < 5 and node.js 0 < 4 are gaps, sql 3 >= 3 is not.
	if len(result.Gaps) != 2 {
		t.Fatalf("len(Gaps) = %d, want 2", len(result.Gaps))
	}
	if result.Gaps[0].SkillName != "python" || result.Gaps[0].CurrentProficiency != 4 {
		t.Errorf("Gaps[0] = %+v", result.Gaps[0])
	}
	if result.Gaps[1].SkillName != "node.js" || result.Gaps[1].CurrentProficiency != 0 {
		t.Errorf("Gaps[1] = %+v", result.Gaps[1])
	}

	if result.ProjectedScore == nil {
		t.Fatal("expected projected score when gaps exist")
	}
	// Raising python to 5 and node.js to 4 gives (25+9+16)/60 -> 83.
	if *result.ProjectedScore != 83 {
		t.Errorf("ProjectedScore = %v, want 83", *result.ProjectedScore)
	}
}

func TestLocal_Score_CaseInsensitiveSkillMatch(t *testing.T) {
	t.Parallel()

	skills := []domain.CandidateSkill{{SkillName: "Python", Proficiency: 5}}
	reqs := []domain.PostingRequirement{{SkillName: "python", Weight: 4}}

	result, err := NewLocal().Score(context.Background(), skills, reqs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Score != 100 {
		t.Errorf("Score = %d, want 100", result.Score)
	}
	if len(result.Gaps) != 0 {
		t.Errorf("len(Gaps) = %d, want 0", len(result.Gaps))
	}
	if result.ProjectedScore != nil {
		t.Error("expected no projected score without gaps")
	}
}

func TestLocal_Score_Deterministic(t *testing.T) {
	t.Parallel()

	skills := []domain.CandidateSkill{
		{SkillName: "go", Proficiency: 3},
		{SkillName: "kubernetes", Proficiency: 2},
	}
	reqs := []domain.PostingRequirement{
		{SkillName: "go", Weight: 5},
		{SkillName: "kubernetes", Weight: 2},
		{SkillName: "terraform", Weight: 1},
	}

	first, err := NewLocal().Score(context.Background(), skills, reqs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := NewLocal().Score(context.Background(), skills, reqs)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if again.Score != first.Score {
			t.Fatalf("run %d: Score = %d, want %d", i, again.Score, first.Score)
		}
	}
}

func TestLocal_Score_NoRequirements(t *testing.T) {
	t.Parallel()

	skills := []domain.CandidateSkill{{SkillName: "python", Proficiency: 5}}

	result, err := NewLocal().Score(context.Background(), skills, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Score != 0 {
		t.Errorf("Score = %d, want 0", result.Score)
	}
	if result.ProjectedScore != nil {
		t.Error("expected no projected score")
	}
}

func TestLocal_Score_ExceedingProficiencyCapsAtFull(t *testing.T) {
	t.Parallel()

	// Proficiency above the weight still counts its full p*w contribution
	// but the score never exceeds 100.
	skills := []domain.CandidateSkill{{SkillName: "python", Proficiency: 5}}
	reqs := []domain.PostingRequirement{{SkillName: "python", Weight: 1}}

	result, err := NewLocal().Score(context.Background(), skills, reqs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Score != 100 {
		t.Errorf("Score = %d, want 100", result.Score)
	}
}

func TestRoundRatio_Rounding(t *testing.T) {
	t.Parallel()

	tests := []struct {
		num, den, want int
	}{
		{29, 60, 48},
		{1, 3, 33},
		{2, 3, 67},
		{1, 2, 50},
		{0, 10, 0},
		{10, 10, 100},
	}
	for _, tt := range tests {
		if got := roundRatio(tt.num, tt.den); got != tt.want {
			t.Errorf("roundRatio(%d, %d) = %d, want %d", tt.num, tt.den, got, tt.want)
		}
	}
}
