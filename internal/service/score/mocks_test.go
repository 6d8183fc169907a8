package score

import (
	"context"

	"github.com/google/uuid"

	"github.com/skillsync/skillsync-backend/internal/adapter/scoring"
	"github.com/skillsync/skillsync-backend/internal/domain"
)

var (
	_ candidateRepo = &candidateRepoMock{}
	_ postingRepo   = &postingRepoMock{}
	_ scoreRepo     = &scoreRepoMock{}
	_ scorer        = &scorerMock{}
)

type candidateRepoMock struct {
	GetByUserIDFunc func(ctx context.Context, userID uuid.UUID) (*domain.CandidateProfile, error)
	ListSkillsFunc  func(ctx context.Context, candidateID uuid.UUID) ([]domain.CandidateSkill, error)
}

func (m *candidateRepoMock) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.CandidateProfile, error) {
	return m.GetByUserIDFunc(ctx, userID)
}

func (m *candidateRepoMock) ListSkills(ctx context.Context, candidateID uuid.UUID) ([]domain.CandidateSkill, error) {
	return m.ListSkillsFunc(ctx, candidateID)
}

type postingRepoMock struct {
	GetByIDFunc          func(ctx context.Context, id uuid.UUID) (*domain.Posting, error)
	ListRequirementsFunc func(ctx context.Context, postingID uuid.UUID) ([]domain.PostingRequirement, error)
}

func (m *postingRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Posting, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *postingRepoMock) ListRequirements(ctx context.Context, postingID uuid.UUID) ([]domain.PostingRequirement, error) {
	return m.ListRequirementsFunc(ctx, postingID)
}

type scoreRepoMock struct {
	GetByPairFunc func(ctx context.Context, candidateID, postingID uuid.UUID) (*domain.MatchScore, error)
	UpsertFunc    func(ctx context.Context, score *domain.MatchScore) (*domain.MatchScore, error)

	upsertCalls int
}

func (m *scoreRepoMock) GetByPair(ctx context.Context, candidateID, postingID uuid.UUID) (*domain.MatchScore, error) {
	return m.GetByPairFunc(ctx, candidateID, postingID)
}

func (m *scoreRepoMock) Upsert(ctx context.Context, score *domain.MatchScore) (*domain.MatchScore, error) {
	m.upsertCalls++
	return m.UpsertFunc(ctx, score)
}

type scorerMock struct {
	ScoreFunc func(ctx context.Context, skills []domain.CandidateSkill, reqs []domain.PostingRequirement) (*scoring.Result, error)
}

func (m *scorerMock) Score(ctx context.Context, skills []domain.CandidateSkill, reqs []domain.PostingRequirement) (*scoring.Result, error) {
	return m.ScoreFunc(ctx, skills, reqs)
}
