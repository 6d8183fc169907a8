package application

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/skillsync/skillsync-backend/internal/domain"
)

var (
	_ candidateRepo   = &candidateRepoMock{}
	_ recruiterRepo   = &recruiterRepoMock{}
	_ postingRepo     = &postingRepoMock{}
	_ applicationRepo = &applicationRepoMock{}
	_ scoreRepo       = &scoreRepoMock{}
)

type candidateRepoMock struct {
	GetByUserIDFunc func(ctx context.Context, userID uuid.UUID) (*domain.CandidateProfile, error)
}

func (m *candidateRepoMock) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.CandidateProfile, error) {
	return m.GetByUserIDFunc(ctx, userID)
}

type recruiterRepoMock struct {
	GetByUserIDFunc func(ctx context.Context, userID uuid.UUID) (*domain.RecruiterProfile, error)
}

func (m *recruiterRepoMock) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.RecruiterProfile, error) {
	return m.GetByUserIDFunc(ctx, userID)
}

type postingRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Posting, error)
}

func (m *postingRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Posting, error) {
	return m.GetByIDFunc(ctx, id)
}

type applicationRepoMock struct {
	GetByPairFunc             func(ctx context.Context, candidateID, postingID uuid.UUID) (*domain.Application, error)
	ListActiveByCandidateFunc func(ctx context.Context, candidateID uuid.UUID) ([]domain.Application, error)
	ListActiveByPostingFunc   func(ctx context.Context, postingID uuid.UUID) ([]domain.Application, error)
	CreateFunc                func(ctx context.Context, candidateID, postingID uuid.UUID, appliedAt time.Time) (*domain.Application, error)
	ReactivateFunc            func(ctx context.Context, candidateID, postingID uuid.UUID, appliedAt time.Time) (*domain.Application, error)
	WithdrawFunc              func(ctx context.Context, candidateID, postingID uuid.UUID) (*domain.Application, error)

	createCalls     int
	reactivateCalls int
}

func (m *applicationRepoMock) GetByPair(ctx context.Context, candidateID, postingID uuid.UUID) (*domain.Application, error) {
	return m.GetByPairFunc(ctx, candidateID, postingID)
}

func (m *applicationRepoMock) ListActiveByCandidate(ctx context.Context, candidateID uuid.UUID) ([]domain.Application, error) {
	return m.ListActiveByCandidateFunc(ctx, candidateID)
}

func (m *applicationRepoMock) ListActiveByPosting(ctx context.Context, postingID uuid.UUID) ([]domain.Application, error) {
	return m.ListActiveByPostingFunc(ctx, postingID)
}

func (m *applicationRepoMock) Create(ctx context.Context, candidateID, postingID uuid.UUID, appliedAt time.Time) (*domain.Application, error) {
	m.createCalls++
	return m.CreateFunc(ctx, candidateID, postingID, appliedAt)
}

func (m *applicationRepoMock) Reactivate(ctx context.Context, candidateID, postingID uuid.UUID, appliedAt time.Time) (*domain.Application, error) {
	m.reactivateCalls++
	return m.ReactivateFunc(ctx, candidateID, postingID, appliedAt)
}

func (m *applicationRepoMock) Withdraw(ctx context.Context, candidateID, postingID uuid.UUID) (*domain.Application, error) {
	return m.WithdrawFunc(ctx, candidateID, postingID)
}

type scoreRepoMock struct {
	GetByPairFunc func(ctx context.Context, candidateID, postingID uuid.UUID) (*domain.MatchScore, error)
}

func (m *scoreRepoMock) GetByPair(ctx context.Context, candidateID, postingID uuid.UUID) (*domain.MatchScore, error) {
	return m.GetByPairFunc(ctx, candidateID, postingID)
}
