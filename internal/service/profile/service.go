// Package profile implements candidate skill-set management. Replacing the
// skill set flags every cached score for the candidate stale, in the same
// transaction as the write.
package profile

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/skillsync/skillsync-backend/internal/domain"
)

// candidateRepo defines the candidate repository interface needed by profile service.
type candidateRepo interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.CandidateProfile, error)
	ListSkills(ctx context.Context, candidateID uuid.UUID) ([]domain.CandidateSkill, error)
	ReplaceSkills(ctx context.Context, candidateID uuid.UUID, skills []domain.CandidateSkill) error
}

// scoreRepo defines the match-score repository interface needed by profile service.
type scoreRepo interface {
	MarkStaleByCandidate(ctx context.Context, candidateID uuid.UUID) (int, error)
}

// txManager defines the transaction manager interface needed by profile service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements candidate profile operations.
type Service struct {
	log        *slog.Logger
	candidates candidateRepo
	scores     scoreRepo
	tx         txManager
}

// NewService creates a new profile service instance.
func NewService(
	logger *slog.Logger,
	candidates candidateRepo,
	scores scoreRepo,
	tx txManager,
) *Service {
	return &Service{
		log:        logger.With("service", "profile"),
		candidates: candidates,
		scores:     scores,
		tx:         tx,
	}
}
