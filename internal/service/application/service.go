// Package application implements the application ledger: the
// Absent/Applied/Withdrawn state machine for candidate-posting pairs,
// gated by posting deadline and match-score threshold.
package application

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/skillsync/skillsync-backend/internal/domain"
)

// DefaultScoreThreshold is the minimum match score for self-service apply.
const DefaultScoreThreshold = 80

// candidateRepo defines the candidate repository interface needed by application service.
type candidateRepo interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.CandidateProfile, error)
}

// recruiterRepo defines the recruiter repository interface needed by application service.
type recruiterRepo interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.RecruiterProfile, error)
}

// postingRepo defines the posting repository interface needed by application service.
type postingRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Posting, error)
}

// applicationRepo defines the application repository interface needed by application service.
type applicationRepo interface {
	GetByPair(ctx context.Context, candidateID, postingID uuid.UUID) (*domain.Application, error)
	ListActiveByCandidate(ctx context.Context, candidateID uuid.UUID) ([]domain.Application, error)
	ListActiveByPosting(ctx context.Context, postingID uuid.UUID) ([]domain.Application, error)
	Create(ctx context.Context, candidateID, postingID uuid.UUID, appliedAt time.Time) (*domain.Application, error)
	Reactivate(ctx context.Context, candidateID, postingID uuid.UUID, appliedAt time.Time) (*domain.Application, error)
	Withdraw(ctx context.Context, candidateID, postingID uuid.UUID) (*domain.Application, error)
}

// scoreRepo defines the match-score repository interface needed by application service.
type scoreRepo interface {
	GetByPair(ctx context.Context, candidateID, postingID uuid.UUID) (*domain.MatchScore, error)
}

// Service implements application ledger operations.
type Service struct {
	log          *slog.Logger
	candidates   candidateRepo
	recruiters   recruiterRepo
	postings     postingRepo
	applications applicationRepo
	scores       scoreRepo
	clock        domain.Clock
	threshold    int
}

// NewService creates a new application service instance.
func NewService(
	logger *slog.Logger,
	candidates candidateRepo,
	recruiters recruiterRepo,
	postings postingRepo,
	applications applicationRepo,
	scores scoreRepo,
	clock domain.Clock,
	threshold int,
) *Service {
	return &Service{
		log:          logger.With("service", "application"),
		candidates:   candidates,
		recruiters:   recruiters,
		postings:     postings,
		applications: applications,
		scores:       scores,
		clock:        clock,
		threshold:    threshold,
	}
}
