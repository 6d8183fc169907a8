// Package score implements the match-score cache: serve fresh cached
// scores, recompute stale or missing ones, never hand out garbage.
package score

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/skillsync/skillsync-backend/internal/adapter/scoring"
	"github.com/skillsync/skillsync-backend/internal/domain"
)

// candidateRepo defines the candidate repository interface needed by score service.
type candidateRepo interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.CandidateProfile, error)
	ListSkills(ctx context.Context, candidateID uuid.UUID) ([]domain.CandidateSkill, error)
}

// postingRepo defines the posting repository interface needed by score service.
type postingRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Posting, error)
	ListRequirements(ctx context.Context, postingID uuid.UUID) ([]domain.PostingRequirement, error)
}

// scoreRepo defines the match-score repository interface needed by score service.
type scoreRepo interface {
	GetByPair(ctx context.Context, candidateID, postingID uuid.UUID) (*domain.MatchScore, error)
	Upsert(ctx context.Context, score *domain.MatchScore) (*domain.MatchScore, error)
}

// scorer computes a score from current skills and requirements.
type scorer interface {
	Score(ctx context.Context, skills []domain.CandidateSkill, reqs []domain.PostingRequirement) (*scoring.Result, error)
}

// Service implements score-check operations.
type Service struct {
	log        *slog.Logger
	candidates candidateRepo
	postings   postingRepo
	scores     scoreRepo
	scorer     scorer
	clock      domain.Clock
}

// NewService creates a new score service instance.
func NewService(
	logger *slog.Logger,
	candidates candidateRepo,
	postings postingRepo,
	scores scoreRepo,
	scorer scorer,
	clock domain.Clock,
) *Service {
	return &Service{
		log:        logger.With("service", "score"),
		candidates: candidates,
		postings:   postings,
		scores:     scores,
		scorer:     scorer,
		clock:      clock,
	}
}
