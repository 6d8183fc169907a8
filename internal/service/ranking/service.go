// Package ranking implements the read-only per-posting candidate ranking:
// fresh cached scores ordered descending, joined with application state.
// It performs no writes and never triggers recomputation.
package ranking

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/skillsync/skillsync-backend/internal/domain"
)

// postingRepo defines the posting repository interface needed by ranking service.
type postingRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Posting, error)
}

// scoreRepo defines the match-score repository interface needed by ranking service.
type scoreRepo interface {
	ListFreshByPosting(ctx context.Context, postingID uuid.UUID) ([]domain.MatchScore, error)
}

// applicationRepo defines the application repository interface needed by ranking service.
type applicationRepo interface {
	GetStatusesByPosting(ctx context.Context, postingID uuid.UUID, candidateIDs []uuid.UUID) (map[uuid.UUID]domain.ApplicationStatus, error)
}

// Entry is one row of a posting's ranking.
type Entry struct {
	Rank        int                      `json:"rank"`
	CandidateID uuid.UUID                `json:"candidateId"`
	Score       int                      `json:"score"`
	Status      domain.ApplicationStatus `json:"applicationStatus"`
}

// Service implements ranking operations.
type Service struct {
	log          *slog.Logger
	postings     postingRepo
	scores       scoreRepo
	applications applicationRepo
}

// NewService creates a new ranking service instance.
func NewService(
	logger *slog.Logger,
	postings postingRepo,
	scores scoreRepo,
	applications applicationRepo,
) *Service {
	return &Service{
		log:          logger.With("service", "ranking"),
		postings:     postings,
		scores:       scores,
		applications: applications,
	}
}
