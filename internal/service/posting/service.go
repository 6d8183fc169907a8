// Package posting implements posting management for recruiters. Replacing
// a posting's requirement set flags every cached score for the posting
// stale, in the same transaction as the write.
package posting

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/skillsync/skillsync-backend/internal/domain"
)

// recruiterRepo defines the recruiter repository interface needed by posting service.
type recruiterRepo interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.RecruiterProfile, error)
}

// postingRepo defines the posting repository interface needed by posting service.
type postingRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Posting, error)
	ListRequirements(ctx context.Context, postingID uuid.UUID) ([]domain.PostingRequirement, error)
	Create(ctx context.Context, p *domain.Posting) (*domain.Posting, error)
	ReplaceRequirements(ctx context.Context, postingID uuid.UUID, reqs []domain.PostingRequirement) error
}

// scoreRepo defines the match-score repository interface needed by posting service.
type scoreRepo interface {
	MarkStaleByPosting(ctx context.Context, postingID uuid.UUID) (int, error)
}

// txManager defines the transaction manager interface needed by posting service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements posting operations.
type Service struct {
	log        *slog.Logger
	recruiters recruiterRepo
	postings   postingRepo
	scores     scoreRepo
	tx         txManager
	clock      domain.Clock
}

// NewService creates a new posting service instance.
func NewService(
	logger *slog.Logger,
	recruiters recruiterRepo,
	postings postingRepo,
	scores scoreRepo,
	tx txManager,
	clock domain.Clock,
) *Service {
	return &Service{
		log:        logger.With("service", "posting"),
		recruiters: recruiters,
		postings:   postings,
		scores:     scores,
		tx:         tx,
		clock:      clock,
	}
}
