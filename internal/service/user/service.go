// Package user implements account operations, most notably the explicit
// transactional cascade that removes every row referencing a deleted
// account. No store-level ON DELETE CASCADE is relied on.
package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/skillsync/skillsync-backend/internal/domain"
)

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// candidateRepo defines the candidate repository interface needed by user service.
type candidateRepo interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.CandidateProfile, error)
	Delete(ctx context.Context, candidateID uuid.UUID) error
}

// recruiterRepo defines the recruiter repository interface needed by user service.
type recruiterRepo interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.RecruiterProfile, error)
	Delete(ctx context.Context, recruiterID uuid.UUID) error
}

// postingRepo defines the posting repository interface needed by user service.
type postingRepo interface {
	ListIDsByRecruiter(ctx context.Context, recruiterID uuid.UUID) ([]uuid.UUID, error)
	DeleteByRecruiter(ctx context.Context, recruiterID uuid.UUID, postingIDs []uuid.UUID) error
}

// scoreRepo defines the match-score repository interface needed by user service.
type scoreRepo interface {
	DeleteByCandidate(ctx context.Context, candidateID uuid.UUID) error
	DeleteByPostings(ctx context.Context, postingIDs []uuid.UUID) error
}

// applicationRepo defines the application repository interface needed by user service.
type applicationRepo interface {
	DeleteByCandidate(ctx context.Context, candidateID uuid.UUID) error
	DeleteByPostings(ctx context.Context, postingIDs []uuid.UUID) error
}

// notificationRepo defines the notification repository interface needed by user service.
type notificationRepo interface {
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
	DeleteByPostings(ctx context.Context, postingIDs []uuid.UUID) error
}

// txManager defines the transaction manager interface needed by user service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements account operations.
type Service struct {
	log           *slog.Logger
	users         userRepo
	candidates    candidateRepo
	recruiters    recruiterRepo
	postings      postingRepo
	scores        scoreRepo
	applications  applicationRepo
	notifications notificationRepo
	tx            txManager
}

// NewService creates a new user service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	candidates candidateRepo,
	recruiters recruiterRepo,
	postings postingRepo,
	scores scoreRepo,
	applications applicationRepo,
	notifications notificationRepo,
	tx txManager,
) *Service {
	return &Service{
		log:           logger.With("service", "user"),
		users:         users,
		candidates:    candidates,
		recruiters:    recruiters,
		postings:      postings,
		scores:        scores,
		applications:  applications,
		notifications: notifications,
		tx:            tx,
	}
}
