// Package invitation implements the invitation workflow: recruiters invite
// candidates to postings, candidates accept or reject exactly once, and an
// acceptance places the candidate into applied state without a score check.
package invitation

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/skillsync/skillsync-backend/internal/domain"
)

// candidateRepo defines the candidate repository interface needed by invitation service.
type candidateRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.CandidateProfile, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.CandidateProfile, error)
}

// recruiterRepo defines the recruiter repository interface needed by invitation service.
type recruiterRepo interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.RecruiterProfile, error)
}

// postingRepo defines the posting repository interface needed by invitation service.
type postingRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Posting, error)
}

// notificationRepo defines the notification repository interface needed by invitation service.
type notificationRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Notification, error)
	FindInvite(ctx context.Context, userID, postingID uuid.UUID) (*domain.Notification, error)
	Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
	SetAction(ctx context.Context, id uuid.UUID, action domain.InviteAction) error
}

// applicationRepo defines the application repository interface needed by invitation service.
type applicationRepo interface {
	GetByPair(ctx context.Context, candidateID, postingID uuid.UUID) (*domain.Application, error)
	Create(ctx context.Context, candidateID, postingID uuid.UUID, appliedAt time.Time) (*domain.Application, error)
	Reactivate(ctx context.Context, candidateID, postingID uuid.UUID, appliedAt time.Time) (*domain.Application, error)
}

// txManager defines the transaction manager interface needed by invitation service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements invitation workflow operations.
type Service struct {
	log           *slog.Logger
	candidates    candidateRepo
	recruiters    recruiterRepo
	postings      postingRepo
	notifications notificationRepo
	applications  applicationRepo
	tx            txManager
	clock         domain.Clock
	messageMax    int
}

// NewService creates a new invitation service instance.
func NewService(
	logger *slog.Logger,
	candidates candidateRepo,
	recruiters recruiterRepo,
	postings postingRepo,
	notifications notificationRepo,
	applications applicationRepo,
	tx txManager,
	clock domain.Clock,
	messageMax int,
) *Service {
	return &Service{
		log:           logger.With("service", "invitation"),
		candidates:    candidates,
		recruiters:    recruiters,
		postings:      postings,
		notifications: notifications,
		applications:  applications,
		tx:            tx,
		clock:         clock,
		messageMax:    messageMax,
	}
}
