// Package auth implements registration and password login with JWT access
// tokens.
package auth

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/skillsync/skillsync-backend/internal/domain"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
}

// candidateRepo defines the candidate repository interface needed by auth service.
type candidateRepo interface {
	Create(ctx context.Context, p *domain.CandidateProfile) (*domain.CandidateProfile, error)
}

// recruiterRepo defines the recruiter repository interface needed by auth service.
type recruiterRepo interface {
	Create(ctx context.Context, p *domain.RecruiterProfile) (*domain.RecruiterProfile, error)
}

// txManager defines the transaction manager interface needed by auth service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// passwordHasher hashes and verifies passwords.
type passwordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) bool
}

// jwtManager issues access tokens.
type jwtManager interface {
	GenerateAccessToken(userID uuid.UUID, role string) (string, error)
}

// Service implements authentication operations.
type Service struct {
	log        *slog.Logger
	users      userRepo
	candidates candidateRepo
	recruiters recruiterRepo
	tx         txManager
	hasher     passwordHasher
	jwt        jwtManager
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	candidates candidateRepo,
	recruiters recruiterRepo,
	tx txManager,
	hasher passwordHasher,
	jwt jwtManager,
) *Service {
	return &Service{
		log:        logger.With("service", "auth"),
		users:      users,
		candidates: candidates,
		recruiters: recruiters,
		tx:         tx,
		hasher:     hasher,
		jwt:        jwt,
	}
}

// Result is a successful authentication: the user plus an access token.
type Result struct {
	User        *domain.User
	AccessToken string
}
