package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/skillsync/skillsync-backend/internal/domain"
)

const (
	minPasswordLen = 8
	maxNameLen     = 100
)

// RegisterInput holds the parameters for registering a user.
type RegisterInput struct {
	Email    string
	Name     string
	Password string
	Role     domain.UserRole

	// Candidate-only.
	Location *string

	// Recruiter-only.
	CompanyName string
}

// Validate checks all fields and collects all errors.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	email := strings.TrimSpace(i.Email)
	if email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if !strings.Contains(email, "@") {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid format"})
	}

	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(i.Name) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: fmt.Sprintf("max %d characters", maxNameLen)})
	}

	if len(i.Password) < minPasswordLen {
		errs = append(errs, domain.FieldError{Field: "password", Message: fmt.Sprintf("min %d characters", minPasswordLen)})
	}

	if !i.Role.IsValid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "must be CANDIDATE or RECRUITER"})
	}
	if i.Role == domain.UserRoleRecruiter && strings.TrimSpace(i.CompanyName) == "" {
		errs = append(errs, domain.FieldError{Field: "company_name", Message: "required for recruiters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Register creates a user and its role profile atomically, then issues an
// access token.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*Result, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	var user *domain.User
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		user, err = s.users.Create(ctx, &domain.User{
			Email:        strings.ToLower(strings.TrimSpace(input.Email)),
			Name:         strings.TrimSpace(input.Name),
			Role:         input.Role,
			PasswordHash: hash,
		})
		if err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				return fmt.Errorf("email already registered: %w", domain.ErrConflict)
			}
			return fmt.Errorf("create user: %w", err)
		}

		switch input.Role {
		case domain.UserRoleCandidate:
			_, err = s.candidates.Create(ctx, &domain.CandidateProfile{
				UserID:   user.ID,
				Location: input.Location,
			})
		case domain.UserRoleRecruiter:
			_, err = s.recruiters.Create(ctx, &domain.RecruiterProfile{
				UserID:      user.ID,
				CompanyName: strings.TrimSpace(input.CompanyName),
			})
		}
		if err != nil {
			return fmt.Errorf("create profile: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	token, err := s.jwt.GenerateAccessToken(user.ID, user.Role.String())
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	s.log.InfoContext(ctx, "user registered",
		slog.String("user_id", user.ID.String()),
		slog.String("role", user.Role.String()),
	)

	return &Result{User: user, AccessToken: token}, nil
}
