package application

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/skillsync/skillsync-backend/internal/domain"
	"github.com/skillsync/skillsync-backend/pkg/ctxutil"
)

// ListMine returns the calling candidate's active applications, newest first.
func (s *Service) ListMine(ctx context.Context) ([]domain.Application, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	candidate, err := s.candidates.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get candidate: %w", err)
	}

	apps, err := s.applications.ListActiveByCandidate(ctx, candidate.ID)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}

	return apps, nil
}

// ListApplicantsInput holds the parameters for listing a posting's applicants.
type ListApplicantsInput struct {
	PostingID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i ListApplicantsInput) Validate() error {
	if i.PostingID == uuid.Nil {
		return domain.NewValidationError("posting_id", "required")
	}
	return nil
}

// ListApplicants returns the active applications on a posting owned by the
// calling recruiter.
func (s *Service) ListApplicants(ctx context.Context, input ListApplicantsInput) ([]domain.Application, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	recruiter, err := s.recruiters.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get recruiter: %w", err)
	}

	posting, err := s.postings.GetByID(ctx, input.PostingID)
	if err != nil {
		return nil, fmt.Errorf("get posting: %w", err)
	}

	if posting.RecruiterID != recruiter.ID {
		return nil, fmt.Errorf("posting belongs to another recruiter: %w", domain.ErrForbidden)
	}

	apps, err := s.applications.ListActiveByPosting(ctx, posting.ID)
	if err != nil {
		return nil, fmt.Errorf("list applicants: %w", err)
	}

	return apps, nil
}
