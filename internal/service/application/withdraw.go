package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/skillsync/skillsync-backend/internal/domain"
	"github.com/skillsync/skillsync-backend/pkg/ctxutil"
)

// WithdrawInput holds the parameters for withdrawing an application.
type WithdrawInput struct {
	PostingID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i WithdrawInput) Validate() error {
	if i.PostingID == uuid.Nil {
		return domain.NewValidationError("posting_id", "required")
	}
	return nil
}

// Withdraw deactivates the calling candidate's application to a posting.
// The row is kept (flagged withdrawn) so the apply history survives and a
// later re-apply reactivates it. Forbidden after the posting deadline.
func (s *Service) Withdraw(ctx context.Context, input WithdrawInput) (*domain.Application, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	candidate, err := s.candidates.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get candidate: %w", err)
	}

	posting, err := s.postings.GetByID(ctx, input.PostingID)
	if err != nil {
		return nil, fmt.Errorf("get posting: %w", err)
	}

	if posting.IsExpired(s.clock.Now()) {
		return nil, fmt.Errorf("posting deadline was %s: %w",
			posting.Deadline.Format("2006-01-02"), domain.ErrDeadlinePassed)
	}

	app, err := s.applications.Withdraw(ctx, candidate.ID, posting.ID)
	if err != nil {
		return nil, fmt.Errorf("withdraw application: %w", err)
	}

	s.log.InfoContext(ctx, "application withdrawn",
		slog.String("candidate_id", candidate.ID.String()),
		slog.String("posting_id", posting.ID.String()),
	)

	return app, nil
}
