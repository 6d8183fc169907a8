package posting

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/skillsync/skillsync-backend/internal/domain"
	"github.com/skillsync/skillsync-backend/pkg/ctxutil"
)

// ReplaceRequirements swaps the entire requirement set of a posting owned
// by the calling recruiter and flags every cached score for the posting
// stale, atomically.
func (s *Service) ReplaceRequirements(ctx context.Context, input ReplaceRequirementsInput) ([]domain.PostingRequirement, error) {
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

	p, err := s.postings.GetByID(ctx, input.PostingID)
	if err != nil {
		return nil, fmt.Errorf("get posting: %w", err)
	}

	if p.RecruiterID != recruiter.ID {
		return nil, fmt.Errorf("posting belongs to another recruiter: %w", domain.ErrForbidden)
	}

	reqs := normalizeRequirements(p.ID, input.Requirements)

	var staled int
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.postings.ReplaceRequirements(ctx, p.ID, reqs); err != nil {
			return fmt.Errorf("replace requirements: %w", err)
		}
		staled, err = s.scores.MarkStaleByPosting(ctx, p.ID)
		if err != nil {
			return fmt.Errorf("mark scores stale: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "requirements replaced",
		slog.String("posting_id", p.ID.String()),
		slog.Int("requirements", len(reqs)),
		slog.Int("scores_staled", staled),
	)

	updated, err := s.postings.ListRequirements(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("list requirements: %w", err)
	}

	return updated, nil
}
