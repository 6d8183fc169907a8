package posting

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/skillsync/skillsync-backend/internal/domain"
	"github.com/skillsync/skillsync-backend/pkg/ctxutil"
)

// Create creates a posting owned by the calling recruiter, with its
// requirement set, in one transaction.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Posting, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(s.clock.Now()); err != nil {
		return nil, err
	}

	recruiter, err := s.recruiters.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get recruiter: %w", err)
	}

	var created *domain.Posting
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		created, err = s.postings.Create(ctx, &domain.Posting{
			RecruiterID: recruiter.ID,
			Title:       strings.TrimSpace(input.Title),
			Description: input.Description,
			Type:        input.Type,
			Deadline:    input.Deadline,
		})
		if err != nil {
			return fmt.Errorf("create posting: %w", err)
		}

		reqs := normalizeRequirements(created.ID, input.Requirements)
		if err := s.postings.ReplaceRequirements(ctx, created.ID, reqs); err != nil {
			return fmt.Errorf("set requirements: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "posting created",
		slog.String("posting_id", created.ID.String()),
		slog.String("recruiter_id", recruiter.ID.String()),
		slog.Int("requirements", len(input.Requirements)),
	)

	return created, nil
}
