package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/skillsync/skillsync-backend/internal/domain"
	"github.com/skillsync/skillsync-backend/pkg/ctxutil"
)

// ApplyInput holds the parameters for applying to a posting.
type ApplyInput struct {
	PostingID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i ApplyInput) Validate() error {
	if i.PostingID == uuid.Nil {
		return domain.NewValidationError("posting_id", "required")
	}
	return nil
}

// ApplyResult is a successful application plus the score that gated it.
type ApplyResult struct {
	Application *domain.Application
	MatchScore  *domain.MatchScore
}

// Apply creates (or reactivates) the calling candidate's application to a
// posting. Preconditions: deadline not passed, a fresh match score on
// record at or above the threshold, and no active application for the pair.
func (s *Service) Apply(ctx context.Context, input ApplyInput) (*ApplyResult, error) {
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

	now := s.clock.Now()
	if posting.IsExpired(now) {
		return nil, fmt.Errorf("posting deadline was %s: %w",
			posting.Deadline.Format("2006-01-02"), domain.ErrDeadlinePassed)
	}

	// The conflict check comes before the score gates: an already-applied
	// candidate hears "already applied" even when their cached score has
	// since gone stale.
	existing, err := s.applications.GetByPair(ctx, candidate.ID, posting.ID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get application: %w", err)
	}
	if existing != nil && existing.IsActive() {
		return nil, fmt.Errorf("already applied on %s: %w",
			existing.AppliedAt.Format("2006-01-02"), domain.ErrConflict)
	}

	score, err := s.scores.GetByPair(ctx, candidate.ID, posting.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("no match score on record, run a score check first: %w",
				domain.ErrPreconditionFailed)
		}
		return nil, fmt.Errorf("get score: %w", err)
	}
	if score.IsStale {
		return nil, fmt.Errorf("match score is stale, run a score check first: %w",
			domain.ErrPreconditionFailed)
	}

	if score.Score < s.threshold {
		return nil, fmt.Errorf("%d%% is below the %d%% threshold: %w",
			score.Score, s.threshold, domain.ErrForbidden)
	}

	var app *domain.Application
	if existing == nil {
		// Concurrent first-time applies race on the store's unique
		// constraint; the loser surfaces as a conflict.
		app, err = s.applications.Create(ctx, candidate.ID, posting.ID, now)
		if err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				return nil, fmt.Errorf("already applied: %w", domain.ErrConflict)
			}
			return nil, fmt.Errorf("create application: %w", err)
		}
	} else {
		app, err = s.applications.Reactivate(ctx, candidate.ID, posting.ID, now)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				// Lost a race against a concurrent re-apply.
				return nil, fmt.Errorf("already applied: %w", domain.ErrConflict)
			}
			return nil, fmt.Errorf("reactivate application: %w", err)
		}
	}

	s.log.InfoContext(ctx, "application created",
		slog.String("candidate_id", candidate.ID.String()),
		slog.String("posting_id", posting.ID.String()),
		slog.Int("score", score.Score),
	)

	return &ApplyResult{Application: app, MatchScore: score}, nil
}
