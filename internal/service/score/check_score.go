package score

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/skillsync/skillsync-backend/internal/domain"
	"github.com/skillsync/skillsync-backend/pkg/ctxutil"
)

// CheckScoreInput holds the parameters for a score check.
type CheckScoreInput struct {
	PostingID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i CheckScoreInput) Validate() error {
	if i.PostingID == uuid.Nil {
		return domain.NewValidationError("posting_id", "required")
	}
	return nil
}

// CheckScore returns the match score between the calling candidate and a
// posting. A fresh cached score is returned as-is; a missing or stale one
// is recomputed and persisted. A failed scoring call persists nothing.
func (s *Service) CheckScore(ctx context.Context, input CheckScoreInput) (*domain.ScoreResult, error) {
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

	cached, err := s.scores.GetByPair(ctx, candidate.ID, posting.ID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get cached score: %w", err)
	}

	if cached != nil && !cached.IsStale {
		s.log.InfoContext(ctx, "score served from cache",
			slog.String("candidate_id", candidate.ID.String()),
			slog.String("posting_id", posting.ID.String()),
			slog.Int("score", cached.Score),
		)
		return &domain.ScoreResult{
			Source:       domain.ScoreSourceCache,
			Score:        cached.Score,
			Breakdown:    cached.Breakdown,
			Gaps:         cached.Gaps,
			CalculatedAt: cached.CalculatedAt,
		}, nil
	}

	skills, err := s.candidates.ListSkills(ctx, candidate.ID)
	if err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}
	if len(skills) == 0 {
		return nil, fmt.Errorf("no skills on file: %w", domain.ErrInvalidState)
	}

	reqs, err := s.postings.ListRequirements(ctx, posting.ID)
	if err != nil {
		return nil, fmt.Errorf("list requirements: %w", err)
	}
	if len(reqs) == 0 {
		return nil, fmt.Errorf("no requirements on posting: %w", domain.ErrInvalidState)
	}

	result, err := s.scorer.Score(ctx, skills, reqs)
	if err != nil {
		return nil, fmt.Errorf("compute score: %w", err)
	}

	stored, err := s.scores.Upsert(ctx, &domain.MatchScore{
		CandidateID:    candidate.ID,
		PostingID:      posting.ID,
		Score:          result.Score,
		Breakdown:      result.Breakdown,
		Gaps:           result.Gaps,
		ProjectedScore: result.ProjectedScore,
		IsStale:        false,
		CalculatedAt:   s.clock.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("store score: %w", err)
	}

	s.log.InfoContext(ctx, "score calculated",
		slog.String("candidate_id", candidate.ID.String()),
		slog.String("posting_id", posting.ID.String()),
		slog.Int("score", stored.Score),
		slog.Int("gaps", len(stored.Gaps)),
	)

	return &domain.ScoreResult{
		Source:       domain.ScoreSourceCalculated,
		Score:        stored.Score,
		Breakdown:    stored.Breakdown,
		Gaps:         stored.Gaps,
		CalculatedAt: stored.CalculatedAt,
	}, nil
}
