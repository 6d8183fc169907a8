package ranking

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/skillsync/skillsync-backend/internal/domain"
	"github.com/skillsync/skillsync-backend/pkg/ctxutil"
)

// RankInput holds the parameters for ranking a posting's candidates.
type RankInput struct {
	PostingID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i RankInput) Validate() error {
	if i.PostingID == uuid.Nil {
		return domain.NewValidationError("posting_id", "required")
	}
	return nil
}

// Rank returns the posting's candidates ordered by fresh match score,
// descending, with dense 1-based ranks. Stale scores are excluded, so a
// posting whose requirements just changed ranks nobody until candidates
// re-check. Candidates with no application row report applied=false.
func (s *Service) Rank(ctx context.Context, input RankInput) ([]Entry, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	posting, err := s.postings.GetByID(ctx, input.PostingID)
	if err != nil {
		return nil, fmt.Errorf("get posting: %w", err)
	}

	scores, err := s.scores.ListFreshByPosting(ctx, posting.ID)
	if err != nil {
		return nil, fmt.Errorf("list scores: %w", err)
	}

	candidateIDs := make([]uuid.UUID, 0, len(scores))
	for _, sc := range scores {
		candidateIDs = append(candidateIDs, sc.CandidateID)
	}

	statuses, err := s.applications.GetStatusesByPosting(ctx, posting.ID, candidateIDs)
	if err != nil {
		return nil, fmt.Errorf("get application statuses: %w", err)
	}

	entries := make([]Entry, 0, len(scores))
	for i, sc := range scores {
		entries = append(entries, Entry{
			Rank:        i + 1,
			CandidateID: sc.CandidateID,
			Score:       sc.Score,
			Status:      statuses[sc.CandidateID],
		})
	}

	return entries, nil
}
