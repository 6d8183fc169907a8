package posting

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/skillsync/skillsync-backend/internal/domain"
	"github.com/skillsync/skillsync-backend/pkg/ctxutil"
)

// Details is a posting together with its requirement set.
type Details struct {
	Posting      *domain.Posting
	Requirements []domain.PostingRequirement
}

// Get returns a posting and its requirements.
func (s *Service) Get(ctx context.Context, postingID uuid.UUID) (*Details, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	if postingID == uuid.Nil {
		return nil, domain.NewValidationError("posting_id", "required")
	}

	p, err := s.postings.GetByID(ctx, postingID)
	if err != nil {
		return nil, fmt.Errorf("get posting: %w", err)
	}

	reqs, err := s.postings.ListRequirements(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("list requirements: %w", err)
	}

	return &Details{Posting: p, Requirements: reqs}, nil
}
