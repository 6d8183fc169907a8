package invitation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/skillsync/skillsync-backend/internal/domain"
	"github.com/skillsync/skillsync-backend/pkg/ctxutil"
)

// InviteInput holds the parameters for inviting a candidate to a posting.
type InviteInput struct {
	CandidateID uuid.UUID
	PostingID   uuid.UUID
	Message     string
}

// Validate checks all fields and collects all errors.
func (i InviteInput) validate(messageMax int) error {
	var errs []domain.FieldError

	if i.CandidateID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "candidate_id", Message: "required"})
	}
	if i.PostingID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "posting_id", Message: "required"})
	}

	msg := strings.TrimSpace(i.Message)
	if msg == "" {
		errs = append(errs, domain.FieldError{Field: "message", Message: "required"})
	}
	if len(msg) > messageMax {
		errs = append(errs, domain.FieldError{
			Field:   "message",
			Message: fmt.Sprintf("max %d characters", messageMax),
		})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Invite sends an INVITE notification to a candidate for a posting owned by
// the calling recruiter. At most one invite may exist per candidate-posting
// pair, in any action state.
func (s *Service) Invite(ctx context.Context, input InviteInput) (*domain.Notification, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.validate(s.messageMax); err != nil {
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

	candidate, err := s.candidates.GetByID(ctx, input.CandidateID)
	if err != nil {
		return nil, fmt.Errorf("get candidate: %w", err)
	}

	existing, err := s.notifications.FindInvite(ctx, candidate.UserID, posting.ID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("find invite: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("already invited (current state %s): %w",
			existing.ActionTaken, domain.ErrConflict)
	}

	postingID := posting.ID
	created, err := s.notifications.Create(ctx, &domain.Notification{
		UserID:      candidate.UserID,
		PostingID:   &postingID,
		Type:        domain.NotificationTypeInvite,
		Message:     strings.TrimSpace(input.Message),
		ActionTaken: domain.InviteActionNone,
		Read:        false,
	})
	if err != nil {
		return nil, fmt.Errorf("create invite: %w", err)
	}

	s.log.InfoContext(ctx, "invitation sent",
		slog.String("recruiter_id", recruiter.ID.String()),
		slog.String("candidate_id", candidate.ID.String()),
		slog.String("posting_id", posting.ID.String()),
		slog.String("notification_id", created.ID.String()),
	)

	return created, nil
}
