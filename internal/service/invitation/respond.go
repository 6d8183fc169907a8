package invitation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/skillsync/skillsync-backend/internal/domain"
	"github.com/skillsync/skillsync-backend/pkg/ctxutil"
)

// Decision is a candidate's answer to an invitation.
type Decision string

const (
	DecisionAccept Decision = "ACCEPT"
	DecisionReject Decision = "REJECT"
)

// RespondInput holds the parameters for responding to an invitation.
type RespondInput struct {
	NotificationID uuid.UUID
	Decision       Decision
}

// Validate checks all fields and collects all errors.
func (i RespondInput) Validate() error {
	var errs []domain.FieldError

	if i.NotificationID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "notification_id", Message: "required"})
	}
	if i.Decision != DecisionAccept && i.Decision != DecisionReject {
		errs = append(errs, domain.FieldError{Field: "decision", Message: "must be ACCEPT or REJECT"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Respond records the calling candidate's decision on an invitation.
//
// Accepting places the candidate into applied state with no score or
// deadline check, and the application write and the invitation state flip
// commit atomically. Each invitation can be acted on exactly once.
func (s *Service) Respond(ctx context.Context, input RespondInput) (*domain.Notification, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	notif, err := s.notifications.GetByID(ctx, input.NotificationID)
	if err != nil {
		return nil, fmt.Errorf("get notification: %w", err)
	}

	if notif.UserID != userID {
		return nil, fmt.Errorf("notification belongs to another user: %w", domain.ErrForbidden)
	}
	if !notif.IsInvite() {
		return nil, fmt.Errorf("notification is %s, not an invitation: %w",
			notif.Type, domain.ErrInvalidState)
	}
	if notif.Acted() {
		return nil, fmt.Errorf("invitation already %s: %w", notif.ActionTaken, domain.ErrConflict)
	}
	if notif.PostingID == nil {
		return nil, fmt.Errorf("invitation has no posting: %w", domain.ErrInvalidState)
	}

	action := domain.InviteActionRejected
	if input.Decision == DecisionAccept {
		action = domain.InviteActionAccepted
	}

	if action == domain.InviteActionAccepted {
		err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
			if err := s.placeApplication(ctx, userID, *notif.PostingID); err != nil {
				return err
			}
			return s.notifications.SetAction(ctx, notif.ID, action)
		})
	} else {
		err = s.notifications.SetAction(ctx, notif.ID, action)
	}
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, fmt.Errorf("invitation already acted on: %w", domain.ErrConflict)
		}
		return nil, fmt.Errorf("respond to invitation: %w", err)
	}

	notif.ActionTaken = action
	notif.Read = true

	s.log.InfoContext(ctx, "invitation answered",
		slog.String("notification_id", notif.ID.String()),
		slog.String("decision", string(action)),
	)

	return notif, nil
}

// placeApplication creates or reactivates the candidate's application
// unconditionally. An already-active application is left as is.
func (s *Service) placeApplication(ctx context.Context, userID, postingID uuid.UUID) error {
	candidate, err := s.candidates.GetByUserID(ctx, userID)
	if err != nil {
		return fmt.Errorf("get candidate: %w", err)
	}

	now := s.clock.Now()

	existing, err := s.applications.GetByPair(ctx, candidate.ID, postingID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("get application: %w", err)
	}

	switch {
	case existing == nil:
		if _, err := s.applications.Create(ctx, candidate.ID, postingID, now); err != nil {
			return fmt.Errorf("create application: %w", err)
		}
	case existing.IsActive():
		// Candidate applied on their own before accepting. Nothing to do.
	default:
		if _, err := s.applications.Reactivate(ctx, candidate.ID, postingID, now); err != nil {
			return fmt.Errorf("reactivate application: %w", err)
		}
	}

	return nil
}
