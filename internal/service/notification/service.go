// Package notification implements the user-facing notification feed.
// Invitation-specific behavior lives in the invitation service.
package notification

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/skillsync/skillsync-backend/internal/domain"
	"github.com/skillsync/skillsync-backend/pkg/ctxutil"
)

// notificationRepo defines the notification repository interface needed by notification service.
type notificationRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Notification, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Notification, int, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
}

// Service implements notification feed operations.
type Service struct {
	log           *slog.Logger
	notifications notificationRepo
}

// NewService creates a new notification service instance.
func NewService(logger *slog.Logger, notifications notificationRepo) *Service {
	return &Service{
		log:           logger.With("service", "notification"),
		notifications: notifications,
	}
}

// Feed is a user's notification list plus the unread count.
type Feed struct {
	Notifications []domain.Notification
	Unread        int
}

// ListMine returns the calling user's notifications, newest first.
func (s *Service) ListMine(ctx context.Context) (*Feed, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	list, unread, err := s.notifications.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}

	return &Feed{Notifications: list, Unread: unread}, nil
}

// MarkRead flags one of the calling user's notifications as read.
func (s *Service) MarkRead(ctx context.Context, notificationID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if notificationID == uuid.Nil {
		return domain.NewValidationError("notification_id", "required")
	}

	n, err := s.notifications.GetByID(ctx, notificationID)
	if err != nil {
		return fmt.Errorf("get notification: %w", err)
	}
	if n.UserID != userID {
		return fmt.Errorf("notification belongs to another user: %w", domain.ErrForbidden)
	}

	if err := s.notifications.MarkRead(ctx, n.ID); err != nil {
		return fmt.Errorf("mark read: %w", err)
	}

	return nil
}
