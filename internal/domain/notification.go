package domain

import (
	"time"

	"github.com/google/uuid"
)

// Notification is addressed to a user; invitations are notifications of
// type INVITE referencing a posting. At most one INVITE may exist per
// (candidate, posting) pair, enforced by the invitation workflow before
// creation rather than by a store constraint.
type Notification struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	PostingID   *uuid.UUID
	Type        NotificationType
	Message     string
	ActionTaken InviteAction
	Read        bool
	CreatedAt   time.Time
}

// IsInvite reports whether the notification is an invitation.
func (n *Notification) IsInvite() bool { return n.Type == NotificationTypeInvite }

// Acted reports whether the invitation has already been accepted or rejected.
func (n *Notification) Acted() bool { return n.ActionTaken != InviteActionNone }
