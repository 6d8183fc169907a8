package domain

// UserRole represents the authorization level of a user.
type UserRole string

const (
	UserRoleCandidate UserRole = "CANDIDATE"
	UserRoleRecruiter UserRole = "RECRUITER"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleCandidate, UserRoleRecruiter:
		return true
	}
	return false
}

// NotificationType identifies the kind of a notification.
type NotificationType string

const (
	// NotificationTypeInvite is a recruiter-initiated invitation that can
	// place the candidate into applied state regardless of match score.
	NotificationTypeInvite NotificationType = "INVITE"

	// NotificationTypeInfo is a plain informational notification.
	NotificationTypeInfo NotificationType = "INFO"
)

func (t NotificationType) String() string { return string(t) }

func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationTypeInvite, NotificationTypeInfo:
		return true
	}
	return false
}

// InviteAction records how a candidate responded to an invitation.
// Transitions only NONE→ACCEPTED or NONE→REJECTED, exactly once.
type InviteAction string

const (
	InviteActionNone     InviteAction = "NONE"
	InviteActionAccepted InviteAction = "ACCEPTED"
	InviteActionRejected InviteAction = "REJECTED"
)

func (a InviteAction) String() string { return string(a) }

func (a InviteAction) IsValid() bool {
	switch a {
	case InviteActionNone, InviteActionAccepted, InviteActionRejected:
		return true
	}
	return false
}

// ScoreSource tells the caller whether a score check was served from the
// cache or freshly calculated.
type ScoreSource string

const (
	ScoreSourceCache      ScoreSource = "cache"
	ScoreSourceCalculated ScoreSource = "calculated"
)

func (s ScoreSource) String() string { return string(s) }
