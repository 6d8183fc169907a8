package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated application user.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	Role         UserRole
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CandidateProfile is the candidate side of a user. Skills hang off the
// profile, not the user, and are replaced wholesale on edit.
type CandidateProfile struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Location  *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RecruiterProfile is the recruiter side of a user. Postings belong to the
// profile; ownership checks compare against RecruiterProfile.ID.
type RecruiterProfile struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	CompanyName string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
