package domain

import (
	"time"

	"github.com/google/uuid"
)

// PostingType distinguishes internships from projects.
type PostingType string

const (
	PostingTypeInternship PostingType = "INTERNSHIP"
	PostingTypeProject    PostingType = "PROJECT"
)

func (t PostingType) String() string { return string(t) }

func (t PostingType) IsValid() bool {
	switch t {
	case PostingTypeInternship, PostingTypeProject:
		return true
	}
	return false
}

// Posting is an internship or project a recruiter publishes. The deadline
// gates both applying and withdrawing.
type Posting struct {
	ID          uuid.UUID
	RecruiterID uuid.UUID
	Title       string
	Description *string
	Type        PostingType
	Deadline    time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsExpired reports whether the application deadline has passed at the
// given instant.
func (p *Posting) IsExpired(now time.Time) bool {
	return now.After(p.Deadline)
}
