package domain

import (
	"time"

	"github.com/google/uuid"
)

// Application is the single row per (candidate, posting) pair. Withdrawn
// distinguishes an inactive application from absence: the row is never
// deleted, so apply history survives withdrawal and re-application flips
// the flag back instead of inserting a duplicate.
type Application struct {
	ID          uuid.UUID
	CandidateID uuid.UUID
	PostingID   uuid.UUID
	Withdrawn   bool
	AppliedAt   time.Time
}

// IsActive reports whether the application currently counts as applied.
func (a *Application) IsActive() bool { return !a.Withdrawn }

// ApplicationStatus is the {applied, withdrawn} projection the ranking
// aggregator reports per candidate. A candidate with no application row
// reports the zero value.
type ApplicationStatus struct {
	Applied   bool `json:"applied"`
	Withdrawn bool `json:"withdrawn"`
}
