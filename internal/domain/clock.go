package domain

import "time"

// Clock abstracts "current time" for deadline checks so that ledger logic
// can be tested against fixed timestamps.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real system clock in UTC.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }

// FixedClock always returns the same instant. Test helper.
type FixedClock struct {
	T time.Time
}

func (c FixedClock) Now() time.Time { return c.T }
