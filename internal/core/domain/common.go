package domain

import "time"

// AuditFields holds standard audit timestamps for domain entities.
type AuditFields struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Clock abstracts "now" so that deadline comparisons are deterministic in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the platform clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }
