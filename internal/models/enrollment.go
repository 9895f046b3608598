package models

import "time"

// Enrollment is the persistence shape of a batch participant link row.
// (batch_id, coach_id) carries a unique constraint.
type Enrollment struct {
	EnrollmentID int64     `db:"enrollment_id"`
	BatchID      int64     `db:"batch_id"`
	CoachID      int64     `db:"coach_id"`
	RegisteredAt time.Time `db:"registered_at"`
	Status       string    `db:"status"`
	Notes        *string   `db:"notes"`
	IsAttended   bool      `db:"is_attended"`
}
