package models

import "time"

// TrainingBatch is the persistence shape of a certification cohort.
type TrainingBatch struct {
	BatchID             int64     `db:"batch_id"`
	BatchNumber         int       `db:"batch_number"`
	Year                int       `db:"year"`
	StartDate           time.Time `db:"start_date"`
	EndDate             time.Time `db:"end_date"`
	Location            string    `db:"location"`
	MaxParticipants     int       `db:"max_participants"`
	RegistrationEndDate time.Time `db:"registration_end_date"`
	Description         *string   `db:"description"`
	IsActive            bool      `db:"is_active"`
	AuditFields
}
