package domain

import "time"

// TrainingBatch is a certification cohort. The registration workflow treats
// batches as read-only; they are created and edited by admin batch management.
type TrainingBatch struct {
	BatchID             int64     `json:"batchID"`
	BatchNumber         int       `json:"batchNumber"`
	Year                int       `json:"year"`
	StartDate           time.Time `json:"startDate"`
	EndDate             time.Time `json:"endDate"`
	Location            string    `json:"location"`
	MaxParticipants     int       `json:"maxParticipants"`
	RegistrationEndDate time.Time `json:"registrationEndDate"`
	Description         *string   `json:"description,omitempty"`
	IsActive            bool      `json:"isActive"`
	AuditFields
}

// IsOpenForRegistration reports whether the batch is active and its
// registration deadline has not passed at the given instant.
func (b TrainingBatch) IsOpenForRegistration(now time.Time) bool {
	return b.IsActive && !now.After(b.RegistrationEndDate)
}
