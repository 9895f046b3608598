package domain

import "time"

// EnrollmentStatus tracks a batch participant's approval state. The
// registration workflow only ever creates PENDING rows or deletes rows; status
// transitions belong to the admin participant workflow.
type EnrollmentStatus string

const (
	EnrollmentPending  EnrollmentStatus = "PENDING"
	EnrollmentApproved EnrollmentStatus = "APPROVED"
	EnrollmentRejected EnrollmentStatus = "REJECTED"
	EnrollmentCanceled EnrollmentStatus = "CANCELED"
)

// Valid reports whether s is one of the recognized enrollment statuses.
func (s EnrollmentStatus) Valid() bool {
	switch s {
	case EnrollmentPending, EnrollmentApproved, EnrollmentRejected, EnrollmentCanceled:
		return true
	}
	return false
}

// Enrollment links a coach to a training batch. Unique on (batchID, coachID).
type Enrollment struct {
	EnrollmentID int64            `json:"enrollmentID"`
	BatchID      int64            `json:"batchID"`
	CoachID      int64            `json:"coachID"`
	RegisteredAt time.Time        `json:"registeredAt"`
	Status       EnrollmentStatus `json:"status"`
	Notes        *string          `json:"notes,omitempty"`
	IsAttended   bool             `json:"isAttended"`
}

// EnrollmentWithBatch is an enrollment joined with its batch details.
type EnrollmentWithBatch struct {
	Enrollment
	Batch TrainingBatch `json:"batch"`
}

// BatchParticipant is an enrollment joined with the coach profile and the
// restricted user projection, used by the admin participant views and export.
type BatchParticipant struct {
	Enrollment
	Coach Coach       `json:"coach"`
	User  UserSummary `json:"user"`
}
