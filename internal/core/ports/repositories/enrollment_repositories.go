package repositories

import (
	"context"
	"time"

	"github.com/cabindev/sdnfutsal/internal/core/domain"
)

// EnrollmentReader defines read operations for enrollment data
type EnrollmentReader interface {
	// FindEnrollmentsByCoachID retrieves all enrollments of a coach.
	FindEnrollmentsByCoachID(ctx context.Context, coachID int64) ([]domain.Enrollment, error)

	// FindEnrollment retrieves the enrollment of a coach in a batch, if any.
	FindEnrollment(ctx context.Context, batchID, coachID int64) (*domain.Enrollment, error)

	// CountEnrollmentsByBatchID counts the participants of a batch.
	CountEnrollmentsByBatchID(ctx context.Context, batchID int64) (int, error)

	// FindParticipantsByBatchID retrieves the enrollments of a batch joined
	// with coach profiles and restricted user projections.
	FindParticipantsByBatchID(ctx context.Context, batchID int64) ([]domain.BatchParticipant, error)
}

// EnrollmentWriter defines write operations for enrollment data
type EnrollmentWriter interface {
	// CreateEnrollment persists a new PENDING enrollment and returns it.
	CreateEnrollment(ctx context.Context, enrollment domain.Enrollment) (*domain.Enrollment, error)

	// ReconcileEnrollments applies an add/remove diff for a coach as a single
	// transaction: created rows start PENDING and not attended, removed batch
	// IDs have their rows deleted. A failure rolls the whole diff back.
	ReconcileEnrollments(ctx context.Context, coachID int64, toAdd, toRemove []int64, registeredAt time.Time) error

	// UpdateEnrollmentStatus sets the status, notes and attendance of an
	// enrollment (admin participant workflow).
	UpdateEnrollmentStatus(ctx context.Context, enrollmentID int64, status domain.EnrollmentStatus, notes *string, isAttended *bool) error
}

// EnrollmentRepositoryFacade combines all enrollment-related repository interfaces
type EnrollmentRepositoryFacade interface {
	EnrollmentReader
	EnrollmentWriter
}
