package repositories

import (
	"context"

	"github.com/cabindev/sdnfutsal/internal/core/domain"
)

// CoachReader defines read operations for coach data
type CoachReader interface {
	// FindCoachByID retrieves a coach by its ID.
	FindCoachByID(ctx context.Context, coachID int64) (*domain.Coach, error)

	// FindCoachByUserID retrieves the coach owned by the given user, if any.
	FindCoachByUserID(ctx context.Context, userID int64) (*domain.Coach, error)

	// FindCoachByNationalID retrieves the coach holding the given national ID
	// number, if any.
	FindCoachByNationalID(ctx context.Context, nationalID string) (*domain.Coach, error)

	// FindCoachWithDetails retrieves a coach joined with its location, the
	// restricted user projection, and enrollments with batch details.
	FindCoachWithDetails(ctx context.Context, coachID int64) (*domain.CoachWithDetails, error)

	// FindCoaches retrieves a paginated list of coaches with details.
	FindCoaches(ctx context.Context, limit, offset int) ([]domain.CoachWithDetails, error)
}

// CoachWriter defines write operations for coach data
type CoachWriter interface {
	// SaveCoach persists a new coach and returns the assigned ID.
	SaveCoach(ctx context.Context, coach domain.Coach) (int64, error)

	// UpdateCoach updates the mutable profile fields of an existing coach.
	// userId, isApproved and registrationCompleted are never altered.
	UpdateCoach(ctx context.Context, coach domain.Coach) error

	// SetCoachApproval sets the admin approval flag.
	SetCoachApproval(ctx context.Context, coachID int64, approved bool) error

	// DeleteCoach removes a coach record entirely (admin action).
	DeleteCoach(ctx context.Context, coachID int64) error
}

// CoachRepositoryFacade combines all coach-related repository interfaces
type CoachRepositoryFacade interface {
	CoachReader
	CoachWriter
}
