package services

import (
	"context"

	"github.com/cabindev/sdnfutsal/internal/core/domain"
	"github.com/cabindev/sdnfutsal/internal/dto"
)

// CoachRegistrationSvc is the registration wizard workflow: normalize, guard,
// resolve location, write the coach record, reconcile enrollments, assemble
// the result.
type CoachRegistrationSvc interface {
	// RegisterCoach creates a coach profile for the acting user (or, for
	// admins, an explicitly supplied target user).
	RegisterCoach(ctx context.Context, actingUserID int64, req dto.CoachRegistrationRequest) (*domain.CoachWithDetails, error)

	// UpdateCoach updates an existing coach profile and reconciles its batch
	// enrollments against the submitted selection.
	UpdateCoach(ctx context.Context, actingUserID, coachID int64, req dto.CoachRegistrationRequest) (*domain.CoachWithDetails, error)
}

// CoachReaderSvc defines read operations for coach data
type CoachReaderSvc interface {
	// GetCoachWithDetails retrieves a coach joined with its relations.
	GetCoachWithDetails(ctx context.Context, coachID int64) (*domain.CoachWithDetails, error)

	// ListCoaches retrieves a paginated list of coaches (admin view).
	ListCoaches(ctx context.Context, actingUserID int64, limit, offset int) ([]domain.CoachWithDetails, error)
}

// CoachAdminSvc defines the admin-only coach management operations
type CoachAdminSvc interface {
	// ApproveCoach sets the approval flag of a coach.
	ApproveCoach(ctx context.Context, actingUserID, coachID int64, approved bool) error

	// DeleteCoach removes a coach record entirely.
	DeleteCoach(ctx context.Context, actingUserID, coachID int64) error
}

// CoachSvcFacade combines all coach-related service interfaces
type CoachSvcFacade interface {
	CoachRegistrationSvc
	CoachReaderSvc
	CoachAdminSvc
}
