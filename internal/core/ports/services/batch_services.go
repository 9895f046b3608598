package services

import (
	"context"

	"github.com/cabindev/sdnfutsal/internal/core/domain"
	"github.com/cabindev/sdnfutsal/internal/dto"
)

// BatchReaderSvc defines read operations for training batches
type BatchReaderSvc interface {
	// GetBatchByID retrieves a batch by ID.
	GetBatchByID(ctx context.Context, batchID int64) (*domain.TrainingBatch, error)

	// ListBatches retrieves a paginated list of batches.
	ListBatches(ctx context.Context, activeOnly bool, limit, offset int) ([]domain.TrainingBatch, error)
}

// BatchEnrollSvc is the standalone public enroll flow. It is the only entry
// point that enforces the batch capacity and registration deadline; the wizard
// reconciler deliberately does not share it.
type BatchEnrollSvc interface {
	// RegisterCoachToBatch enrolls a coach into a batch after checking, in
	// order: coach exists, batch open, batch not full, not already registered.
	RegisterCoachToBatch(ctx context.Context, coachID, batchID int64) (*domain.Enrollment, error)
}

// BatchAdminSvc defines the admin-only batch and participant management
type BatchAdminSvc interface {
	// CreateBatch creates a new training batch.
	CreateBatch(ctx context.Context, actingUserID int64, req dto.SaveBatchRequest) (*domain.TrainingBatch, error)

	// UpdateBatch updates an existing training batch.
	UpdateBatch(ctx context.Context, actingUserID, batchID int64, req dto.SaveBatchRequest) (*domain.TrainingBatch, error)

	// ListParticipants retrieves the participants of a batch.
	ListParticipants(ctx context.Context, actingUserID, batchID int64) ([]domain.BatchParticipant, error)

	// UpdateEnrollmentStatus applies a participant status transition.
	UpdateEnrollmentStatus(ctx context.Context, actingUserID, enrollmentID int64, req dto.UpdateEnrollmentStatusRequest) error

	// ExportParticipantsCSV renders the participants of a batch as CSV.
	ExportParticipantsCSV(ctx context.Context, actingUserID, batchID int64) ([]byte, error)
}

// BatchSvcFacade combines all batch-related service interfaces
type BatchSvcFacade interface {
	BatchReaderSvc
	BatchEnrollSvc
	BatchAdminSvc
}
