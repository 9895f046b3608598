package repositories

import (
	"context"

	"github.com/cabindev/sdnfutsal/internal/core/domain"
)

// BatchReader defines read operations for training batch data
type BatchReader interface {
	// FindBatchByID retrieves a batch by its ID.
	FindBatchByID(ctx context.Context, batchID int64) (*domain.TrainingBatch, error)

	// FindBatchesByIDs retrieves the batches whose IDs exist among the given
	// set. Unknown IDs are simply absent from the result.
	FindBatchesByIDs(ctx context.Context, batchIDs []int64) ([]domain.TrainingBatch, error)

	// FindBatches retrieves a paginated list of batches, optionally only
	// active ones.
	FindBatches(ctx context.Context, activeOnly bool, limit, offset int) ([]domain.TrainingBatch, error)
}

// BatchWriter defines write operations for training batch data (admin only)
type BatchWriter interface {
	// SaveBatch persists a new batch and returns the assigned ID.
	SaveBatch(ctx context.Context, batch domain.TrainingBatch) (int64, error)

	// UpdateBatch updates an existing batch.
	UpdateBatch(ctx context.Context, batch domain.TrainingBatch) error
}

// BatchRepositoryFacade combines all batch-related repository interfaces
type BatchRepositoryFacade interface {
	BatchReader
	BatchWriter
}
