package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cabindev/sdnfutsal/internal/apperrors"
	"github.com/cabindev/sdnfutsal/internal/core/domain"
	portsrepo "github.com/cabindev/sdnfutsal/internal/core/ports/repositories"
	"github.com/cabindev/sdnfutsal/internal/models"
	"github.com/cabindev/sdnfutsal/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxBatchRepository struct {
	db *pgxpool.Pool
}

func newPgxBatchRepository(db *pgxpool.Pool) portsrepo.BatchRepositoryFacade {
	return &PgxBatchRepository{db: db}
}

// Ensure PgxBatchRepository implements portsrepo.BatchRepositoryFacade
var _ portsrepo.BatchRepositoryFacade = (*PgxBatchRepository)(nil)

const batchColumns = `batch_id, batch_number, year, start_date, end_date, location, max_participants, registration_end_date, description, is_active, created_at, updated_at`

func scanBatch(row pgx.Row) (*models.TrainingBatch, error) {
	var m models.TrainingBatch
	err := row.Scan(
		&m.BatchID,
		&m.BatchNumber,
		&m.Year,
		&m.StartDate,
		&m.EndDate,
		&m.Location,
		&m.MaxParticipants,
		&m.RegistrationEndDate,
		&m.Description,
		&m.IsActive,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxBatchRepository) SaveBatch(ctx context.Context, batch domain.TrainingBatch) (int64, error) {
	m := mapping.ToModelTrainingBatch(batch)
	query := `
        INSERT INTO training_batches (
            batch_number, year, start_date, end_date, location,
            max_participants, registration_end_date, description, is_active,
            created_at, updated_at
        )
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        RETURNING batch_id;
    `
	var batchID int64
	err := r.db.QueryRow(ctx, query,
		m.BatchNumber,
		m.Year,
		m.StartDate,
		m.EndDate,
		m.Location,
		m.MaxParticipants,
		m.RegistrationEndDate,
		m.Description,
		m.IsActive,
		m.CreatedAt,
		m.UpdatedAt,
	).Scan(&batchID)
	if err != nil {
		if isUniqueViolation(err, "training_batches_batch_number_year_key") {
			return 0, fmt.Errorf("batch %d/%d already exists: %w", m.BatchNumber, m.Year, apperrors.ErrDuplicate)
		}
		return 0, fmt.Errorf("failed to save batch: %w", err)
	}
	return batchID, nil
}

func (r *PgxBatchRepository) UpdateBatch(ctx context.Context, batch domain.TrainingBatch) error {
	m := mapping.ToModelTrainingBatch(batch)
	query := `
        UPDATE training_batches SET
            batch_number = $2,
            year = $3,
            start_date = $4,
            end_date = $5,
            location = $6,
            max_participants = $7,
            registration_end_date = $8,
            description = $9,
            is_active = $10,
            updated_at = $11
        WHERE batch_id = $1;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		m.BatchID,
		m.BatchNumber,
		m.Year,
		m.StartDate,
		m.EndDate,
		m.Location,
		m.MaxParticipants,
		m.RegistrationEndDate,
		m.Description,
		m.IsActive,
		time.Now(),
	)
	if err != nil {
		if isUniqueViolation(err, "training_batches_batch_number_year_key") {
			return fmt.Errorf("batch %d/%d already exists: %w", m.BatchNumber, m.Year, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to update batch %d: %w", m.BatchID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxBatchRepository) FindBatchByID(ctx context.Context, batchID int64) (*domain.TrainingBatch, error) {
	query := `SELECT ` + batchColumns + ` FROM training_batches WHERE batch_id = $1;`
	m, err := scanBatch(r.db.QueryRow(ctx, query, batchID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find batch by ID %d: %w", batchID, err)
	}

	b := mapping.ToDomainTrainingBatch(*m)
	return &b, nil
}

func (r *PgxBatchRepository) FindBatchesByIDs(ctx context.Context, batchIDs []int64) ([]domain.TrainingBatch, error) {
	if len(batchIDs) == 0 {
		return nil, nil
	}
	query := `SELECT ` + batchColumns + ` FROM training_batches WHERE batch_id = ANY($1) ORDER BY year ASC, batch_number ASC;`
	rows, err := r.db.Query(ctx, query, batchIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to find batches by IDs: %w", err)
	}
	defer rows.Close()

	return collectBatches(rows)
}

func (r *PgxBatchRepository) FindBatches(ctx context.Context, activeOnly bool, limit, offset int) ([]domain.TrainingBatch, error) {
	query := `SELECT ` + batchColumns + ` FROM training_batches`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY year DESC, batch_number DESC LIMIT $1 OFFSET $2;`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list batches: %w", err)
	}
	defer rows.Close()

	return collectBatches(rows)
}

func collectBatches(rows pgx.Rows) ([]domain.TrainingBatch, error) {
	var ms []models.TrainingBatch
	for rows.Next() {
		m, err := scanBatch(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan batch row: %w", err)
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating batch rows: %w", err)
	}
	return mapping.ToDomainTrainingBatchSlice(ms), nil
}
