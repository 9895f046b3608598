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

type PgxEnrollmentRepository struct {
	BaseRepository
}

func newPgxEnrollmentRepository(pool *pgxpool.Pool) portsrepo.EnrollmentRepositoryFacade {
	return &PgxEnrollmentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxEnrollmentRepository implements portsrepo.EnrollmentRepositoryFacade
var _ portsrepo.EnrollmentRepositoryFacade = (*PgxEnrollmentRepository)(nil)

const enrollmentColumns = `enrollment_id, batch_id, coach_id, registered_at, status, notes, is_attended`

func scanEnrollment(row pgx.Row) (*models.Enrollment, error) {
	var m models.Enrollment
	err := row.Scan(
		&m.EnrollmentID,
		&m.BatchID,
		&m.CoachID,
		&m.RegisteredAt,
		&m.Status,
		&m.Notes,
		&m.IsAttended,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxEnrollmentRepository) CreateEnrollment(ctx context.Context, enrollment domain.Enrollment) (*domain.Enrollment, error) {
	query := `
        INSERT INTO enrollments (batch_id, coach_id, registered_at, status, notes, is_attended)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING enrollment_id;
    `
	var enrollmentID int64
	err := r.Pool.QueryRow(ctx, query,
		enrollment.BatchID,
		enrollment.CoachID,
		enrollment.RegisteredAt,
		string(enrollment.Status),
		enrollment.Notes,
		enrollment.IsAttended,
	).Scan(&enrollmentID)
	if err != nil {
		if isUniqueViolation(err, "enrollments_batch_id_coach_id_key") {
			return nil, apperrors.ErrAlreadyRegistered
		}
		return nil, fmt.Errorf("failed to create enrollment: %w", err)
	}

	enrollment.EnrollmentID = enrollmentID
	return &enrollment, nil
}

// ReconcileEnrollments applies the add/remove diff for a coach inside one
// database transaction, so a partial failure never leaves the selection half
// applied.
func (r *PgxEnrollmentRepository) ReconcileEnrollments(ctx context.Context, coachID int64, toAdd, toRemove []int64, registeredAt time.Time) error {
	if len(toAdd) == 0 && len(toRemove) == 0 {
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // Will be ignored if transaction is committed successfully

	batch := &pgx.Batch{}
	insertQuery := `
        INSERT INTO enrollments (batch_id, coach_id, registered_at, status, notes, is_attended)
        VALUES ($1, $2, $3, $4, NULL, FALSE);
    `
	for _, batchID := range toAdd {
		batch.Queue(insertQuery, batchID, coachID, registeredAt, string(domain.EnrollmentPending))
	}
	deleteQuery := `DELETE FROM enrollments WHERE batch_id = $1 AND coach_id = $2;`
	for _, batchID := range toRemove {
		batch.Queue(deleteQuery, batchID, coachID)
	}

	br := tx.SendBatch(ctx, batch)
	for i := 0; i < batch.Len(); i++ {
		if _, err := br.Exec(); err != nil {
			br.Close()
			if isUniqueViolation(err, "enrollments_batch_id_coach_id_key") {
				return apperrors.ErrAlreadyRegistered
			}
			return fmt.Errorf("failed to reconcile enrollments for coach %d: %w", coachID, err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to close enrollment batch: %w", err)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxEnrollmentRepository) UpdateEnrollmentStatus(ctx context.Context, enrollmentID int64, status domain.EnrollmentStatus, notes *string, isAttended *bool) error {
	query := `
        UPDATE enrollments SET
            status = $2,
            notes = COALESCE($3, notes),
            is_attended = COALESCE($4, is_attended)
        WHERE enrollment_id = $1;
    `
	cmdTag, err := r.Pool.Exec(ctx, query, enrollmentID, string(status), notes, isAttended)
	if err != nil {
		return fmt.Errorf("failed to update enrollment %d status: %w", enrollmentID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxEnrollmentRepository) FindEnrollment(ctx context.Context, batchID, coachID int64) (*domain.Enrollment, error) {
	query := `SELECT ` + enrollmentColumns + ` FROM enrollments WHERE batch_id = $1 AND coach_id = $2;`
	m, err := scanEnrollment(r.Pool.QueryRow(ctx, query, batchID, coachID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find enrollment for batch %d coach %d: %w", batchID, coachID, err)
	}

	e := mapping.ToDomainEnrollment(*m)
	return &e, nil
}

func (r *PgxEnrollmentRepository) FindEnrollmentsByCoachID(ctx context.Context, coachID int64) ([]domain.Enrollment, error) {
	query := `SELECT ` + enrollmentColumns + ` FROM enrollments WHERE coach_id = $1 ORDER BY registered_at ASC, enrollment_id ASC;`
	rows, err := r.Pool.Query(ctx, query, coachID)
	if err != nil {
		return nil, fmt.Errorf("failed to find enrollments for coach %d: %w", coachID, err)
	}
	defer rows.Close()

	var ms []models.Enrollment
	for rows.Next() {
		m, err := scanEnrollment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan enrollment row: %w", err)
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating enrollment rows: %w", err)
	}
	return mapping.ToDomainEnrollmentSlice(ms), nil
}

func (r *PgxEnrollmentRepository) CountEnrollmentsByBatchID(ctx context.Context, batchID int64) (int, error) {
	query := `SELECT COUNT(*) FROM enrollments WHERE batch_id = $1;`
	var count int
	if err := r.Pool.QueryRow(ctx, query, batchID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count enrollments for batch %d: %w", batchID, err)
	}
	return count, nil
}

func (r *PgxEnrollmentRepository) FindParticipantsByBatchID(ctx context.Context, batchID int64) ([]domain.BatchParticipant, error) {
	query := `
        SELECT
            e.enrollment_id, e.batch_id, e.coach_id, e.registered_at, e.status,
            e.notes, e.is_attended,
            c.coach_id, c.user_id, c.team_name, c.nickname, c.gender, c.age,
            c.national_id_number, c.address, c.phone_number, c.line_id,
            c.religion, c.has_medical_condition, c.medical_condition_detail,
            c.food_preference, c.coach_status, c.years_of_experience,
            c.prior_participation_count, c.needs_accommodation, c.shirt_size,
            c.expectations, c.location_id, c.is_approved,
            c.registration_completed, c.created_at, c.updated_at,
            u.user_id, u.first_name, u.last_name, u.email, u.image
        FROM enrollments e
        JOIN coaches c ON c.coach_id = e.coach_id
        JOIN users u ON u.user_id = c.user_id
        WHERE e.batch_id = $1
        ORDER BY e.registered_at ASC, e.enrollment_id ASC;
    `
	rows, err := r.Pool.Query(ctx, query, batchID)
	if err != nil {
		return nil, fmt.Errorf("failed to find participants for batch %d: %w", batchID, err)
	}
	defer rows.Close()

	var result []domain.BatchParticipant
	for rows.Next() {
		var (
			me models.Enrollment
			mc models.Coach
			mu models.UserSummary
		)
		err := rows.Scan(
			&me.EnrollmentID,
			&me.BatchID,
			&me.CoachID,
			&me.RegisteredAt,
			&me.Status,
			&me.Notes,
			&me.IsAttended,
			&mc.CoachID,
			&mc.UserID,
			&mc.TeamName,
			&mc.Nickname,
			&mc.Gender,
			&mc.Age,
			&mc.NationalIDNumber,
			&mc.Address,
			&mc.PhoneNumber,
			&mc.LineID,
			&mc.Religion,
			&mc.HasMedicalCondition,
			&mc.MedicalConditionDetail,
			&mc.FoodPreference,
			&mc.CoachStatus,
			&mc.YearsOfExperience,
			&mc.PriorParticipationCount,
			&mc.NeedsAccommodation,
			&mc.ShirtSize,
			&mc.Expectations,
			&mc.LocationID,
			&mc.IsApproved,
			&mc.RegistrationCompleted,
			&mc.CreatedAt,
			&mc.UpdatedAt,
			&mu.UserID,
			&mu.FirstName,
			&mu.LastName,
			&mu.Email,
			&mu.Image,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan participant row: %w", err)
		}
		result = append(result, domain.BatchParticipant{
			Enrollment: mapping.ToDomainEnrollment(me),
			Coach:      mapping.ToDomainCoach(mc),
			User:       mapping.ToDomainUserSummary(mu),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating participant rows: %w", err)
	}
	return result, nil
}
