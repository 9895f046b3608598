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

type PgxCoachRepository struct {
	db *pgxpool.Pool
}

func newPgxCoachRepository(db *pgxpool.Pool) portsrepo.CoachRepositoryFacade {
	return &PgxCoachRepository{db: db}
}

// Ensure PgxCoachRepository implements portsrepo.CoachRepositoryFacade
var _ portsrepo.CoachRepositoryFacade = (*PgxCoachRepository)(nil)

const coachColumns = `coach_id, user_id, team_name, nickname, gender, age, national_id_number, address, phone_number, line_id, religion, has_medical_condition, medical_condition_detail, food_preference, coach_status, years_of_experience, prior_participation_count, needs_accommodation, shirt_size, expectations, location_id, is_approved, registration_completed, created_at, updated_at`

func scanCoach(row pgx.Row) (*models.Coach, error) {
	var m models.Coach
	err := row.Scan(
		&m.CoachID,
		&m.UserID,
		&m.TeamName,
		&m.Nickname,
		&m.Gender,
		&m.Age,
		&m.NationalIDNumber,
		&m.Address,
		&m.PhoneNumber,
		&m.LineID,
		&m.Religion,
		&m.HasMedicalCondition,
		&m.MedicalConditionDetail,
		&m.FoodPreference,
		&m.CoachStatus,
		&m.YearsOfExperience,
		&m.PriorParticipationCount,
		&m.NeedsAccommodation,
		&m.ShirtSize,
		&m.Expectations,
		&m.LocationID,
		&m.IsApproved,
		&m.RegistrationCompleted,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxCoachRepository) SaveCoach(ctx context.Context, coach domain.Coach) (int64, error) {
	m := mapping.ToModelCoach(coach)
	query := `
        INSERT INTO coaches (
            user_id, team_name, nickname, gender, age, national_id_number,
            address, phone_number, line_id, religion, has_medical_condition,
            medical_condition_detail, food_preference, coach_status,
            years_of_experience, prior_participation_count, needs_accommodation,
            shirt_size, expectations, location_id, is_approved,
            registration_completed, created_at, updated_at
        )
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24)
        RETURNING coach_id;
    `
	var coachID int64
	err := r.db.QueryRow(ctx, query,
		m.UserID,
		m.TeamName,
		m.Nickname,
		m.Gender,
		m.Age,
		m.NationalIDNumber,
		m.Address,
		m.PhoneNumber,
		m.LineID,
		m.Religion,
		m.HasMedicalCondition,
		m.MedicalConditionDetail,
		m.FoodPreference,
		m.CoachStatus,
		m.YearsOfExperience,
		m.PriorParticipationCount,
		m.NeedsAccommodation,
		m.ShirtSize,
		m.Expectations,
		m.LocationID,
		m.IsApproved,
		m.RegistrationCompleted,
		m.CreatedAt,
		m.UpdatedAt,
	).Scan(&coachID)
	if err != nil {
		// The unique constraints are the authoritative guard; the service's
		// pre-checks only exist for friendlier early failures.
		if isUniqueViolation(err, "coaches_user_id_key") {
			return 0, apperrors.ErrDuplicateRegistration
		}
		if isUniqueViolation(err, "coaches_national_id_number_key") {
			return 0, apperrors.ErrDuplicateNationalID
		}
		return 0, fmt.Errorf("failed to save coach: %w", err)
	}
	return coachID, nil
}

func (r *PgxCoachRepository) UpdateCoach(ctx context.Context, coach domain.Coach) error {
	m := mapping.ToModelCoach(coach)
	// user_id, is_approved and registration_completed are deliberately absent
	// from the SET list.
	query := `
        UPDATE coaches SET
            team_name = $2,
            nickname = $3,
            gender = $4,
            age = $5,
            national_id_number = $6,
            address = $7,
            phone_number = $8,
            line_id = $9,
            religion = $10,
            has_medical_condition = $11,
            medical_condition_detail = $12,
            food_preference = $13,
            coach_status = $14,
            years_of_experience = $15,
            prior_participation_count = $16,
            needs_accommodation = $17,
            shirt_size = $18,
            expectations = $19,
            location_id = $20,
            updated_at = $21
        WHERE coach_id = $1;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		m.CoachID,
		m.TeamName,
		m.Nickname,
		m.Gender,
		m.Age,
		m.NationalIDNumber,
		m.Address,
		m.PhoneNumber,
		m.LineID,
		m.Religion,
		m.HasMedicalCondition,
		m.MedicalConditionDetail,
		m.FoodPreference,
		m.CoachStatus,
		m.YearsOfExperience,
		m.PriorParticipationCount,
		m.NeedsAccommodation,
		m.ShirtSize,
		m.Expectations,
		m.LocationID,
		time.Now(),
	)
	if err != nil {
		if isUniqueViolation(err, "coaches_national_id_number_key") {
			return apperrors.ErrDuplicateNationalID
		}
		return fmt.Errorf("failed to update coach %d: %w", m.CoachID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCoachNotFound
	}
	return nil
}

func (r *PgxCoachRepository) SetCoachApproval(ctx context.Context, coachID int64, approved bool) error {
	query := `UPDATE coaches SET is_approved = $2, updated_at = $3 WHERE coach_id = $1;`
	cmdTag, err := r.db.Exec(ctx, query, coachID, approved, time.Now())
	if err != nil {
		return fmt.Errorf("failed to set approval for coach %d: %w", coachID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCoachNotFound
	}
	return nil
}

func (r *PgxCoachRepository) DeleteCoach(ctx context.Context, coachID int64) error {
	// Enrollments cascade via the foreign key.
	query := `DELETE FROM coaches WHERE coach_id = $1;`
	cmdTag, err := r.db.Exec(ctx, query, coachID)
	if err != nil {
		return fmt.Errorf("failed to delete coach %d: %w", coachID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCoachNotFound
	}
	return nil
}

func (r *PgxCoachRepository) FindCoachByID(ctx context.Context, coachID int64) (*domain.Coach, error) {
	query := `SELECT ` + coachColumns + ` FROM coaches WHERE coach_id = $1;`
	m, err := scanCoach(r.db.QueryRow(ctx, query, coachID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCoachNotFound
		}
		return nil, fmt.Errorf("failed to find coach by ID %d: %w", coachID, err)
	}

	c := mapping.ToDomainCoach(*m)
	return &c, nil
}

func (r *PgxCoachRepository) FindCoachByUserID(ctx context.Context, userID int64) (*domain.Coach, error) {
	query := `SELECT ` + coachColumns + ` FROM coaches WHERE user_id = $1;`
	m, err := scanCoach(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find coach by user ID %d: %w", userID, err)
	}

	c := mapping.ToDomainCoach(*m)
	return &c, nil
}

func (r *PgxCoachRepository) FindCoachByNationalID(ctx context.Context, nationalID string) (*domain.Coach, error) {
	query := `SELECT ` + coachColumns + ` FROM coaches WHERE national_id_number = $1;`
	m, err := scanCoach(r.db.QueryRow(ctx, query, nationalID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find coach by national ID: %w", err)
	}

	c := mapping.ToDomainCoach(*m)
	return &c, nil
}

// FindCoachWithDetails loads the coach row joined with its location and the
// restricted user projection, then attaches the coach's enrollments with
// batch details.
func (r *PgxCoachRepository) FindCoachWithDetails(ctx context.Context, coachID int64) (*domain.CoachWithDetails, error) {
	query := `
        SELECT
            c.coach_id, c.user_id, c.team_name, c.nickname, c.gender, c.age,
            c.national_id_number, c.address, c.phone_number, c.line_id,
            c.religion, c.has_medical_condition, c.medical_condition_detail,
            c.food_preference, c.coach_status, c.years_of_experience,
            c.prior_participation_count, c.needs_accommodation, c.shirt_size,
            c.expectations, c.location_id, c.is_approved,
            c.registration_completed, c.created_at, c.updated_at,
            l.location_id, l.district, l.county, l.province, l.region,
            l.created_at, l.updated_at,
            u.user_id, u.first_name, u.last_name, u.email, u.image
        FROM coaches c
        JOIN locations l ON l.location_id = c.location_id
        JOIN users u ON u.user_id = c.user_id
        WHERE c.coach_id = $1;
    `
	var (
		mc models.Coach
		ml models.Location
		mu models.UserSummary
	)
	err := r.db.QueryRow(ctx, query, coachID).Scan(
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
		&ml.LocationID,
		&ml.District,
		&ml.County,
		&ml.Province,
		&ml.Region,
		&ml.CreatedAt,
		&ml.UpdatedAt,
		&mu.UserID,
		&mu.FirstName,
		&mu.LastName,
		&mu.Email,
		&mu.Image,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCoachNotFound
		}
		return nil, fmt.Errorf("failed to find coach %d with details: %w", coachID, err)
	}

	enrollments, err := r.findEnrollmentsWithBatches(ctx, mc.CoachID)
	if err != nil {
		return nil, err
	}

	details := domain.CoachWithDetails{
		Coach:       mapping.ToDomainCoach(mc),
		Location:    mapping.ToDomainLocation(ml),
		User:        mapping.ToDomainUserSummary(mu),
		Enrollments: enrollments,
	}
	return &details, nil
}

func (r *PgxCoachRepository) FindCoaches(ctx context.Context, limit, offset int) ([]domain.CoachWithDetails, error) {
	query := `SELECT coach_id FROM coaches ORDER BY created_at DESC, coach_id DESC LIMIT $1 OFFSET $2;`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list coaches: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan coach ID: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating coach IDs: %w", err)
	}

	coaches := make([]domain.CoachWithDetails, 0, len(ids))
	for _, id := range ids {
		details, err := r.FindCoachWithDetails(ctx, id)
		if err != nil {
			return nil, err
		}
		coaches = append(coaches, *details)
	}
	return coaches, nil
}

func (r *PgxCoachRepository) findEnrollmentsWithBatches(ctx context.Context, coachID int64) ([]domain.EnrollmentWithBatch, error) {
	query := `
        SELECT
            e.enrollment_id, e.batch_id, e.coach_id, e.registered_at, e.status,
            e.notes, e.is_attended,
            b.batch_id, b.batch_number, b.year, b.start_date, b.end_date,
            b.location, b.max_participants, b.registration_end_date,
            b.description, b.is_active, b.created_at, b.updated_at
        FROM enrollments e
        JOIN training_batches b ON b.batch_id = e.batch_id
        WHERE e.coach_id = $1
        ORDER BY e.registered_at ASC, e.enrollment_id ASC;
    `
	rows, err := r.db.Query(ctx, query, coachID)
	if err != nil {
		return nil, fmt.Errorf("failed to find enrollments for coach %d: %w", coachID, err)
	}
	defer rows.Close()

	var result []domain.EnrollmentWithBatch
	for rows.Next() {
		var (
			me models.Enrollment
			mb models.TrainingBatch
		)
		err := rows.Scan(
			&me.EnrollmentID,
			&me.BatchID,
			&me.CoachID,
			&me.RegisteredAt,
			&me.Status,
			&me.Notes,
			&me.IsAttended,
			&mb.BatchID,
			&mb.BatchNumber,
			&mb.Year,
			&mb.StartDate,
			&mb.EndDate,
			&mb.Location,
			&mb.MaxParticipants,
			&mb.RegistrationEndDate,
			&mb.Description,
			&mb.IsActive,
			&mb.CreatedAt,
			&mb.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan enrollment row: %w", err)
		}
		result = append(result, domain.EnrollmentWithBatch{
			Enrollment: mapping.ToDomainEnrollment(me),
			Batch:      mapping.ToDomainTrainingBatch(mb),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating enrollment rows: %w", err)
	}
	return result, nil
}
