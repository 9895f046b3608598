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

type PgxLocationRepository struct {
	db *pgxpool.Pool
}

func newPgxLocationRepository(db *pgxpool.Pool) portsrepo.LocationRepositoryFacade {
	return &PgxLocationRepository{db: db}
}

// Ensure PgxLocationRepository implements portsrepo.LocationRepositoryFacade
var _ portsrepo.LocationRepositoryFacade = (*PgxLocationRepository)(nil)

// ResolveLocation finds or creates the row for the (district, county,
// province) triple in one round trip. The unique index on the triple makes
// concurrent resolutions of the same triple converge on one row, and the
// conflict branch corrects a drifted region value in place.
func (r *PgxLocationRepository) ResolveLocation(ctx context.Context, district, county, province string, region *string) (*domain.Location, error) {
	now := time.Now()
	query := `
        INSERT INTO locations (district, county, province, region, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $5)
        ON CONFLICT (district, county, province) DO UPDATE SET
            region = EXCLUDED.region,
            updated_at = EXCLUDED.updated_at
        RETURNING location_id, district, county, province, region, created_at, updated_at;
    `
	var m models.Location
	err := r.db.QueryRow(ctx, query, district, county, province, region, now).Scan(
		&m.LocationID,
		&m.District,
		&m.County,
		&m.Province,
		&m.Region,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrLocationPersistence, err)
	}

	loc := mapping.ToDomainLocation(m)
	return &loc, nil
}

func (r *PgxLocationRepository) FindLocationByID(ctx context.Context, locationID int64) (*domain.Location, error) {
	query := `
        SELECT location_id, district, county, province, region, created_at, updated_at
        FROM locations
        WHERE location_id = $1;
    `
	var m models.Location
	err := r.db.QueryRow(ctx, query, locationID).Scan(
		&m.LocationID,
		&m.District,
		&m.County,
		&m.Province,
		&m.Region,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find location by ID %d: %w", locationID, err)
	}

	loc := mapping.ToDomainLocation(m)
	return &loc, nil
}
