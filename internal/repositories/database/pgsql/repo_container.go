package pgsql

import (
	portsrepo "github.com/cabindev/sdnfutsal/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	userRepo := newPgxUserRepository(dbPool)
	coachRepo := newPgxCoachRepository(dbPool)
	locationRepo := newPgxLocationRepository(dbPool)
	batchRepo := newPgxBatchRepository(dbPool)
	enrollmentRepo := newPgxEnrollmentRepository(dbPool)

	return portsrepo.RepositoryProvider{
		UserRepo:       userRepo,
		CoachRepo:      coachRepo,
		LocationRepo:   locationRepo,
		BatchRepo:      batchRepo,
		EnrollmentRepo: enrollmentRepo,
	}
}
