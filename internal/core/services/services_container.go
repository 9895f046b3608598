package services

import (
	"github.com/cabindev/sdnfutsal/internal/core/domain"
	portsrepo "github.com/cabindev/sdnfutsal/internal/core/ports/repositories"
	portssvc "github.com/cabindev/sdnfutsal/internal/core/ports/services"
	"github.com/cabindev/sdnfutsal/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, revalidator portssvc.ViewRevalidator, clock domain.Clock) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{
		Revalidator: revalidator,
	}

	container.User = NewUserService(repos.UserRepo)
	container.Coach = NewCoachService(
		repos.CoachRepo,
		repos.UserRepo,
		repos.LocationRepo,
		repos.BatchRepo,
		repos.EnrollmentRepo,
		revalidator,
		clock,
	)
	container.Batch = NewBatchService(
		repos.BatchRepo,
		repos.CoachRepo,
		repos.EnrollmentRepo,
		repos.UserRepo,
		revalidator,
		clock,
	)
	container.Token = NewTokenService(cfg)
	container.GoogleOAuth = NewGoogleOAuthService(cfg)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.UserSvcFacade  = (*userService)(nil)
	_ portssvc.CoachSvcFacade = (*coachService)(nil)
	_ portssvc.BatchSvcFacade = (*batchService)(nil)
)
