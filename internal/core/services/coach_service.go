package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/cabindev/sdnfutsal/internal/apperrors"
	"github.com/cabindev/sdnfutsal/internal/core/domain"
	portsrepo "github.com/cabindev/sdnfutsal/internal/core/ports/repositories"
	portssvc "github.com/cabindev/sdnfutsal/internal/core/ports/services"
	"github.com/cabindev/sdnfutsal/internal/dto"
)

type coachService struct {
	BaseService
	coachRepo      portsrepo.CoachRepositoryFacade
	userRepo       portsrepo.UserRepositoryFacade
	locationRepo   portsrepo.LocationRepositoryFacade
	batchRepo      portsrepo.BatchRepositoryFacade
	enrollmentRepo portsrepo.EnrollmentRepositoryFacade
	revalidator    portssvc.ViewRevalidator
	clock          domain.Clock
}

// NewCoachService creates a new coach service
func NewCoachService(
	coachRepo portsrepo.CoachRepositoryFacade,
	userRepo portsrepo.UserRepositoryFacade,
	locationRepo portsrepo.LocationRepositoryFacade,
	batchRepo portsrepo.BatchRepositoryFacade,
	enrollmentRepo portsrepo.EnrollmentRepositoryFacade,
	revalidator portssvc.ViewRevalidator,
	clock domain.Clock,
) portssvc.CoachSvcFacade {
	return &coachService{
		coachRepo:      coachRepo,
		userRepo:       userRepo,
		locationRepo:   locationRepo,
		batchRepo:      batchRepo,
		enrollmentRepo: enrollmentRepo,
		revalidator:    revalidator,
		clock:          clock,
	}
}

// Ensure coachService implements portssvc.CoachSvcFacade
var _ portssvc.CoachSvcFacade = (*coachService)(nil)

// RegisterCoach runs the registration workflow: resolve the owning user,
// guard against duplicates, resolve the location, persist the profile, then
// enroll into the first selected batch if it exists.
func (s *coachService) RegisterCoach(ctx context.Context, actingUserID int64, req dto.CoachRegistrationRequest) (*domain.CoachWithDetails, error) {
	targetUserID, err := s.resolveTargetUser(ctx, actingUserID, req.TargetUserID)
	if err != nil {
		return nil, err
	}

	if _, err := s.userRepo.FindUserByID(ctx, targetUserID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	// Early duplicate checks for friendlier errors. The unique constraints on
	// user_id and national_id_number remain the authoritative guard, so a
	// concurrent double submit still fails cleanly at SaveCoach.
	if _, err := s.coachRepo.FindCoachByUserID(ctx, targetUserID); err == nil {
		return nil, apperrors.ErrDuplicateRegistration
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}
	if _, err := s.coachRepo.FindCoachByNationalID(ctx, req.NationalIDNumber); err == nil {
		return nil, apperrors.ErrDuplicateNationalID
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	location, err := s.locationRepo.ResolveLocation(ctx, req.District, req.County, req.Province, req.Region)
	if err != nil {
		s.LogError(ctx, err, "Failed to resolve location", "district", req.District)
		return nil, err
	}

	now := s.clock.Now()
	coach := coachFromRequest(req)
	coach.UserID = targetUserID
	coach.LocationID = location.LocationID
	coach.IsApproved = false
	coach.RegistrationCompleted = true
	coach.CreatedAt = now
	coach.UpdatedAt = now

	coachID, err := s.coachRepo.SaveCoach(ctx, coach)
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Coach registered", "coach_id", coachID, "user_id", targetUserID)

	// Registration takes at most one batch, checked for existence only. A
	// vanished batch is skipped rather than failing the whole registration;
	// capacity and deadline are enforced by the standalone enroll flow.
	if len(req.SelectedBatchIDs) > 0 {
		batchID := req.SelectedBatchIDs[0]
		if _, err := s.batchRepo.FindBatchByID(ctx, batchID); err == nil {
			_, err = s.enrollmentRepo.CreateEnrollment(ctx, domain.Enrollment{
				BatchID:      batchID,
				CoachID:      coachID,
				RegisteredAt: now,
				Status:       domain.EnrollmentPending,
			})
			if err != nil && !errors.Is(err, apperrors.ErrAlreadyRegistered) {
				return nil, err
			}
		} else if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		} else {
			s.LogDebug(ctx, "Skipping enrollment into unknown batch", "batch_id", batchID)
		}
	}

	details, err := s.coachRepo.FindCoachWithDetails(ctx, coachID)
	if err != nil {
		return nil, err
	}
	details.SelectedBatchIDs = req.SelectedBatchIDs

	s.revalidator.RevalidateViews(ctx,
		portssvc.ViewCoachList,
		portssvc.ViewParticipantsList,
		portssvc.ViewBatchList,
	)
	return details, nil
}

// UpdateCoach updates the mutable profile fields and reconciles the coach's
// enrollments against the full submitted batch selection.
func (s *coachService) UpdateCoach(ctx context.Context, actingUserID, coachID int64, req dto.CoachRegistrationRequest) (*domain.CoachWithDetails, error) {
	existing, err := s.coachRepo.FindCoachByID(ctx, coachID)
	if err != nil {
		return nil, err
	}

	if existing.UserID != actingUserID {
		acting, err := s.userRepo.FindUserByID(ctx, actingUserID)
		if err != nil {
			return nil, err
		}
		if !acting.IsAdmin() {
			return nil, apperrors.ErrForbidden
		}
	}

	// The national ID uniqueness check only applies when the number actually
	// changes, otherwise the coach's own row would trip it.
	if req.NationalIDNumber != existing.NationalIDNumber {
		if other, err := s.coachRepo.FindCoachByNationalID(ctx, req.NationalIDNumber); err == nil && other.CoachID != coachID {
			return nil, apperrors.ErrDuplicateNationalID
		} else if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
	}

	location, err := s.locationRepo.ResolveLocation(ctx, req.District, req.County, req.Province, req.Region)
	if err != nil {
		s.LogError(ctx, err, "Failed to resolve location", "district", req.District)
		return nil, err
	}

	updated := coachFromRequest(req)
	updated.CoachID = coachID
	updated.UserID = existing.UserID
	updated.LocationID = location.LocationID
	updated.IsApproved = existing.IsApproved
	updated.RegistrationCompleted = existing.RegistrationCompleted
	// Age is only mandatory at registration; an absent value on update keeps
	// the stored one.
	if updated.Age <= 0 {
		updated.Age = existing.Age
	}

	if err := s.coachRepo.UpdateCoach(ctx, updated); err != nil {
		return nil, err
	}

	selected, err := s.reconcileSelection(ctx, coachID, req.SelectedBatchIDs)
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Coach updated", "coach_id", coachID)

	details, err := s.coachRepo.FindCoachWithDetails(ctx, coachID)
	if err != nil {
		return nil, err
	}
	details.SelectedBatchIDs = selected

	s.revalidator.RevalidateViews(ctx,
		portssvc.ViewCoachList,
		portssvc.ViewParticipantsList,
		portssvc.ViewBatchList,
		portssvc.ViewCoachDetail,
	)
	return details, nil
}

// reconcileSelection diffs the submitted batch IDs against the coach's
// current enrollments and applies the add/remove set in one transaction.
// Unknown batch IDs are dropped from the selection; no capacity or deadline
// checks apply on this path. Returns the validated selection.
func (s *coachService) reconcileSelection(ctx context.Context, coachID int64, selectedBatchIDs []int64) ([]int64, error) {
	validBatches, err := s.batchRepo.FindBatchesByIDs(ctx, selectedBatchIDs)
	if err != nil {
		return nil, err
	}
	valid := make(map[int64]struct{}, len(validBatches))
	for _, b := range validBatches {
		valid[b.BatchID] = struct{}{}
	}
	selected := make([]int64, 0, len(selectedBatchIDs))
	for _, id := range selectedBatchIDs {
		if _, ok := valid[id]; ok {
			selected = append(selected, id)
		}
	}

	current, err := s.enrollmentRepo.FindEnrollmentsByCoachID(ctx, coachID)
	if err != nil {
		return nil, err
	}
	enrolled := make(map[int64]struct{}, len(current))
	for _, e := range current {
		enrolled[e.BatchID] = struct{}{}
	}

	wanted := make(map[int64]struct{}, len(selected))
	var toAdd []int64
	for _, id := range selected {
		wanted[id] = struct{}{}
		if _, ok := enrolled[id]; !ok {
			toAdd = append(toAdd, id)
		}
	}
	var toRemove []int64
	for _, e := range current {
		if _, ok := wanted[e.BatchID]; !ok {
			toRemove = append(toRemove, e.BatchID)
		}
	}

	if err := s.enrollmentRepo.ReconcileEnrollments(ctx, coachID, toAdd, toRemove, s.clock.Now()); err != nil {
		return nil, err
	}
	return selected, nil
}

func (s *coachService) GetCoachWithDetails(ctx context.Context, coachID int64) (*domain.CoachWithDetails, error) {
	return s.coachRepo.FindCoachWithDetails(ctx, coachID)
}

func (s *coachService) ListCoaches(ctx context.Context, actingUserID int64, limit, offset int) ([]domain.CoachWithDetails, error) {
	if err := s.requireAdmin(ctx, actingUserID); err != nil {
		return nil, err
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.coachRepo.FindCoaches(ctx, limit, offset)
}

func (s *coachService) ApproveCoach(ctx context.Context, actingUserID, coachID int64, approved bool) error {
	if err := s.requireAdmin(ctx, actingUserID); err != nil {
		return err
	}
	if err := s.coachRepo.SetCoachApproval(ctx, coachID, approved); err != nil {
		return err
	}
	s.LogInfo(ctx, "Coach approval changed", "coach_id", coachID, "approved", approved)
	s.revalidator.RevalidateViews(ctx, portssvc.ViewCoachList, portssvc.ViewCoachDetail)
	return nil
}

func (s *coachService) DeleteCoach(ctx context.Context, actingUserID, coachID int64) error {
	if err := s.requireAdmin(ctx, actingUserID); err != nil {
		return err
	}
	if err := s.coachRepo.DeleteCoach(ctx, coachID); err != nil {
		return err
	}
	s.LogInfo(ctx, "Coach deleted", "coach_id", coachID)
	s.revalidator.RevalidateViews(ctx,
		portssvc.ViewCoachList,
		portssvc.ViewParticipantsList,
		portssvc.ViewBatchList,
	)
	return nil
}

// resolveTargetUser decides which user the new coach profile belongs to. A
// target differing from the acting user requires the administrator role; for
// regular users the field is ignored rather than rejected.
func (s *coachService) resolveTargetUser(ctx context.Context, actingUserID int64, targetUserID *int64) (int64, error) {
	if targetUserID == nil || *targetUserID == actingUserID {
		return actingUserID, nil
	}
	acting, err := s.userRepo.FindUserByID(ctx, actingUserID)
	if err != nil {
		return 0, fmt.Errorf("failed to load acting user: %w", err)
	}
	if !acting.IsAdmin() {
		return actingUserID, nil
	}
	return *targetUserID, nil
}

func (s *coachService) requireAdmin(ctx context.Context, actingUserID int64) error {
	acting, err := s.userRepo.FindUserByID(ctx, actingUserID)
	if err != nil {
		return err
	}
	if !acting.IsAdmin() {
		return apperrors.ErrForbidden
	}
	return nil
}

func coachFromRequest(req dto.CoachRegistrationRequest) domain.Coach {
	return domain.Coach{
		TeamName:                req.TeamName,
		Nickname:                req.Nickname,
		Gender:                  req.Gender,
		Age:                     req.Age,
		NationalIDNumber:        req.NationalIDNumber,
		Address:                 req.Address,
		PhoneNumber:             req.PhoneNumber,
		LineID:                  req.LineID,
		Religion:                req.Religion,
		HasMedicalCondition:     req.HasMedicalCondition,
		MedicalConditionDetail:  req.MedicalConditionDetail,
		FoodPreference:          req.FoodPreference,
		CoachStatus:             req.CoachStatus,
		YearsOfExperience:       req.YearsOfExperience,
		PriorParticipationCount: req.PriorParticipationCount,
		NeedsAccommodation:      req.NeedsAccommodation,
		ShirtSize:               req.ShirtSize,
		Expectations:            req.Expectations,
	}
}
