package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"

	"github.com/cabindev/sdnfutsal/internal/apperrors"
	"github.com/cabindev/sdnfutsal/internal/core/domain"
	portsrepo "github.com/cabindev/sdnfutsal/internal/core/ports/repositories"
	portssvc "github.com/cabindev/sdnfutsal/internal/core/ports/services"
	"github.com/cabindev/sdnfutsal/internal/dto"
)

type batchService struct {
	BaseService
	batchRepo      portsrepo.BatchRepositoryFacade
	coachRepo      portsrepo.CoachRepositoryFacade
	enrollmentRepo portsrepo.EnrollmentRepositoryFacade
	userRepo       portsrepo.UserRepositoryFacade
	revalidator    portssvc.ViewRevalidator
	clock          domain.Clock
}

// NewBatchService creates a new batch service
func NewBatchService(
	batchRepo portsrepo.BatchRepositoryFacade,
	coachRepo portsrepo.CoachRepositoryFacade,
	enrollmentRepo portsrepo.EnrollmentRepositoryFacade,
	userRepo portsrepo.UserRepositoryFacade,
	revalidator portssvc.ViewRevalidator,
	clock domain.Clock,
) portssvc.BatchSvcFacade {
	return &batchService{
		batchRepo:      batchRepo,
		coachRepo:      coachRepo,
		enrollmentRepo: enrollmentRepo,
		userRepo:       userRepo,
		revalidator:    revalidator,
		clock:          clock,
	}
}

// Ensure batchService implements portssvc.BatchSvcFacade
var _ portssvc.BatchSvcFacade = (*batchService)(nil)

func (s *batchService) GetBatchByID(ctx context.Context, batchID int64) (*domain.TrainingBatch, error) {
	return s.batchRepo.FindBatchByID(ctx, batchID)
}

func (s *batchService) ListBatches(ctx context.Context, activeOnly bool, limit, offset int) ([]domain.TrainingBatch, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.batchRepo.FindBatches(ctx, activeOnly, limit, offset)
}

// RegisterCoachToBatch is the only enrollment path that enforces the
// registration deadline and the capacity limit. Checks run in a fixed order
// so callers get the most specific failure: missing coach, closed batch, full
// batch, then duplicate enrollment.
func (s *batchService) RegisterCoachToBatch(ctx context.Context, coachID, batchID int64) (*domain.Enrollment, error) {
	if _, err := s.coachRepo.FindCoachByID(ctx, coachID); err != nil {
		return nil, err
	}

	batch, err := s.batchRepo.FindBatchByID(ctx, batchID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrBatchNotFoundOrClosed
		}
		return nil, err
	}
	if !batch.IsOpenForRegistration(s.clock.Now()) {
		return nil, apperrors.ErrBatchNotFoundOrClosed
	}

	count, err := s.enrollmentRepo.CountEnrollmentsByBatchID(ctx, batchID)
	if err != nil {
		return nil, err
	}
	if count >= batch.MaxParticipants {
		return nil, apperrors.ErrBatchFull
	}

	if _, err := s.enrollmentRepo.FindEnrollment(ctx, batchID, coachID); err == nil {
		return nil, apperrors.ErrAlreadyRegistered
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	enrollment, err := s.enrollmentRepo.CreateEnrollment(ctx, domain.Enrollment{
		BatchID:      batchID,
		CoachID:      coachID,
		RegisteredAt: s.clock.Now(),
		Status:       domain.EnrollmentPending,
	})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Coach enrolled into batch", "coach_id", coachID, "batch_id", batchID)
	s.revalidator.RevalidateViews(ctx, portssvc.ViewParticipantsList, portssvc.ViewBatchList)
	return enrollment, nil
}

func (s *batchService) CreateBatch(ctx context.Context, actingUserID int64, req dto.SaveBatchRequest) (*domain.TrainingBatch, error) {
	if err := s.requireAdmin(ctx, actingUserID); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	batch := batchFromRequest(req)
	batch.CreatedAt = now
	batch.UpdatedAt = now

	batchID, err := s.batchRepo.SaveBatch(ctx, batch)
	if err != nil {
		return nil, err
	}
	batch.BatchID = batchID

	s.LogInfo(ctx, "Batch created", "batch_id", batchID)
	s.revalidator.RevalidateViews(ctx, portssvc.ViewBatchList)
	return &batch, nil
}

func (s *batchService) UpdateBatch(ctx context.Context, actingUserID, batchID int64, req dto.SaveBatchRequest) (*domain.TrainingBatch, error) {
	if err := s.requireAdmin(ctx, actingUserID); err != nil {
		return nil, err
	}

	existing, err := s.batchRepo.FindBatchByID(ctx, batchID)
	if err != nil {
		return nil, err
	}

	batch := batchFromRequest(req)
	batch.BatchID = batchID
	batch.CreatedAt = existing.CreatedAt
	batch.UpdatedAt = s.clock.Now()

	if err := s.batchRepo.UpdateBatch(ctx, batch); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Batch updated", "batch_id", batchID)
	s.revalidator.RevalidateViews(ctx, portssvc.ViewBatchList, portssvc.ViewParticipantsList)
	return &batch, nil
}

func (s *batchService) ListParticipants(ctx context.Context, actingUserID, batchID int64) ([]domain.BatchParticipant, error) {
	if err := s.requireAdmin(ctx, actingUserID); err != nil {
		return nil, err
	}
	if _, err := s.batchRepo.FindBatchByID(ctx, batchID); err != nil {
		return nil, err
	}
	return s.enrollmentRepo.FindParticipantsByBatchID(ctx, batchID)
}

func (s *batchService) UpdateEnrollmentStatus(ctx context.Context, actingUserID, enrollmentID int64, req dto.UpdateEnrollmentStatusRequest) error {
	if err := s.requireAdmin(ctx, actingUserID); err != nil {
		return err
	}

	status := domain.EnrollmentStatus(req.Status)
	if !status.Valid() {
		return fmt.Errorf("%w: unknown enrollment status %q", apperrors.ErrValidation, req.Status)
	}

	if err := s.enrollmentRepo.UpdateEnrollmentStatus(ctx, enrollmentID, status, req.Notes, req.IsAttended); err != nil {
		return err
	}

	s.LogInfo(ctx, "Enrollment status updated", "enrollment_id", enrollmentID, "status", req.Status)
	s.revalidator.RevalidateViews(ctx, portssvc.ViewParticipantsList)
	return nil
}

// ExportParticipantsCSV renders the participants of a batch as a CSV
// document for offline processing by the program staff.
func (s *batchService) ExportParticipantsCSV(ctx context.Context, actingUserID, batchID int64) ([]byte, error) {
	participants, err := s.ListParticipants(ctx, actingUserID, batchID)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	header := []string{
		"enrollment_id", "coach_id", "first_name", "last_name", "email",
		"team_name", "phone", "status", "attended", "registered_at",
	}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, p := range participants {
		teamName := ""
		if p.Coach.TeamName != nil {
			teamName = *p.Coach.TeamName
		}
		record := []string{
			strconv.FormatInt(p.EnrollmentID, 10),
			strconv.FormatInt(p.Coach.CoachID, 10),
			p.User.FirstName,
			p.User.LastName,
			p.User.Email,
			teamName,
			p.Coach.PhoneNumber,
			string(p.Status),
			strconv.FormatBool(p.IsAttended),
			p.RegisteredAt.Format("2006-01-02 15:04:05"),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}
	return buf.Bytes(), nil
}

func (s *batchService) requireAdmin(ctx context.Context, actingUserID int64) error {
	acting, err := s.userRepo.FindUserByID(ctx, actingUserID)
	if err != nil {
		return err
	}
	if !acting.IsAdmin() {
		return apperrors.ErrForbidden
	}
	return nil
}

func batchFromRequest(req dto.SaveBatchRequest) domain.TrainingBatch {
	return domain.TrainingBatch{
		BatchNumber:         req.BatchNumber,
		Year:                req.Year,
		StartDate:           req.StartDate,
		EndDate:             req.EndDate,
		Location:            req.Location,
		MaxParticipants:     req.MaxParticipants,
		RegistrationEndDate: req.RegistrationEndDate,
		Description:         req.Description,
		IsActive:            req.IsActive,
	}
}
