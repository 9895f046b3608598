package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/cabindev/sdnfutsal/internal/apperrors"
	"github.com/cabindev/sdnfutsal/internal/core/domain"
	portssvc "github.com/cabindev/sdnfutsal/internal/core/ports/services"
	"github.com/cabindev/sdnfutsal/internal/core/services"
	"github.com/cabindev/sdnfutsal/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type BatchServiceTestSuite struct {
	suite.Suite
	mockBatchRepo      *MockBatchRepository
	mockCoachRepo      *MockCoachRepository
	mockEnrollmentRepo *MockEnrollmentRepository
	mockUserRepo       *MockUserRepository
	revalidator        *recordingRevalidator
	clock              fixedClock
	service            portssvc.BatchSvcFacade
}

func (suite *BatchServiceTestSuite) SetupTest() {
	suite.mockBatchRepo = new(MockBatchRepository)
	suite.mockCoachRepo = new(MockCoachRepository)
	suite.mockEnrollmentRepo = new(MockEnrollmentRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.revalidator = &recordingRevalidator{}
	suite.clock = fixedClock{now: time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)}
	suite.service = services.NewBatchService(
		suite.mockBatchRepo,
		suite.mockCoachRepo,
		suite.mockEnrollmentRepo,
		suite.mockUserRepo,
		suite.revalidator,
		suite.clock,
	)
}

func (suite *BatchServiceTestSuite) openBatch() *domain.TrainingBatch {
	return &domain.TrainingBatch{
		BatchID:             7,
		BatchNumber:         2,
		Year:                2025,
		MaxParticipants:     30,
		RegistrationEndDate: suite.clock.Now().Add(48 * time.Hour),
		IsActive:            true,
	}
}

func (suite *BatchServiceTestSuite) TestRegisterCoachToBatch_Success() {
	ctx := context.Background()

	suite.mockCoachRepo.On("FindCoachByID", ctx, int64(11)).Return(&domain.Coach{CoachID: 11}, nil).Once()
	suite.mockBatchRepo.On("FindBatchByID", ctx, int64(7)).Return(suite.openBatch(), nil).Once()
	suite.mockEnrollmentRepo.On("CountEnrollmentsByBatchID", ctx, int64(7)).Return(10, nil).Once()
	suite.mockEnrollmentRepo.On("FindEnrollment", ctx, int64(7), int64(11)).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockEnrollmentRepo.On("CreateEnrollment", ctx, mock.MatchedBy(func(e domain.Enrollment) bool {
		return e.BatchID == 7 && e.CoachID == 11 && e.Status == domain.EnrollmentPending
	})).Return(&domain.Enrollment{EnrollmentID: 1, BatchID: 7, CoachID: 11}, nil).Once()

	enrollment, err := suite.service.RegisterCoachToBatch(ctx, 11, 7)

	suite.Require().NoError(err)
	suite.Equal(int64(1), enrollment.EnrollmentID)
	suite.Contains(suite.revalidator.views, portssvc.ViewParticipantsList)
	suite.Contains(suite.revalidator.views, portssvc.ViewBatchList)
	suite.mockEnrollmentRepo.AssertExpectations(suite.T())
}

func (suite *BatchServiceTestSuite) TestRegisterCoachToBatch_CoachMissing() {
	ctx := context.Background()

	suite.mockCoachRepo.On("FindCoachByID", ctx, int64(11)).Return(nil, apperrors.ErrCoachNotFound).Once()

	enrollment, err := suite.service.RegisterCoachToBatch(ctx, 11, 7)

	suite.Require().ErrorIs(err, apperrors.ErrCoachNotFound)
	suite.Nil(enrollment)
	suite.mockBatchRepo.AssertNotCalled(suite.T(), "FindBatchByID", mock.Anything, mock.Anything)
}

func (suite *BatchServiceTestSuite) TestRegisterCoachToBatch_DeadlinePassed() {
	ctx := context.Background()
	batch := suite.openBatch()
	batch.RegistrationEndDate = suite.clock.Now().Add(-time.Hour)

	suite.mockCoachRepo.On("FindCoachByID", ctx, int64(11)).Return(&domain.Coach{CoachID: 11}, nil).Once()
	suite.mockBatchRepo.On("FindBatchByID", ctx, int64(7)).Return(batch, nil).Once()

	enrollment, err := suite.service.RegisterCoachToBatch(ctx, 11, 7)

	suite.Require().ErrorIs(err, apperrors.ErrBatchNotFoundOrClosed)
	suite.Nil(enrollment)
	suite.mockEnrollmentRepo.AssertNotCalled(suite.T(), "CountEnrollmentsByBatchID", mock.Anything, mock.Anything)
}

func (suite *BatchServiceTestSuite) TestRegisterCoachToBatch_InactiveBatch() {
	ctx := context.Background()
	batch := suite.openBatch()
	batch.IsActive = false

	suite.mockCoachRepo.On("FindCoachByID", ctx, int64(11)).Return(&domain.Coach{CoachID: 11}, nil).Once()
	suite.mockBatchRepo.On("FindBatchByID", ctx, int64(7)).Return(batch, nil).Once()

	_, err := suite.service.RegisterCoachToBatch(ctx, 11, 7)

	suite.Require().ErrorIs(err, apperrors.ErrBatchNotFoundOrClosed)
}

func (suite *BatchServiceTestSuite) TestRegisterCoachToBatch_DeadlineInstantStillOpen() {
	ctx := context.Background()
	batch := suite.openBatch()
	batch.RegistrationEndDate = suite.clock.Now()

	suite.mockCoachRepo.On("FindCoachByID", ctx, int64(11)).Return(&domain.Coach{CoachID: 11}, nil).Once()
	suite.mockBatchRepo.On("FindBatchByID", ctx, int64(7)).Return(batch, nil).Once()
	suite.mockEnrollmentRepo.On("CountEnrollmentsByBatchID", ctx, int64(7)).Return(0, nil).Once()
	suite.mockEnrollmentRepo.On("FindEnrollment", ctx, int64(7), int64(11)).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockEnrollmentRepo.On("CreateEnrollment", ctx, mock.AnythingOfType("domain.Enrollment")).
		Return(&domain.Enrollment{EnrollmentID: 1}, nil).Once()

	_, err := suite.service.RegisterCoachToBatch(ctx, 11, 7)

	suite.Require().NoError(err)
}

func (suite *BatchServiceTestSuite) TestRegisterCoachToBatch_Full() {
	ctx := context.Background()

	suite.mockCoachRepo.On("FindCoachByID", ctx, int64(11)).Return(&domain.Coach{CoachID: 11}, nil).Once()
	suite.mockBatchRepo.On("FindBatchByID", ctx, int64(7)).Return(suite.openBatch(), nil).Once()
	suite.mockEnrollmentRepo.On("CountEnrollmentsByBatchID", ctx, int64(7)).Return(30, nil).Once()

	enrollment, err := suite.service.RegisterCoachToBatch(ctx, 11, 7)

	suite.Require().ErrorIs(err, apperrors.ErrBatchFull)
	suite.Nil(enrollment)
	// The full check fires before the duplicate check.
	suite.mockEnrollmentRepo.AssertNotCalled(suite.T(), "FindEnrollment", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *BatchServiceTestSuite) TestRegisterCoachToBatch_AlreadyRegistered() {
	ctx := context.Background()

	suite.mockCoachRepo.On("FindCoachByID", ctx, int64(11)).Return(&domain.Coach{CoachID: 11}, nil).Once()
	suite.mockBatchRepo.On("FindBatchByID", ctx, int64(7)).Return(suite.openBatch(), nil).Once()
	suite.mockEnrollmentRepo.On("CountEnrollmentsByBatchID", ctx, int64(7)).Return(10, nil).Once()
	suite.mockEnrollmentRepo.On("FindEnrollment", ctx, int64(7), int64(11)).
		Return(&domain.Enrollment{EnrollmentID: 1, BatchID: 7, CoachID: 11}, nil).Once()

	enrollment, err := suite.service.RegisterCoachToBatch(ctx, 11, 7)

	suite.Require().ErrorIs(err, apperrors.ErrAlreadyRegistered)
	suite.Nil(enrollment)
	suite.mockEnrollmentRepo.AssertNotCalled(suite.T(), "CreateEnrollment", mock.Anything, mock.Anything)
}

func (suite *BatchServiceTestSuite) TestCreateBatch_RequiresAdmin() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByID", ctx, int64(5)).Return(&domain.User{UserID: 5, Role: domain.RoleUser}, nil).Once()

	batch, err := suite.service.CreateBatch(ctx, 5, dto.SaveBatchRequest{BatchNumber: 1, Year: 2025})

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
	suite.Nil(batch)
	suite.mockBatchRepo.AssertNotCalled(suite.T(), "SaveBatch", mock.Anything, mock.Anything)
}

func (suite *BatchServiceTestSuite) TestCreateBatch_Success() {
	ctx := context.Background()
	req := dto.SaveBatchRequest{
		BatchNumber:         3,
		Year:                2025,
		StartDate:           suite.clock.Now().Add(30 * 24 * time.Hour),
		EndDate:             suite.clock.Now().Add(33 * 24 * time.Hour),
		Location:            "National Stadium",
		MaxParticipants:     40,
		RegistrationEndDate: suite.clock.Now().Add(20 * 24 * time.Hour),
		IsActive:            true,
	}

	suite.mockUserRepo.On("FindUserByID", ctx, int64(1)).Return(&domain.User{UserID: 1, Role: domain.RoleAdmin}, nil).Once()
	suite.mockBatchRepo.On("SaveBatch", ctx, mock.MatchedBy(func(b domain.TrainingBatch) bool {
		return b.BatchNumber == 3 && b.Year == 2025 && b.MaxParticipants == 40
	})).Return(int64(9), nil).Once()

	batch, err := suite.service.CreateBatch(ctx, 1, req)

	suite.Require().NoError(err)
	suite.Equal(int64(9), batch.BatchID)
	suite.Contains(suite.revalidator.views, portssvc.ViewBatchList)
}

func (suite *BatchServiceTestSuite) TestUpdateEnrollmentStatus_RejectsUnknownStatus() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByID", ctx, int64(1)).Return(&domain.User{UserID: 1, Role: domain.RoleAdmin}, nil).Once()

	err := suite.service.UpdateEnrollmentStatus(ctx, 1, 20, dto.UpdateEnrollmentStatusRequest{Status: "MAYBE"})

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.mockEnrollmentRepo.AssertNotCalled(suite.T(), "UpdateEnrollmentStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *BatchServiceTestSuite) TestUpdateEnrollmentStatus_Success() {
	ctx := context.Background()
	attended := true

	suite.mockUserRepo.On("FindUserByID", ctx, int64(1)).Return(&domain.User{UserID: 1, Role: domain.RoleAdmin}, nil).Once()
	suite.mockEnrollmentRepo.On("UpdateEnrollmentStatus", ctx, int64(20), domain.EnrollmentApproved, (*string)(nil), &attended).
		Return(nil).Once()

	err := suite.service.UpdateEnrollmentStatus(ctx, 1, 20, dto.UpdateEnrollmentStatusRequest{Status: "APPROVED", IsAttended: &attended})

	suite.Require().NoError(err)
	suite.Contains(suite.revalidator.views, portssvc.ViewParticipantsList)
}

func (suite *BatchServiceTestSuite) TestExportParticipantsCSV() {
	ctx := context.Background()
	team := "Lions"

	suite.mockUserRepo.On("FindUserByID", ctx, int64(1)).Return(&domain.User{UserID: 1, Role: domain.RoleAdmin}, nil).Once()
	suite.mockBatchRepo.On("FindBatchByID", ctx, int64(7)).Return(suite.openBatch(), nil).Once()
	suite.mockEnrollmentRepo.On("FindParticipantsByBatchID", ctx, int64(7)).Return([]domain.BatchParticipant{
		{
			Enrollment: domain.Enrollment{EnrollmentID: 20, BatchID: 7, CoachID: 11, Status: domain.EnrollmentApproved, RegisteredAt: suite.clock.Now()},
			Coach:      domain.Coach{CoachID: 11, TeamName: &team, PhoneNumber: "0812345678"},
			User:       domain.UserSummary{UserID: 5, FirstName: "Anan", LastName: "S", Email: "anan@example.com"},
		},
	}, nil).Once()

	csvBytes, err := suite.service.ExportParticipantsCSV(ctx, 1, 7)

	suite.Require().NoError(err)
	out := string(csvBytes)
	suite.Contains(out, "enrollment_id,coach_id,first_name")
	suite.Contains(out, "20,11,Anan,S,anan@example.com,Lions,0812345678,APPROVED,false")
}

func TestBatchServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BatchServiceTestSuite))
}
