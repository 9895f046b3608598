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

type CoachServiceTestSuite struct {
	suite.Suite
	mockCoachRepo      *MockCoachRepository
	mockUserRepo       *MockUserRepository
	mockLocationRepo   *MockLocationRepository
	mockBatchRepo      *MockBatchRepository
	mockEnrollmentRepo *MockEnrollmentRepository
	revalidator        *recordingRevalidator
	clock              fixedClock
	service            portssvc.CoachSvcFacade
}

func (suite *CoachServiceTestSuite) SetupTest() {
	suite.mockCoachRepo = new(MockCoachRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockLocationRepo = new(MockLocationRepository)
	suite.mockBatchRepo = new(MockBatchRepository)
	suite.mockEnrollmentRepo = new(MockEnrollmentRepository)
	suite.revalidator = &recordingRevalidator{}
	suite.clock = fixedClock{now: time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)}
	suite.service = services.NewCoachService(
		suite.mockCoachRepo,
		suite.mockUserRepo,
		suite.mockLocationRepo,
		suite.mockBatchRepo,
		suite.mockEnrollmentRepo,
		suite.revalidator,
		suite.clock,
	)
}

func validRegistrationRequest() dto.CoachRegistrationRequest {
	return dto.CoachRegistrationRequest{
		Gender:           "male",
		Age:              34,
		NationalIDNumber: "1103700012345",
		Address:          "99 Main Rd",
		PhoneNumber:      "0812345678",
		Religion:         "buddhist",
		FoodPreference:   "general",
		CoachStatus:      "government",
		ShirtSize:        "L",
		District:         "Mueang",
		County:           "Mueang Chiang Mai",
		Province:         "Chiang Mai",
		SelectedBatchIDs: []int64{7},
	}
}

func (suite *CoachServiceTestSuite) expectLocationResolved() {
	suite.mockLocationRepo.On("ResolveLocation", mock.Anything, "Mueang", "Mueang Chiang Mai", "Chiang Mai", (*string)(nil)).
		Return(&domain.Location{LocationID: 42, District: "Mueang", County: "Mueang Chiang Mai", Province: "Chiang Mai"}, nil).Once()
}

func (suite *CoachServiceTestSuite) TestRegisterCoach_Success() {
	ctx := context.Background()
	req := validRegistrationRequest()

	suite.mockUserRepo.On("FindUserByID", ctx, int64(5)).Return(&domain.User{UserID: 5, Role: domain.RoleUser}, nil)
	suite.mockCoachRepo.On("FindCoachByUserID", ctx, int64(5)).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockCoachRepo.On("FindCoachByNationalID", ctx, req.NationalIDNumber).Return(nil, apperrors.ErrNotFound).Once()
	suite.expectLocationResolved()
	suite.mockCoachRepo.On("SaveCoach", ctx, mock.MatchedBy(func(c domain.Coach) bool {
		return c.UserID == 5 && c.LocationID == 42 && !c.IsApproved && c.RegistrationCompleted
	})).Return(int64(11), nil).Once()
	suite.mockBatchRepo.On("FindBatchByID", ctx, int64(7)).Return(&domain.TrainingBatch{BatchID: 7}, nil).Once()
	suite.mockEnrollmentRepo.On("CreateEnrollment", ctx, mock.MatchedBy(func(e domain.Enrollment) bool {
		return e.BatchID == 7 && e.CoachID == 11 && e.Status == domain.EnrollmentPending && e.RegisteredAt.Equal(suite.clock.Now())
	})).Return(&domain.Enrollment{EnrollmentID: 1, BatchID: 7, CoachID: 11}, nil).Once()
	suite.mockCoachRepo.On("FindCoachWithDetails", ctx, int64(11)).
		Return(&domain.CoachWithDetails{Coach: domain.Coach{CoachID: 11, UserID: 5}}, nil).Once()

	details, err := suite.service.RegisterCoach(ctx, 5, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(details)
	suite.Equal(int64(11), details.CoachID)
	suite.Equal([]int64{7}, details.SelectedBatchIDs)
	suite.Contains(suite.revalidator.views, portssvc.ViewCoachList)
	suite.Contains(suite.revalidator.views, portssvc.ViewParticipantsList)
	suite.Contains(suite.revalidator.views, portssvc.ViewBatchList)
	suite.mockCoachRepo.AssertExpectations(suite.T())
	suite.mockEnrollmentRepo.AssertExpectations(suite.T())
}

func (suite *CoachServiceTestSuite) TestRegisterCoach_DuplicateUser() {
	ctx := context.Background()
	req := validRegistrationRequest()

	suite.mockUserRepo.On("FindUserByID", ctx, int64(5)).Return(&domain.User{UserID: 5, Role: domain.RoleUser}, nil)
	suite.mockCoachRepo.On("FindCoachByUserID", ctx, int64(5)).Return(&domain.Coach{CoachID: 3, UserID: 5}, nil).Once()

	details, err := suite.service.RegisterCoach(ctx, 5, req)

	suite.Require().ErrorIs(err, apperrors.ErrDuplicateRegistration)
	suite.Nil(details)
	suite.Empty(suite.revalidator.views)
	suite.mockCoachRepo.AssertNotCalled(suite.T(), "SaveCoach", mock.Anything, mock.Anything)
}

func (suite *CoachServiceTestSuite) TestRegisterCoach_DuplicateNationalID() {
	ctx := context.Background()
	req := validRegistrationRequest()

	suite.mockUserRepo.On("FindUserByID", ctx, int64(5)).Return(&domain.User{UserID: 5, Role: domain.RoleUser}, nil)
	suite.mockCoachRepo.On("FindCoachByUserID", ctx, int64(5)).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockCoachRepo.On("FindCoachByNationalID", ctx, req.NationalIDNumber).Return(&domain.Coach{CoachID: 9}, nil).Once()

	details, err := suite.service.RegisterCoach(ctx, 5, req)

	suite.Require().ErrorIs(err, apperrors.ErrDuplicateNationalID)
	suite.Nil(details)
	suite.mockLocationRepo.AssertNotCalled(suite.T(), "ResolveLocation", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CoachServiceTestSuite) TestRegisterCoach_LocationFailure() {
	ctx := context.Background()
	req := validRegistrationRequest()

	suite.mockUserRepo.On("FindUserByID", ctx, int64(5)).Return(&domain.User{UserID: 5, Role: domain.RoleUser}, nil)
	suite.mockCoachRepo.On("FindCoachByUserID", ctx, int64(5)).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockCoachRepo.On("FindCoachByNationalID", ctx, req.NationalIDNumber).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockLocationRepo.On("ResolveLocation", mock.Anything, "Mueang", "Mueang Chiang Mai", "Chiang Mai", (*string)(nil)).
		Return(nil, apperrors.ErrLocationPersistence).Once()

	details, err := suite.service.RegisterCoach(ctx, 5, req)

	suite.Require().ErrorIs(err, apperrors.ErrLocationPersistence)
	suite.Nil(details)
	suite.mockCoachRepo.AssertNotCalled(suite.T(), "SaveCoach", mock.Anything, mock.Anything)
}

func (suite *CoachServiceTestSuite) TestRegisterCoach_RepeatedLocationTripleSharesRow() {
	ctx := context.Background()
	locations := newFakeLocationRepo()
	svc := services.NewCoachService(
		suite.mockCoachRepo,
		suite.mockUserRepo,
		locations,
		suite.mockBatchRepo,
		suite.mockEnrollmentRepo,
		suite.revalidator,
		suite.clock,
	)

	var saved []domain.Coach
	suite.mockUserRepo.On("FindUserByID", ctx, mock.AnythingOfType("int64")).
		Return(&domain.User{UserID: 5, Role: domain.RoleUser}, nil)
	suite.mockCoachRepo.On("FindCoachByUserID", ctx, mock.AnythingOfType("int64")).
		Return(nil, apperrors.ErrNotFound)
	suite.mockCoachRepo.On("FindCoachByNationalID", ctx, mock.AnythingOfType("string")).
		Return(nil, apperrors.ErrNotFound)
	suite.mockCoachRepo.On("SaveCoach", ctx, mock.AnythingOfType("domain.Coach")).
		Run(func(args mock.Arguments) { saved = append(saved, args.Get(1).(domain.Coach)) }).
		Return(int64(11), nil)
	suite.mockCoachRepo.On("FindCoachWithDetails", ctx, mock.AnythingOfType("int64")).
		Return(&domain.CoachWithDetails{}, nil)

	first := validRegistrationRequest()
	first.SelectedBatchIDs = nil
	_, err := svc.RegisterCoach(ctx, 5, first)
	suite.Require().NoError(err)

	north := "north"
	second := validRegistrationRequest()
	second.SelectedBatchIDs = nil
	second.NationalIDNumber = "1103700099999"
	second.Region = &north
	_, err = svc.RegisterCoach(ctx, 6, second)
	suite.Require().NoError(err)

	// Both coaches with the same triple land on one location row.
	suite.Require().Len(saved, 2)
	suite.Equal(saved[0].LocationID, saved[1].LocationID)

	// The second submission corrected the stored region in place.
	loc, err := locations.FindLocationByID(ctx, saved[1].LocationID)
	suite.Require().NoError(err)
	suite.Require().NotNil(loc.Region)
	suite.Equal("north", *loc.Region)
}

func (suite *CoachServiceTestSuite) TestRegisterCoach_UnknownBatchSkipped() {
	ctx := context.Background()
	req := validRegistrationRequest()
	req.SelectedBatchIDs = []int64{99}

	suite.mockUserRepo.On("FindUserByID", ctx, int64(5)).Return(&domain.User{UserID: 5, Role: domain.RoleUser}, nil)
	suite.mockCoachRepo.On("FindCoachByUserID", ctx, int64(5)).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockCoachRepo.On("FindCoachByNationalID", ctx, req.NationalIDNumber).Return(nil, apperrors.ErrNotFound).Once()
	suite.expectLocationResolved()
	suite.mockCoachRepo.On("SaveCoach", ctx, mock.AnythingOfType("domain.Coach")).Return(int64(11), nil).Once()
	suite.mockBatchRepo.On("FindBatchByID", ctx, int64(99)).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockCoachRepo.On("FindCoachWithDetails", ctx, int64(11)).
		Return(&domain.CoachWithDetails{Coach: domain.Coach{CoachID: 11}}, nil).Once()

	details, err := suite.service.RegisterCoach(ctx, 5, req)

	suite.Require().NoError(err)
	suite.NotNil(details)
	suite.mockEnrollmentRepo.AssertNotCalled(suite.T(), "CreateEnrollment", mock.Anything, mock.Anything)
}

func (suite *CoachServiceTestSuite) TestRegisterCoach_AdminOnBehalf() {
	ctx := context.Background()
	req := validRegistrationRequest()
	target := int64(77)
	req.TargetUserID = &target

	suite.mockUserRepo.On("FindUserByID", ctx, int64(1)).Return(&domain.User{UserID: 1, Role: domain.RoleAdmin}, nil)
	suite.mockUserRepo.On("FindUserByID", ctx, int64(77)).Return(&domain.User{UserID: 77, Role: domain.RoleUser}, nil)
	suite.mockCoachRepo.On("FindCoachByUserID", ctx, int64(77)).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockCoachRepo.On("FindCoachByNationalID", ctx, req.NationalIDNumber).Return(nil, apperrors.ErrNotFound).Once()
	suite.expectLocationResolved()
	suite.mockCoachRepo.On("SaveCoach", ctx, mock.MatchedBy(func(c domain.Coach) bool {
		return c.UserID == 77
	})).Return(int64(12), nil).Once()
	suite.mockBatchRepo.On("FindBatchByID", ctx, int64(7)).Return(&domain.TrainingBatch{BatchID: 7}, nil).Once()
	suite.mockEnrollmentRepo.On("CreateEnrollment", ctx, mock.AnythingOfType("domain.Enrollment")).
		Return(&domain.Enrollment{EnrollmentID: 2}, nil).Once()
	suite.mockCoachRepo.On("FindCoachWithDetails", ctx, int64(12)).
		Return(&domain.CoachWithDetails{Coach: domain.Coach{CoachID: 12, UserID: 77}}, nil).Once()

	details, err := suite.service.RegisterCoach(ctx, 1, req)

	suite.Require().NoError(err)
	suite.Equal(int64(77), details.UserID)
}

func (suite *CoachServiceTestSuite) TestRegisterCoach_TargetIgnoredForRegularUser() {
	ctx := context.Background()
	req := validRegistrationRequest()
	target := int64(77)
	req.TargetUserID = &target

	// The acting user is not an admin, so the submitted target user is
	// silently discarded and the profile lands on the acting user.
	suite.mockUserRepo.On("FindUserByID", ctx, int64(5)).Return(&domain.User{UserID: 5, Role: domain.RoleUser}, nil)
	suite.mockCoachRepo.On("FindCoachByUserID", ctx, int64(5)).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockCoachRepo.On("FindCoachByNationalID", ctx, req.NationalIDNumber).Return(nil, apperrors.ErrNotFound).Once()
	suite.expectLocationResolved()
	suite.mockCoachRepo.On("SaveCoach", ctx, mock.MatchedBy(func(c domain.Coach) bool {
		return c.UserID == 5
	})).Return(int64(13), nil).Once()
	suite.mockBatchRepo.On("FindBatchByID", ctx, int64(7)).Return(&domain.TrainingBatch{BatchID: 7}, nil).Once()
	suite.mockEnrollmentRepo.On("CreateEnrollment", ctx, mock.AnythingOfType("domain.Enrollment")).
		Return(&domain.Enrollment{EnrollmentID: 3}, nil).Once()
	suite.mockCoachRepo.On("FindCoachWithDetails", ctx, int64(13)).
		Return(&domain.CoachWithDetails{Coach: domain.Coach{CoachID: 13, UserID: 5}}, nil).Once()

	details, err := suite.service.RegisterCoach(ctx, 5, req)

	suite.Require().NoError(err)
	suite.Equal(int64(5), details.UserID)
}

func (suite *CoachServiceTestSuite) TestUpdateCoach_ForbiddenForOtherUser() {
	ctx := context.Background()
	req := validRegistrationRequest()

	suite.mockCoachRepo.On("FindCoachByID", ctx, int64(11)).Return(&domain.Coach{CoachID: 11, UserID: 5}, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, int64(6)).Return(&domain.User{UserID: 6, Role: domain.RoleUser}, nil).Once()

	details, err := suite.service.UpdateCoach(ctx, 6, 11, req)

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
	suite.Nil(details)
	suite.mockCoachRepo.AssertNotCalled(suite.T(), "UpdateCoach", mock.Anything, mock.Anything)
}

func (suite *CoachServiceTestSuite) TestUpdateCoach_ReconcilesSelection() {
	ctx := context.Background()
	req := validRegistrationRequest()
	req.SelectedBatchIDs = []int64{2, 3, 99}

	existing := &domain.Coach{CoachID: 11, UserID: 5, NationalIDNumber: req.NationalIDNumber, IsApproved: true, RegistrationCompleted: true}
	suite.mockCoachRepo.On("FindCoachByID", ctx, int64(11)).Return(existing, nil).Once()
	suite.expectLocationResolved()
	suite.mockCoachRepo.On("UpdateCoach", ctx, mock.MatchedBy(func(c domain.Coach) bool {
		// Ownership and approval survive the update untouched.
		return c.CoachID == 11 && c.UserID == 5 && c.IsApproved && c.RegistrationCompleted
	})).Return(nil).Once()
	// Batch 99 does not exist and is dropped from the selection.
	suite.mockBatchRepo.On("FindBatchesByIDs", ctx, []int64{2, 3, 99}).
		Return([]domain.TrainingBatch{{BatchID: 2}, {BatchID: 3}}, nil).Once()
	// Currently enrolled in 1 and 2: keep 2, add 3, remove 1.
	suite.mockEnrollmentRepo.On("FindEnrollmentsByCoachID", ctx, int64(11)).
		Return([]domain.Enrollment{{EnrollmentID: 20, BatchID: 1, CoachID: 11}, {EnrollmentID: 21, BatchID: 2, CoachID: 11}}, nil).Once()
	suite.mockEnrollmentRepo.On("ReconcileEnrollments", ctx, int64(11), []int64{3}, []int64{1}, suite.clock.Now()).
		Return(nil).Once()
	suite.mockCoachRepo.On("FindCoachWithDetails", ctx, int64(11)).
		Return(&domain.CoachWithDetails{Coach: *existing}, nil).Once()

	details, err := suite.service.UpdateCoach(ctx, 5, 11, req)

	suite.Require().NoError(err)
	suite.Equal([]int64{2, 3}, details.SelectedBatchIDs)
	suite.Contains(suite.revalidator.views, portssvc.ViewCoachDetail)
	suite.mockEnrollmentRepo.AssertExpectations(suite.T())
}

func (suite *CoachServiceTestSuite) TestUpdateCoach_EmptySelectionWithdrawsAll() {
	ctx := context.Background()
	req := validRegistrationRequest()
	req.SelectedBatchIDs = []int64{}

	existing := &domain.Coach{CoachID: 11, UserID: 5, NationalIDNumber: req.NationalIDNumber}
	suite.mockCoachRepo.On("FindCoachByID", ctx, int64(11)).Return(existing, nil).Once()
	suite.expectLocationResolved()
	suite.mockCoachRepo.On("UpdateCoach", ctx, mock.AnythingOfType("domain.Coach")).Return(nil).Once()
	suite.mockBatchRepo.On("FindBatchesByIDs", ctx, []int64{}).Return(nil, nil).Once()
	suite.mockEnrollmentRepo.On("FindEnrollmentsByCoachID", ctx, int64(11)).
		Return([]domain.Enrollment{{EnrollmentID: 30, BatchID: 4, CoachID: 11}, {EnrollmentID: 31, BatchID: 5, CoachID: 11}}, nil).Once()
	suite.mockEnrollmentRepo.On("ReconcileEnrollments", ctx, int64(11), []int64(nil), []int64{4, 5}, suite.clock.Now()).
		Return(nil).Once()
	suite.mockCoachRepo.On("FindCoachWithDetails", ctx, int64(11)).
		Return(&domain.CoachWithDetails{Coach: *existing}, nil).Once()

	details, err := suite.service.UpdateCoach(ctx, 5, 11, req)

	suite.Require().NoError(err)
	suite.Empty(details.SelectedBatchIDs)
	suite.mockEnrollmentRepo.AssertExpectations(suite.T())
}

func (suite *CoachServiceTestSuite) TestUpdateCoach_UnchangedNationalIDSkipsCheck() {
	ctx := context.Background()
	req := validRegistrationRequest()
	req.SelectedBatchIDs = nil

	existing := &domain.Coach{CoachID: 11, UserID: 5, NationalIDNumber: req.NationalIDNumber}
	suite.mockCoachRepo.On("FindCoachByID", ctx, int64(11)).Return(existing, nil).Once()
	suite.expectLocationResolved()
	suite.mockCoachRepo.On("UpdateCoach", ctx, mock.AnythingOfType("domain.Coach")).Return(nil).Once()
	suite.mockBatchRepo.On("FindBatchesByIDs", ctx, []int64(nil)).Return(nil, nil).Once()
	suite.mockEnrollmentRepo.On("FindEnrollmentsByCoachID", ctx, int64(11)).Return(nil, nil).Once()
	suite.mockEnrollmentRepo.On("ReconcileEnrollments", ctx, int64(11), []int64(nil), []int64(nil), suite.clock.Now()).Return(nil).Once()
	suite.mockCoachRepo.On("FindCoachWithDetails", ctx, int64(11)).
		Return(&domain.CoachWithDetails{Coach: *existing}, nil).Once()

	_, err := suite.service.UpdateCoach(ctx, 5, 11, req)

	suite.Require().NoError(err)
	suite.mockCoachRepo.AssertNotCalled(suite.T(), "FindCoachByNationalID", mock.Anything, mock.Anything)
}

func (suite *CoachServiceTestSuite) TestUpdateCoach_AbsentAgeKeepsStoredValue() {
	ctx := context.Background()
	req := validRegistrationRequest()
	req.Age = 0
	req.SelectedBatchIDs = nil

	existing := &domain.Coach{CoachID: 11, UserID: 5, NationalIDNumber: req.NationalIDNumber, Age: 41}
	suite.mockCoachRepo.On("FindCoachByID", ctx, int64(11)).Return(existing, nil).Once()
	suite.expectLocationResolved()
	suite.mockCoachRepo.On("UpdateCoach", ctx, mock.MatchedBy(func(c domain.Coach) bool {
		return c.Age == 41
	})).Return(nil).Once()
	suite.mockBatchRepo.On("FindBatchesByIDs", ctx, []int64(nil)).Return(nil, nil).Once()
	suite.mockEnrollmentRepo.On("FindEnrollmentsByCoachID", ctx, int64(11)).Return(nil, nil).Once()
	suite.mockEnrollmentRepo.On("ReconcileEnrollments", ctx, int64(11), []int64(nil), []int64(nil), suite.clock.Now()).Return(nil).Once()
	suite.mockCoachRepo.On("FindCoachWithDetails", ctx, int64(11)).
		Return(&domain.CoachWithDetails{Coach: *existing}, nil).Once()

	_, err := suite.service.UpdateCoach(ctx, 5, 11, req)

	suite.Require().NoError(err)
	suite.mockCoachRepo.AssertExpectations(suite.T())
}

func (suite *CoachServiceTestSuite) TestUpdateCoach_NationalIDTakenByOther() {
	ctx := context.Background()
	req := validRegistrationRequest()

	existing := &domain.Coach{CoachID: 11, UserID: 5, NationalIDNumber: "other"}
	suite.mockCoachRepo.On("FindCoachByID", ctx, int64(11)).Return(existing, nil).Once()
	suite.mockCoachRepo.On("FindCoachByNationalID", ctx, req.NationalIDNumber).
		Return(&domain.Coach{CoachID: 12}, nil).Once()

	details, err := suite.service.UpdateCoach(ctx, 5, 11, req)

	suite.Require().ErrorIs(err, apperrors.ErrDuplicateNationalID)
	suite.Nil(details)
}

func (suite *CoachServiceTestSuite) TestApproveCoach_RequiresAdmin() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByID", ctx, int64(5)).Return(&domain.User{UserID: 5, Role: domain.RoleUser}, nil).Once()

	err := suite.service.ApproveCoach(ctx, 5, 11, true)

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
	suite.mockCoachRepo.AssertNotCalled(suite.T(), "SetCoachApproval", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CoachServiceTestSuite) TestApproveCoach_Success() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByID", ctx, int64(1)).Return(&domain.User{UserID: 1, Role: domain.RoleAdmin}, nil).Once()
	suite.mockCoachRepo.On("SetCoachApproval", ctx, int64(11), true).Return(nil).Once()

	err := suite.service.ApproveCoach(ctx, 1, 11, true)

	suite.Require().NoError(err)
	suite.Contains(suite.revalidator.views, portssvc.ViewCoachList)
}

func TestCoachServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CoachServiceTestSuite))
}
