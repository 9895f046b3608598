package services_test

import (
	"context"
	"time"

	"github.com/cabindev/sdnfutsal/internal/apperrors"
	"github.com/cabindev/sdnfutsal/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock repositories, hand rolled against the ports interfaces ---

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) (*domain.User, error) {
	args := m.Called(ctx, user)
	var u *domain.User
	if args.Get(0) != nil {
		u = args.Get(0).(*domain.User)
	}
	return u, args.Error(1)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var u *domain.User
	if args.Get(0) != nil {
		u = args.Get(0).(*domain.User)
	}
	return u, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	var u *domain.User
	if args.Get(0) != nil {
		u = args.Get(0).(*domain.User)
	}
	return u, args.Error(1)
}

func (m *MockUserRepository) FindUserByProviderDetails(ctx context.Context, provider domain.AuthProvider, providerUserID string) (*domain.User, error) {
	args := m.Called(ctx, provider, providerUserID)
	var u *domain.User
	if args.Get(0) != nil {
		u = args.Get(0).(*domain.User)
	}
	return u, args.Error(1)
}

type MockCoachRepository struct {
	mock.Mock
}

func (m *MockCoachRepository) SaveCoach(ctx context.Context, coach domain.Coach) (int64, error) {
	args := m.Called(ctx, coach)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCoachRepository) UpdateCoach(ctx context.Context, coach domain.Coach) error {
	args := m.Called(ctx, coach)
	return args.Error(0)
}

func (m *MockCoachRepository) SetCoachApproval(ctx context.Context, coachID int64, approved bool) error {
	args := m.Called(ctx, coachID, approved)
	return args.Error(0)
}

func (m *MockCoachRepository) DeleteCoach(ctx context.Context, coachID int64) error {
	args := m.Called(ctx, coachID)
	return args.Error(0)
}

func (m *MockCoachRepository) FindCoachByID(ctx context.Context, coachID int64) (*domain.Coach, error) {
	args := m.Called(ctx, coachID)
	var c *domain.Coach
	if args.Get(0) != nil {
		c = args.Get(0).(*domain.Coach)
	}
	return c, args.Error(1)
}

func (m *MockCoachRepository) FindCoachByUserID(ctx context.Context, userID int64) (*domain.Coach, error) {
	args := m.Called(ctx, userID)
	var c *domain.Coach
	if args.Get(0) != nil {
		c = args.Get(0).(*domain.Coach)
	}
	return c, args.Error(1)
}

func (m *MockCoachRepository) FindCoachByNationalID(ctx context.Context, nationalID string) (*domain.Coach, error) {
	args := m.Called(ctx, nationalID)
	var c *domain.Coach
	if args.Get(0) != nil {
		c = args.Get(0).(*domain.Coach)
	}
	return c, args.Error(1)
}

func (m *MockCoachRepository) FindCoachWithDetails(ctx context.Context, coachID int64) (*domain.CoachWithDetails, error) {
	args := m.Called(ctx, coachID)
	var c *domain.CoachWithDetails
	if args.Get(0) != nil {
		c = args.Get(0).(*domain.CoachWithDetails)
	}
	return c, args.Error(1)
}

func (m *MockCoachRepository) FindCoaches(ctx context.Context, limit, offset int) ([]domain.CoachWithDetails, error) {
	args := m.Called(ctx, limit, offset)
	var cs []domain.CoachWithDetails
	if args.Get(0) != nil {
		cs = args.Get(0).([]domain.CoachWithDetails)
	}
	return cs, args.Error(1)
}

type MockLocationRepository struct {
	mock.Mock
}

func (m *MockLocationRepository) ResolveLocation(ctx context.Context, district, county, province string, region *string) (*domain.Location, error) {
	args := m.Called(ctx, district, county, province, region)
	var l *domain.Location
	if args.Get(0) != nil {
		l = args.Get(0).(*domain.Location)
	}
	return l, args.Error(1)
}

func (m *MockLocationRepository) FindLocationByID(ctx context.Context, locationID int64) (*domain.Location, error) {
	args := m.Called(ctx, locationID)
	var l *domain.Location
	if args.Get(0) != nil {
		l = args.Get(0).(*domain.Location)
	}
	return l, args.Error(1)
}

type MockBatchRepository struct {
	mock.Mock
}

func (m *MockBatchRepository) SaveBatch(ctx context.Context, batch domain.TrainingBatch) (int64, error) {
	args := m.Called(ctx, batch)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBatchRepository) UpdateBatch(ctx context.Context, batch domain.TrainingBatch) error {
	args := m.Called(ctx, batch)
	return args.Error(0)
}

func (m *MockBatchRepository) FindBatchByID(ctx context.Context, batchID int64) (*domain.TrainingBatch, error) {
	args := m.Called(ctx, batchID)
	var b *domain.TrainingBatch
	if args.Get(0) != nil {
		b = args.Get(0).(*domain.TrainingBatch)
	}
	return b, args.Error(1)
}

func (m *MockBatchRepository) FindBatchesByIDs(ctx context.Context, batchIDs []int64) ([]domain.TrainingBatch, error) {
	args := m.Called(ctx, batchIDs)
	var bs []domain.TrainingBatch
	if args.Get(0) != nil {
		bs = args.Get(0).([]domain.TrainingBatch)
	}
	return bs, args.Error(1)
}

func (m *MockBatchRepository) FindBatches(ctx context.Context, activeOnly bool, limit, offset int) ([]domain.TrainingBatch, error) {
	args := m.Called(ctx, activeOnly, limit, offset)
	var bs []domain.TrainingBatch
	if args.Get(0) != nil {
		bs = args.Get(0).([]domain.TrainingBatch)
	}
	return bs, args.Error(1)
}

type MockEnrollmentRepository struct {
	mock.Mock
}

func (m *MockEnrollmentRepository) CreateEnrollment(ctx context.Context, enrollment domain.Enrollment) (*domain.Enrollment, error) {
	args := m.Called(ctx, enrollment)
	var e *domain.Enrollment
	if args.Get(0) != nil {
		e = args.Get(0).(*domain.Enrollment)
	}
	return e, args.Error(1)
}

func (m *MockEnrollmentRepository) ReconcileEnrollments(ctx context.Context, coachID int64, toAdd, toRemove []int64, registeredAt time.Time) error {
	args := m.Called(ctx, coachID, toAdd, toRemove, registeredAt)
	return args.Error(0)
}

func (m *MockEnrollmentRepository) UpdateEnrollmentStatus(ctx context.Context, enrollmentID int64, status domain.EnrollmentStatus, notes *string, isAttended *bool) error {
	args := m.Called(ctx, enrollmentID, status, notes, isAttended)
	return args.Error(0)
}

func (m *MockEnrollmentRepository) FindEnrollmentsByCoachID(ctx context.Context, coachID int64) ([]domain.Enrollment, error) {
	args := m.Called(ctx, coachID)
	var es []domain.Enrollment
	if args.Get(0) != nil {
		es = args.Get(0).([]domain.Enrollment)
	}
	return es, args.Error(1)
}

func (m *MockEnrollmentRepository) FindEnrollment(ctx context.Context, batchID, coachID int64) (*domain.Enrollment, error) {
	args := m.Called(ctx, batchID, coachID)
	var e *domain.Enrollment
	if args.Get(0) != nil {
		e = args.Get(0).(*domain.Enrollment)
	}
	return e, args.Error(1)
}

func (m *MockEnrollmentRepository) CountEnrollmentsByBatchID(ctx context.Context, batchID int64) (int, error) {
	args := m.Called(ctx, batchID)
	return args.Int(0), args.Error(1)
}

func (m *MockEnrollmentRepository) FindParticipantsByBatchID(ctx context.Context, batchID int64) ([]domain.BatchParticipant, error) {
	args := m.Called(ctx, batchID)
	var ps []domain.BatchParticipant
	if args.Get(0) != nil {
		ps = args.Get(0).([]domain.BatchParticipant)
	}
	return ps, args.Error(1)
}

// fakeLocationRepo is a stateful stand-in that enforces the resolver
// contract: one row per (district, county, province) triple, region always
// rewritten to the submitted value.
type fakeLocationRepo struct {
	nextID int64
	rows   map[string]*domain.Location
}

func newFakeLocationRepo() *fakeLocationRepo {
	return &fakeLocationRepo{rows: make(map[string]*domain.Location)}
}

func (r *fakeLocationRepo) ResolveLocation(_ context.Context, district, county, province string, region *string) (*domain.Location, error) {
	key := district + "\x00" + county + "\x00" + province
	loc, ok := r.rows[key]
	if !ok {
		r.nextID++
		loc = &domain.Location{LocationID: r.nextID, District: district, County: county, Province: province}
		r.rows[key] = loc
	}
	loc.Region = region
	resolved := *loc
	return &resolved, nil
}

func (r *fakeLocationRepo) FindLocationByID(_ context.Context, locationID int64) (*domain.Location, error) {
	for _, loc := range r.rows {
		if loc.LocationID == locationID {
			found := *loc
			return &found, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// recordingRevalidator collects the views each operation flags as stale.
type recordingRevalidator struct {
	views []string
}

func (r *recordingRevalidator) RevalidateViews(_ context.Context, views ...string) {
	r.views = append(r.views, views...)
}

// fixedClock pins Now for deterministic deadline checks.
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }
