package dto

import (
	"time"

	"github.com/cabindev/sdnfutsal/internal/core/domain"
)

// LocationResponse is the wire shape of a resolved location.
type LocationResponse struct {
	LocationID int64   `json:"locationID"`
	District   string  `json:"district"`
	County     string  `json:"county"`
	Province   string  `json:"province"`
	Region     *string `json:"region,omitempty"`
}

// UserSummaryResponse is the restricted user projection embedded in coach
// responses. Credential fields are never exposed.
type UserSummaryResponse struct {
	UserID    int64   `json:"userID"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     string  `json:"email"`
	Image     *string `json:"image,omitempty"`
}

// BatchResponse is the wire shape of a training batch.
type BatchResponse struct {
	BatchID             int64     `json:"batchID"`
	BatchNumber         int       `json:"batchNumber"`
	Year                int       `json:"year"`
	StartDate           time.Time `json:"startDate"`
	EndDate             time.Time `json:"endDate"`
	Location            string    `json:"location"`
	MaxParticipants     int       `json:"maxParticipants"`
	RegistrationEndDate time.Time `json:"registrationEndDate"`
	Description         *string   `json:"description,omitempty"`
	IsActive            bool      `json:"isActive"`
}

// EnrollmentResponse is an enrollment joined with its batch details.
type EnrollmentResponse struct {
	EnrollmentID int64         `json:"enrollmentID"`
	BatchID      int64         `json:"batchID"`
	RegisteredAt time.Time     `json:"registeredAt"`
	Status       string        `json:"status"`
	Notes        *string       `json:"notes,omitempty"`
	IsAttended   bool          `json:"isAttended"`
	Batch        BatchResponse `json:"batch"`
}

// CoachDetailResponse is the coach entity joined with location, the restricted
// user projection and enrollments-with-batch.
type CoachDetailResponse struct {
	CoachID                 int64                `json:"coachID"`
	UserID                  int64                `json:"userID"`
	TeamName                *string              `json:"teamName,omitempty"`
	Nickname                *string              `json:"nickname,omitempty"`
	Gender                  string               `json:"gender"`
	Age                     int                  `json:"age"`
	NationalIDNumber        string               `json:"nationalIdNumber"`
	Address                 string               `json:"address"`
	PhoneNumber             string               `json:"phoneNumber"`
	LineID                  *string              `json:"lineId,omitempty"`
	Religion                string               `json:"religion"`
	HasMedicalCondition     bool                 `json:"hasMedicalCondition"`
	MedicalConditionDetail  *string              `json:"medicalConditionDetail,omitempty"`
	FoodPreference          string               `json:"foodPreference"`
	CoachStatus             string               `json:"coachStatus"`
	YearsOfExperience       int                  `json:"yearsOfExperience"`
	PriorParticipationCount int                  `json:"priorParticipationCount"`
	NeedsAccommodation      bool                 `json:"needsAccommodation"`
	ShirtSize               string               `json:"shirtSize"`
	Expectations            *string              `json:"expectations,omitempty"`
	IsApproved              bool                 `json:"isApproved"`
	RegistrationCompleted   bool                 `json:"registrationCompleted"`
	Location                LocationResponse     `json:"location"`
	User                    UserSummaryResponse  `json:"user"`
	Enrollments             []EnrollmentResponse `json:"enrollments"`
	SelectedBatchIDs        []int64              `json:"selectedBatchIds,omitempty"`
}

// ToBatchResponse converts a domain TrainingBatch to its wire shape.
func ToBatchResponse(b domain.TrainingBatch) BatchResponse {
	return BatchResponse{
		BatchID:             b.BatchID,
		BatchNumber:         b.BatchNumber,
		Year:                b.Year,
		StartDate:           b.StartDate,
		EndDate:             b.EndDate,
		Location:            b.Location,
		MaxParticipants:     b.MaxParticipants,
		RegistrationEndDate: b.RegistrationEndDate,
		Description:         b.Description,
		IsActive:            b.IsActive,
	}
}

// ToCoachDetailResponse converts a CoachWithDetails to its wire shape.
func ToCoachDetailResponse(c *domain.CoachWithDetails) *CoachDetailResponse {
	enrollments := make([]EnrollmentResponse, len(c.Enrollments))
	for i, e := range c.Enrollments {
		enrollments[i] = EnrollmentResponse{
			EnrollmentID: e.EnrollmentID,
			BatchID:      e.BatchID,
			RegisteredAt: e.RegisteredAt,
			Status:       string(e.Status),
			Notes:        e.Notes,
			IsAttended:   e.IsAttended,
			Batch:        ToBatchResponse(e.Batch),
		}
	}

	return &CoachDetailResponse{
		CoachID:                 c.CoachID,
		UserID:                  c.UserID,
		TeamName:                c.TeamName,
		Nickname:                c.Nickname,
		Gender:                  c.Gender,
		Age:                     c.Age,
		NationalIDNumber:        c.NationalIDNumber,
		Address:                 c.Address,
		PhoneNumber:             c.PhoneNumber,
		LineID:                  c.LineID,
		Religion:                c.Religion,
		HasMedicalCondition:     c.HasMedicalCondition,
		MedicalConditionDetail:  c.MedicalConditionDetail,
		FoodPreference:          c.FoodPreference,
		CoachStatus:             c.CoachStatus,
		YearsOfExperience:       c.YearsOfExperience,
		PriorParticipationCount: c.PriorParticipationCount,
		NeedsAccommodation:      c.NeedsAccommodation,
		ShirtSize:               c.ShirtSize,
		Expectations:            c.Expectations,
		IsApproved:              c.IsApproved,
		RegistrationCompleted:   c.RegistrationCompleted,
		Location: LocationResponse{
			LocationID: c.Location.LocationID,
			District:   c.Location.District,
			County:     c.Location.County,
			Province:   c.Location.Province,
			Region:     c.Location.Region,
		},
		User: UserSummaryResponse{
			UserID:    c.User.UserID,
			FirstName: c.User.FirstName,
			LastName:  c.User.LastName,
			Email:     c.User.Email,
			Image:     c.User.Image,
		},
		Enrollments:      enrollments,
		SelectedBatchIDs: c.SelectedBatchIDs,
	}
}
