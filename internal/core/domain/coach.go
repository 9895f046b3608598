package domain

// Coach is the central certification-program profile. One coach per user,
// one national ID number across all coaches.
type Coach struct {
	CoachID                 int64   `json:"coachID"`
	UserID                  int64   `json:"userID"`
	TeamName                *string `json:"teamName,omitempty"`
	Nickname                *string `json:"nickname,omitempty"`
	Gender                  string  `json:"gender"`
	Age                     int     `json:"age"`
	NationalIDNumber        string  `json:"nationalIdNumber"`
	Address                 string  `json:"address"`
	PhoneNumber             string  `json:"phoneNumber"`
	LineID                  *string `json:"lineId,omitempty"`
	Religion                string  `json:"religion"`
	HasMedicalCondition     bool    `json:"hasMedicalCondition"`
	MedicalConditionDetail  *string `json:"medicalConditionDetail,omitempty"`
	FoodPreference          string  `json:"foodPreference"`
	CoachStatus             string  `json:"coachStatus"`
	YearsOfExperience       int     `json:"yearsOfExperience"`
	PriorParticipationCount int     `json:"priorParticipationCount"`
	NeedsAccommodation      bool    `json:"needsAccommodation"`
	ShirtSize               string  `json:"shirtSize"`
	Expectations            *string `json:"expectations,omitempty"`
	LocationID              int64   `json:"locationID"`
	IsApproved              bool    `json:"isApproved"`
	RegistrationCompleted   bool    `json:"registrationCompleted"`
	AuditFields
}

// CoachWithDetails is a coach joined with its location, the restricted user
// projection, and enrollments with batch details. SelectedBatchIDs echoes the
// batch selection of the originating request on the create path; it is a
// convenience field, not a persisted column.
type CoachWithDetails struct {
	Coach
	Location         Location              `json:"location"`
	User             UserSummary           `json:"user"`
	Enrollments      []EnrollmentWithBatch `json:"enrollments"`
	SelectedBatchIDs []int64               `json:"selectedBatchIds,omitempty"`
}
