package models

// Coach is the persistence shape of a coach profile. user_id and
// national_id_number carry unique constraints.
type Coach struct {
	CoachID                 int64   `db:"coach_id"`
	UserID                  int64   `db:"user_id"`
	TeamName                *string `db:"team_name"`
	Nickname                *string `db:"nickname"`
	Gender                  string  `db:"gender"`
	Age                     int     `db:"age"`
	NationalIDNumber        string  `db:"national_id_number"`
	Address                 string  `db:"address"`
	PhoneNumber             string  `db:"phone_number"`
	LineID                  *string `db:"line_id"`
	Religion                string  `db:"religion"`
	HasMedicalCondition     bool    `db:"has_medical_condition"`
	MedicalConditionDetail  *string `db:"medical_condition_detail"`
	FoodPreference          string  `db:"food_preference"`
	CoachStatus             string  `db:"coach_status"`
	YearsOfExperience       int     `db:"years_of_experience"`
	PriorParticipationCount int     `db:"prior_participation_count"`
	NeedsAccommodation      bool    `db:"needs_accommodation"`
	ShirtSize               string  `db:"shirt_size"`
	Expectations            *string `db:"expectations"`
	LocationID              int64   `db:"location_id"`
	IsApproved              bool    `db:"is_approved"`
	RegistrationCompleted   bool    `db:"registration_completed"`
	AuditFields
}
