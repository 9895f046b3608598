package mapping

import (
	"github.com/cabindev/sdnfutsal/internal/core/domain"
	"github.com/cabindev/sdnfutsal/internal/models"
)

// ToModelCoach converts a domain Coach to a model Coach
func ToModelCoach(d domain.Coach) models.Coach {
	return models.Coach{
		CoachID:                 d.CoachID,
		UserID:                  d.UserID,
		TeamName:                d.TeamName,
		Nickname:                d.Nickname,
		Gender:                  d.Gender,
		Age:                     d.Age,
		NationalIDNumber:        d.NationalIDNumber,
		Address:                 d.Address,
		PhoneNumber:             d.PhoneNumber,
		LineID:                  d.LineID,
		Religion:                d.Religion,
		HasMedicalCondition:     d.HasMedicalCondition,
		MedicalConditionDetail:  d.MedicalConditionDetail,
		FoodPreference:          d.FoodPreference,
		CoachStatus:             d.CoachStatus,
		YearsOfExperience:       d.YearsOfExperience,
		PriorParticipationCount: d.PriorParticipationCount,
		NeedsAccommodation:      d.NeedsAccommodation,
		ShirtSize:               d.ShirtSize,
		Expectations:            d.Expectations,
		LocationID:              d.LocationID,
		IsApproved:              d.IsApproved,
		RegistrationCompleted:   d.RegistrationCompleted,
		AuditFields: models.AuditFields{
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
		},
	}
}

// ToDomainCoach converts a model Coach to a domain Coach
func ToDomainCoach(m models.Coach) domain.Coach {
	return domain.Coach{
		CoachID:                 m.CoachID,
		UserID:                  m.UserID,
		TeamName:                m.TeamName,
		Nickname:                m.Nickname,
		Gender:                  m.Gender,
		Age:                     m.Age,
		NationalIDNumber:        m.NationalIDNumber,
		Address:                 m.Address,
		PhoneNumber:             m.PhoneNumber,
		LineID:                  m.LineID,
		Religion:                m.Religion,
		HasMedicalCondition:     m.HasMedicalCondition,
		MedicalConditionDetail:  m.MedicalConditionDetail,
		FoodPreference:          m.FoodPreference,
		CoachStatus:             m.CoachStatus,
		YearsOfExperience:       m.YearsOfExperience,
		PriorParticipationCount: m.PriorParticipationCount,
		NeedsAccommodation:      m.NeedsAccommodation,
		ShirtSize:               m.ShirtSize,
		Expectations:            m.Expectations,
		LocationID:              m.LocationID,
		IsApproved:              m.IsApproved,
		RegistrationCompleted:   m.RegistrationCompleted,
		AuditFields: domain.AuditFields{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
}

// ToDomainCoachSlice converts a slice of model Coaches to domain Coaches
func ToDomainCoachSlice(ms []models.Coach) []domain.Coach {
	ds := make([]domain.Coach, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCoach(m)
	}
	return ds
}
