package mapping

import (
	"github.com/cabindev/sdnfutsal/internal/core/domain"
	"github.com/cabindev/sdnfutsal/internal/models"
)

// ToDomainEnrollment converts a model Enrollment to a domain Enrollment
func ToDomainEnrollment(m models.Enrollment) domain.Enrollment {
	return domain.Enrollment{
		EnrollmentID: m.EnrollmentID,
		BatchID:      m.BatchID,
		CoachID:      m.CoachID,
		RegisteredAt: m.RegisteredAt,
		Status:       domain.EnrollmentStatus(m.Status),
		Notes:        m.Notes,
		IsAttended:   m.IsAttended,
	}
}

// ToDomainEnrollmentSlice converts a slice of model Enrollments to domain Enrollments
func ToDomainEnrollmentSlice(ms []models.Enrollment) []domain.Enrollment {
	ds := make([]domain.Enrollment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainEnrollment(m)
	}
	return ds
}
