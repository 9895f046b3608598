package mapping

import (
	"github.com/cabindev/sdnfutsal/internal/core/domain"
	"github.com/cabindev/sdnfutsal/internal/models"
)

// ToModelTrainingBatch converts a domain TrainingBatch to a model TrainingBatch
func ToModelTrainingBatch(d domain.TrainingBatch) models.TrainingBatch {
	return models.TrainingBatch{
		BatchID:             d.BatchID,
		BatchNumber:         d.BatchNumber,
		Year:                d.Year,
		StartDate:           d.StartDate,
		EndDate:             d.EndDate,
		Location:            d.Location,
		MaxParticipants:     d.MaxParticipants,
		RegistrationEndDate: d.RegistrationEndDate,
		Description:         d.Description,
		IsActive:            d.IsActive,
		AuditFields: models.AuditFields{
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
		},
	}
}

// ToDomainTrainingBatch converts a model TrainingBatch to a domain TrainingBatch
func ToDomainTrainingBatch(m models.TrainingBatch) domain.TrainingBatch {
	return domain.TrainingBatch{
		BatchID:             m.BatchID,
		BatchNumber:         m.BatchNumber,
		Year:                m.Year,
		StartDate:           m.StartDate,
		EndDate:             m.EndDate,
		Location:            m.Location,
		MaxParticipants:     m.MaxParticipants,
		RegistrationEndDate: m.RegistrationEndDate,
		Description:         m.Description,
		IsActive:            m.IsActive,
		AuditFields: domain.AuditFields{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
}

// ToDomainTrainingBatchSlice converts a slice of model batches to domain batches
func ToDomainTrainingBatchSlice(ms []models.TrainingBatch) []domain.TrainingBatch {
	ds := make([]domain.TrainingBatch, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTrainingBatch(m)
	}
	return ds
}
