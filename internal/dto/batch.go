package dto

import (
	"time"

	"github.com/cabindev/sdnfutsal/internal/core/domain"
)

// SaveBatchRequest defines the admin payload for creating or updating a
// training batch.
type SaveBatchRequest struct {
	BatchNumber         int       `json:"batchNumber" binding:"required,gt=0"`
	Year                int       `json:"year" binding:"required,gt=0"`
	StartDate           time.Time `json:"startDate" binding:"required"`
	EndDate             time.Time `json:"endDate" binding:"required"`
	Location            string    `json:"location" binding:"required"`
	MaxParticipants     int       `json:"maxParticipants" binding:"required,gt=0"`
	RegistrationEndDate time.Time `json:"registrationEndDate" binding:"required"`
	Description         *string   `json:"description"`
	IsActive            bool      `json:"isActive"`
}

// ListBatchesParams defines query parameters for listing batches.
type ListBatchesParams struct {
	ActiveOnly bool `form:"activeOnly,default=false"`
	Limit      int  `form:"limit,default=20"`
	Offset     int  `form:"offset,default=0"`
}

// ListBatchesResponse wraps the list of batches.
type ListBatchesResponse struct {
	Batches []BatchResponse `json:"batches"`
}

// RegisterToBatchRequest defines the payload for the public batch enroll flow.
type RegisterToBatchRequest struct {
	CoachID int64 `json:"coachID" binding:"required,gt=0"`
}

// RegisterToBatchResponse is the envelope returned by the public enroll flow.
type RegisterToBatchResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// UpdateEnrollmentStatusRequest defines the admin payload for participant
// status transitions and attendance marking.
type UpdateEnrollmentStatusRequest struct {
	Status     string  `json:"status" binding:"required"`
	Notes      *string `json:"notes"`
	IsAttended *bool   `json:"isAttended"`
}

// ParticipantResponse is an enrollment joined with the coach profile and the
// restricted user projection, used by the admin participant views.
type ParticipantResponse struct {
	EnrollmentID int64               `json:"enrollmentID"`
	BatchID      int64               `json:"batchID"`
	RegisteredAt time.Time           `json:"registeredAt"`
	Status       string              `json:"status"`
	Notes        *string             `json:"notes,omitempty"`
	IsAttended   bool                `json:"isAttended"`
	CoachID      int64               `json:"coachID"`
	TeamName     *string             `json:"teamName,omitempty"`
	PhoneNumber  string              `json:"phoneNumber"`
	User         UserSummaryResponse `json:"user"`
}

// ListParticipantsResponse wraps the participants of a batch.
type ListParticipantsResponse struct {
	Participants []ParticipantResponse `json:"participants"`
}

// ToParticipantResponse converts a domain BatchParticipant to its wire shape.
func ToParticipantResponse(p domain.BatchParticipant) ParticipantResponse {
	return ParticipantResponse{
		EnrollmentID: p.EnrollmentID,
		BatchID:      p.BatchID,
		RegisteredAt: p.RegisteredAt,
		Status:       string(p.Status),
		Notes:        p.Notes,
		IsAttended:   p.IsAttended,
		CoachID:      p.Coach.CoachID,
		TeamName:     p.Coach.TeamName,
		PhoneNumber:  p.Coach.PhoneNumber,
		User: UserSummaryResponse{
			UserID:    p.User.UserID,
			FirstName: p.User.FirstName,
			LastName:  p.User.LastName,
			Email:     p.User.Email,
			Image:     p.User.Image,
		},
	}
}
