package dto

import "github.com/cabindev/sdnfutsal/internal/core/domain"

// UserResponse is the wire shape of a user. Credential fields are omitted.
type UserResponse struct {
	UserID    int64   `json:"userID"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     string  `json:"email"`
	Image     *string `json:"image,omitempty"`
	Role      string  `json:"role"`
}

// ToUserResponse converts a domain User to its wire shape.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:    u.UserID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Image:     u.Image,
		Role:      string(u.Role),
	}
}
