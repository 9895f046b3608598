package domain

// UserRole distinguishes administrators from regular users.
type UserRole string

const (
	RoleAdmin UserRole = "ADMIN"
	RoleUser  UserRole = "USER"
)

// AuthProvider identifies how a user account authenticates.
type AuthProvider string

const (
	ProviderLocal  AuthProvider = "local"
	ProviderGoogle AuthProvider = "google"
)

// User represents an identity record. It is owned by the authentication
// subsystem; the registration workflow only reads it.
type User struct {
	UserID         int64        `json:"userID"`
	FirstName      string       `json:"firstName"`
	LastName       string       `json:"lastName"`
	Email          string       `json:"email"`
	Image          *string      `json:"image,omitempty"`
	Role           UserRole     `json:"role"`
	AuthProvider   AuthProvider `json:"-"`
	ProviderUserID *string      `json:"-"`
	PasswordHash   *string      `json:"-"`
	AuditFields
}

// IsAdmin reports whether the user holds the administrator role.
func (u User) IsAdmin() bool { return u.Role == RoleAdmin }

// UserSummary is the restricted projection of a user that is safe to embed in
// coach responses. Credential fields are never included.
type UserSummary struct {
	UserID    int64   `json:"userID"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     string  `json:"email"`
	Image     *string `json:"image,omitempty"`
}

// Summary returns the restricted projection of the user.
func (u User) Summary() UserSummary {
	return UserSummary{
		UserID:    u.UserID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Image:     u.Image,
	}
}
