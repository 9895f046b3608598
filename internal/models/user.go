package models

// User is the persistence shape of an identity record.
type User struct {
	UserID         int64   `db:"user_id"`
	FirstName      string  `db:"first_name"`
	LastName       string  `db:"last_name"`
	Email          string  `db:"email"`
	Image          *string `db:"image"`
	Role           string  `db:"role"`
	AuthProvider   string  `db:"auth_provider"`
	ProviderUserID *string `db:"provider_user_id"`
	PasswordHash   *string `db:"password_hash"`
	AuditFields
}

// UserSummary is the restricted user projection joined into coach and
// participant queries. Credential columns are never selected into it.
type UserSummary struct {
	UserID    int64   `db:"user_id"`
	FirstName string  `db:"first_name"`
	LastName  string  `db:"last_name"`
	Email     string  `db:"email"`
	Image     *string `db:"image"`
}
