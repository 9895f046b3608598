package models

import "time"

// AuditFields holds the standard audit timestamps stored with every row.
type AuditFields struct {
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
