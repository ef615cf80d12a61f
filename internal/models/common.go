package models

import "time"

// AuditFields holds the creation and update timestamps stored on every row.
type AuditFields struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
