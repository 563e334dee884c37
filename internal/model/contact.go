package model

import "time"

// Contact is a row in the external contacts table, returned verbatim.
// JSON keys mirror the column names.
type Contact struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	WorkspaceID *int64    `json:"workspace_id"`
	CreatedAt   time.Time `json:"created_at"`
}
