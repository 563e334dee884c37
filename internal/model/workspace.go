package model

import "time"

// Workspace is a row in the external workspaces table, returned verbatim.
type Workspace struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
