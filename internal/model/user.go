package model

import "time"

// User is a registered account held by the in-memory user repository.
// The password hash is never serialized; public JSON carries only
// id, username, email and createdAt.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
