package service

import "errors"

// Sentinel errors translated to HTTP statuses at the handler boundary.
var (
	ErrMissingFields      = errors.New("missing required fields")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = errors.New("not found")
	ErrNoFile             = errors.New("no file uploaded")
	ErrNotPDF             = errors.New("only pdf files are allowed")
	ErrNameRequired       = errors.New("name is required")
)
