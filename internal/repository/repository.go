package repository

// Package repository contains data access layer abstractions.
// Implementations live in subpackages (memory for the process-local stores,
// postgres for the relational passthrough tables).

import (
	"context"
	"errors"

	"pdfscan/internal/model"
)

var (
	// ErrNotFound is returned when no record matches the lookup.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a unique field is already taken.
	ErrDuplicate = errors.New("duplicate record")
)

// UserRepository defines data access for registered users.
// No business logic here — strictly storage operations.
type UserRepository interface {
	// Create stores a new user and assigns its ID and CreatedAt.
	// Returns ErrDuplicate when the email or username is already taken;
	// the uniqueness check and the insert are atomic.
	Create(ctx context.Context, u *model.User) (*model.User, error)

	// FindByID returns a user by id, or ErrNotFound.
	FindByID(ctx context.Context, id int64) (*model.User, error)

	// FindByEmail returns a user by email, or ErrNotFound.
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}

// DocumentRepository defines data access for scanned documents.
type DocumentRepository interface {
	// Create stores a new document and assigns its ID.
	Create(ctx context.Context, d *model.Document) (*model.Document, error)

	// FindByID returns a document by id, or ErrNotFound.
	FindByID(ctx context.Context, id int64) (*model.Document, error)

	// ListByOwner returns the documents owned by the given user, in insertion order.
	ListByOwner(ctx context.Context, ownerID int64) ([]model.Document, error)

	// DeleteOwned removes the document matching both id and owner and returns it.
	// Returns ErrNotFound whether the id is absent or owned by someone else;
	// the two cases are indistinguishable to callers.
	DeleteOwned(ctx context.Context, id, ownerID int64) (*model.Document, error)
}

// ContactRepository defines passthrough access to the contacts table.
type ContactRepository interface {
	List(ctx context.Context) ([]model.Contact, error)
	FindByID(ctx context.Context, id int64) (*model.Contact, error)
	Create(ctx context.Context, c *model.Contact) (*model.Contact, error)
	// Update rewrites name, email and phone for the given id, or ErrNotFound.
	Update(ctx context.Context, id int64, c *model.Contact) (*model.Contact, error)
	// Delete removes a contact by ID. It returns nil if the row did not exist.
	Delete(ctx context.Context, id int64) error
}

// WorkspaceRepository defines passthrough access to the workspaces table.
type WorkspaceRepository interface {
	List(ctx context.Context) ([]model.Workspace, error)
	Create(ctx context.Context, name string) (*model.Workspace, error)
	Update(ctx context.Context, id int64, name string) (*model.Workspace, error)
	Delete(ctx context.Context, id int64) error
}
