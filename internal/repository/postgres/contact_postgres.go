package postgres

import (
	"context"
	"database/sql"
	"errors"

	"pdfscan/internal/model"
	"pdfscan/internal/repository"
)

// ContactPostgres is a PostgreSQL implementation of repository.ContactRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type ContactPostgres struct {
	db *sql.DB
}

// NewContactPostgres creates a new ContactPostgres repository.
func NewContactPostgres(db *sql.DB) *ContactPostgres {
	return &ContactPostgres{db: db}
}

var _ repository.ContactRepository = (*ContactPostgres)(nil)

func scanContact(row interface{ Scan(...any) error }) (*model.Contact, error) {
	var c model.Contact
	var wid sql.NullInt64
	if err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &wid, &c.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	if wid.Valid {
		c.WorkspaceID = &wid.Int64
	}
	return &c, nil
}

// List returns all contacts, newest first.
func (r *ContactPostgres) List(ctx context.Context) ([]model.Contact, error) {
	const q = `
		SELECT id, name, email, phone, workspace_id, created_at
		FROM contacts
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Contact, 0)
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// FindByID fetches a single contact by its ID.
func (r *ContactPostgres) FindByID(ctx context.Context, id int64) (*model.Contact, error) {
	const q = `
		SELECT id, name, email, phone, workspace_id, created_at
		FROM contacts
		WHERE id = $1
	`
	return scanContact(r.db.QueryRowContext(ctx, q, id))
}

// Create inserts a new contact row and returns the stored record.
func (r *ContactPostgres) Create(ctx context.Context, c *model.Contact) (*model.Contact, error) {
	const q = `
		INSERT INTO contacts (name, email, phone, workspace_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, email, phone, workspace_id, created_at
	`
	var wid sql.NullInt64
	if c.WorkspaceID != nil {
		wid = sql.NullInt64{Int64: *c.WorkspaceID, Valid: true}
	}
	return scanContact(r.db.QueryRowContext(ctx, q, c.Name, c.Email, c.Phone, wid))
}

// Update rewrites name, email and phone for the given id.
func (r *ContactPostgres) Update(ctx context.Context, id int64, c *model.Contact) (*model.Contact, error) {
	const q = `
		UPDATE contacts SET name = $1, email = $2, phone = $3
		WHERE id = $4
		RETURNING id, name, email, phone, workspace_id, created_at
	`
	return scanContact(r.db.QueryRowContext(ctx, q, c.Name, c.Email, c.Phone, id))
}

// Delete removes a contact by ID. It does not return an error if the row does not exist.
func (r *ContactPostgres) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM contacts WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}
