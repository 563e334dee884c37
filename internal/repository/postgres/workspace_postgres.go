package postgres

import (
	"context"
	"database/sql"
	"errors"

	"pdfscan/internal/model"
	"pdfscan/internal/repository"
)

// WorkspacePostgres is a PostgreSQL implementation of repository.WorkspaceRepository.
type WorkspacePostgres struct {
	db *sql.DB
}

// NewWorkspacePostgres creates a new WorkspacePostgres repository.
func NewWorkspacePostgres(db *sql.DB) *WorkspacePostgres {
	return &WorkspacePostgres{db: db}
}

var _ repository.WorkspaceRepository = (*WorkspacePostgres)(nil)

func scanWorkspace(row interface{ Scan(...any) error }) (*model.Workspace, error) {
	var w model.Workspace
	if err := row.Scan(&w.ID, &w.Name, &w.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &w, nil
}

// List returns all workspaces, newest first.
func (r *WorkspacePostgres) List(ctx context.Context) ([]model.Workspace, error) {
	const q = `
		SELECT id, name, created_at
		FROM workspaces
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Workspace, 0)
	for rows.Next() {
		w, err := scanWorkspace(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Create inserts a new workspace row and returns the stored record.
func (r *WorkspacePostgres) Create(ctx context.Context, name string) (*model.Workspace, error) {
	const q = `
		INSERT INTO workspaces (name)
		VALUES ($1)
		RETURNING id, name, created_at
	`
	return scanWorkspace(r.db.QueryRowContext(ctx, q, name))
}

// Update renames a workspace by id.
func (r *WorkspacePostgres) Update(ctx context.Context, id int64, name string) (*model.Workspace, error) {
	const q = `
		UPDATE workspaces SET name = $1
		WHERE id = $2
		RETURNING id, name, created_at
	`
	return scanWorkspace(r.db.QueryRowContext(ctx, q, name, id))
}

// Delete removes a workspace by ID. It does not return an error if the row does not exist.
func (r *WorkspacePostgres) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM workspaces WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}
