package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"pdfscan/internal/model"
	"pdfscan/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var contactCols = []string{"id", "name", "email", "phone", "workspace_id", "created_at"}

func TestContactPostgres_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewContactPostgres(db)
	ctx := context.Background()

	now := time.Now()
	rows := sqlmock.NewRows(contactCols).
		AddRow(2, "Bob", "b@x.com", "123", nil, now).
		AddRow(1, "Alice", "a@x.com", "456", int64(7), now.Add(-time.Hour))

	mock.ExpectQuery("SELECT (.+) FROM contacts").WillReturnRows(rows)

	contacts, err := repo.List(ctx)

	require.NoError(t, err)
	require.Len(t, contacts, 2)
	assert.Equal(t, "Bob", contacts[0].Name)
	assert.Nil(t, contacts[0].WorkspaceID)
	require.NotNil(t, contacts[1].WorkspaceID)
	assert.Equal(t, int64(7), *contacts[1].WorkspaceID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContactPostgres_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewContactPostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows(contactCols).
			AddRow(1, "Alice", "a@x.com", "456", nil, time.Now())

		mock.ExpectQuery("SELECT (.+) FROM contacts WHERE id = ?").
			WithArgs(int64(1)).
			WillReturnRows(rows)

		c, err := repo.FindByID(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, "Alice", c.Name)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM contacts WHERE id = ?").
			WithArgs(int64(99)).
			WillReturnError(sql.ErrNoRows)

		c, err := repo.FindByID(ctx, 99)

		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.Nil(t, c)
	})
}

func TestContactPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewContactPostgres(db)
	ctx := context.Background()

	wid := int64(3)
	rows := sqlmock.NewRows(contactCols).
		AddRow(1, "Alice", "a@x.com", "456", wid, time.Now())

	mock.ExpectQuery("INSERT INTO contacts").
		WithArgs("Alice", "a@x.com", "456", sql.NullInt64{Int64: wid, Valid: true}).
		WillReturnRows(rows)

	c, err := repo.Create(ctx, &model.Contact{Name: "Alice", Email: "a@x.com", Phone: "456", WorkspaceID: &wid})

	require.NoError(t, err)
	assert.Equal(t, int64(1), c.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContactPostgres_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewContactPostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows(contactCols).
			AddRow(1, "New", "n@x.com", "789", nil, time.Now())

		mock.ExpectQuery("UPDATE contacts SET").
			WithArgs("New", "n@x.com", "789", int64(1)).
			WillReturnRows(rows)

		c, err := repo.Update(ctx, 1, &model.Contact{Name: "New", Email: "n@x.com", Phone: "789"})

		require.NoError(t, err)
		assert.Equal(t, "New", c.Name)
	})

	t.Run("missing row", func(t *testing.T) {
		mock.ExpectQuery("UPDATE contacts SET").
			WithArgs("New", "n@x.com", "789", int64(99)).
			WillReturnError(sql.ErrNoRows)

		c, err := repo.Update(ctx, 99, &model.Contact{Name: "New", Email: "n@x.com", Phone: "789"})

		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.Nil(t, c)
	})
}

func TestContactPostgres_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewContactPostgres(db)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM contacts").
			WithArgs(int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(ctx, 1))
	})

	t.Run("query error", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM contacts").
			WithArgs(int64(2)).
			WillReturnError(errors.New("db down"))

		assert.Error(t, repo.Delete(ctx, 2))
	})
}
