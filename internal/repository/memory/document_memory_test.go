package memory

import (
	"context"
	"testing"

	"pdfscan/internal/model"
	"pdfscan/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v int64) *int64 { return &v }

func TestDocumentMemory_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewDocumentMemory()

	d1, err := repo.Create(ctx, &model.Document{Filename: "a.pdf", Size: 10, Pages: 2, Text: "hello", OwnerID: ptr(1)})
	require.NoError(t, err)
	assert.Equal(t, int64(1), d1.ID)

	d2, err := repo.Create(ctx, &model.Document{Filename: "b.pdf", OwnerID: ptr(1)})
	require.NoError(t, err)
	assert.Equal(t, int64(2), d2.ID)

	got, err := repo.FindByID(ctx, d1.ID)
	require.NoError(t, err)
	assert.Equal(t, "a.pdf", got.Filename)
	assert.Equal(t, "hello", got.Text)

	_, err = repo.FindByID(ctx, 99)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDocumentMemory_ListByOwner(t *testing.T) {
	ctx := context.Background()
	repo := NewDocumentMemory()

	_, err := repo.Create(ctx, &model.Document{Filename: "mine1.pdf", OwnerID: ptr(1)})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &model.Document{Filename: "theirs.pdf", OwnerID: ptr(2)})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &model.Document{Filename: "anon.pdf"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &model.Document{Filename: "mine2.pdf", OwnerID: ptr(1)})
	require.NoError(t, err)

	docs, err := repo.ListByOwner(ctx, 1)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	// insertion order preserved
	assert.Equal(t, "mine1.pdf", docs[0].Filename)
	assert.Equal(t, "mine2.pdf", docs[1].Filename)

	empty, err := repo.ListByOwner(ctx, 42)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestDocumentMemory_DeleteOwned(t *testing.T) {
	ctx := context.Background()
	repo := NewDocumentMemory()

	mine, err := repo.Create(ctx, &model.Document{Filename: "mine.pdf", OwnerID: ptr(1), ArchiveKey: "pdfs/mine"})
	require.NoError(t, err)
	theirs, err := repo.Create(ctx, &model.Document{Filename: "theirs.pdf", OwnerID: ptr(2)})
	require.NoError(t, err)
	anon, err := repo.Create(ctx, &model.Document{Filename: "anon.pdf"})
	require.NoError(t, err)

	t.Run("owner can delete", func(t *testing.T) {
		deleted, err := repo.DeleteOwned(ctx, mine.ID, 1)
		require.NoError(t, err)
		assert.Equal(t, "pdfs/mine", deleted.ArchiveKey)

		_, err = repo.FindByID(ctx, mine.ID)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("non-owner and missing id are indistinguishable", func(t *testing.T) {
		_, errOther := repo.DeleteOwned(ctx, theirs.ID, 1)
		_, errMissing := repo.DeleteOwned(ctx, 999, 1)
		assert.ErrorIs(t, errOther, repository.ErrNotFound)
		assert.ErrorIs(t, errMissing, repository.ErrNotFound)
		assert.Equal(t, errOther, errMissing)
	})

	t.Run("anonymous document cannot be deleted", func(t *testing.T) {
		_, err := repo.DeleteOwned(ctx, anon.ID, 1)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("ids are not reused after deletion", func(t *testing.T) {
		d, err := repo.Create(ctx, &model.Document{Filename: "next.pdf"})
		require.NoError(t, err)
		assert.Equal(t, int64(4), d.ID)
	})
}
