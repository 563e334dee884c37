package service

import (
	"context"
	"testing"

	"pdfscan/internal/model"
	"pdfscan/internal/repository"
	repoMocks "pdfscan/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkspaceService_CreateRequiresName(t *testing.T) {
	ctx := context.Background()
	mRepo := new(repoMocks.MockWorkspaceRepository)
	svc := NewWorkspaceService(mRepo)

	_, err := svc.Create(ctx, "")
	assert.ErrorIs(t, err, ErrNameRequired)
	mRepo.AssertNotCalled(t, "Create")

	mRepo.On("Create", ctx, "Alpha").Return(&model.Workspace{ID: 1, Name: "Alpha"}, nil)
	w, err := svc.Create(ctx, "Alpha")
	require.NoError(t, err)
	assert.Equal(t, int64(1), w.ID)
}

func TestWorkspaceService_UpdateRequiresName(t *testing.T) {
	ctx := context.Background()
	mRepo := new(repoMocks.MockWorkspaceRepository)
	svc := NewWorkspaceService(mRepo)

	_, err := svc.Update(ctx, 1, "")
	assert.ErrorIs(t, err, ErrNameRequired)
	mRepo.AssertNotCalled(t, "Update")
}

func TestWorkspaceService_UpdateMissingRow(t *testing.T) {
	ctx := context.Background()
	mRepo := new(repoMocks.MockWorkspaceRepository)
	svc := NewWorkspaceService(mRepo)

	mRepo.On("Update", ctx, int64(99), "X").Return(nil, repository.ErrNotFound)

	_, err := svc.Update(ctx, 99, "X")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestWorkspaceService_ListAndDelete(t *testing.T) {
	ctx := context.Background()
	mRepo := new(repoMocks.MockWorkspaceRepository)
	svc := NewWorkspaceService(mRepo)

	mRepo.On("List", ctx).Return([]model.Workspace{{ID: 1, Name: "Alpha"}}, nil)
	mRepo.On("Delete", ctx, int64(1)).Return(nil)

	ws, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, ws, 1)

	assert.NoError(t, svc.Delete(ctx, 1))
	mRepo.AssertExpectations(t)
}
