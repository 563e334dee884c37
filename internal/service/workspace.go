package service

import (
	"context"
	"errors"

	"pdfscan/internal/model"
	"pdfscan/internal/repository"
)

// WorkspaceService is a stateless passthrough over the workspaces table.
// Create and Update require a non-empty name; nothing else is validated.
type WorkspaceService interface {
	List(ctx context.Context) ([]model.Workspace, error)
	Create(ctx context.Context, name string) (*model.Workspace, error)
	Update(ctx context.Context, id int64, name string) (*model.Workspace, error)
	Delete(ctx context.Context, id int64) error
}

type workspaceService struct {
	repo repository.WorkspaceRepository
}

// NewWorkspaceService constructs a new WorkspaceService.
func NewWorkspaceService(repo repository.WorkspaceRepository) WorkspaceService {
	return &workspaceService{repo: repo}
}

func (s *workspaceService) List(ctx context.Context) ([]model.Workspace, error) {
	return s.repo.List(ctx)
}

func (s *workspaceService) Create(ctx context.Context, name string) (*model.Workspace, error) {
	if name == "" {
		return nil, ErrNameRequired
	}
	return s.repo.Create(ctx, name)
}

func (s *workspaceService) Update(ctx context.Context, id int64, name string) (*model.Workspace, error) {
	if name == "" {
		return nil, ErrNameRequired
	}
	w, err := s.repo.Update(ctx, id, name)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return w, nil
}

func (s *workspaceService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
