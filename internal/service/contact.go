package service

import (
	"context"
	"errors"

	"pdfscan/internal/model"
	"pdfscan/internal/repository"
)

// ContactService is a stateless passthrough over the contacts table.
type ContactService interface {
	List(ctx context.Context) ([]model.Contact, error)
	Get(ctx context.Context, id int64) (*model.Contact, error)
	Create(ctx context.Context, c *model.Contact) (*model.Contact, error)
	Update(ctx context.Context, id int64, c *model.Contact) (*model.Contact, error)
	Delete(ctx context.Context, id int64) error
}

type contactService struct {
	repo repository.ContactRepository
}

// NewContactService constructs a new ContactService.
func NewContactService(repo repository.ContactRepository) ContactService {
	return &contactService{repo: repo}
}

func (s *contactService) List(ctx context.Context) ([]model.Contact, error) {
	return s.repo.List(ctx)
}

func (s *contactService) Get(ctx context.Context, id int64) (*model.Contact, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (s *contactService) Create(ctx context.Context, c *model.Contact) (*model.Contact, error) {
	return s.repo.Create(ctx, c)
}

func (s *contactService) Update(ctx context.Context, id int64, c *model.Contact) (*model.Contact, error) {
	updated, err := s.repo.Update(ctx, id, c)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (s *contactService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
