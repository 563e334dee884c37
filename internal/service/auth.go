package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"pdfscan/internal/auth"
	"pdfscan/internal/model"
	"pdfscan/internal/repository"
)

// AuthService defines the use cases for accounts and sessions.
type AuthService interface {
	// Register creates an account and returns the stored user plus a fresh token.
	// Fails with ErrMissingFields on empty input and ErrUserExists when the
	// email or username is already taken.
	Register(ctx context.Context, username, email, password string) (*model.User, string, error)

	// Login checks credentials and returns the user plus a fresh token.
	// Unknown email and wrong password both fail with ErrInvalidCredentials,
	// so callers cannot probe which accounts exist.
	Login(ctx context.Context, email, password string) (*model.User, string, error)

	// Profile returns the user for a verified token's user id.
	Profile(ctx context.Context, userID int64) (*model.User, error)
}

type authService struct {
	repo   repository.UserRepository
	tokens *auth.Manager
}

// NewAuthService constructs a new AuthService.
func NewAuthService(repo repository.UserRepository, tokens *auth.Manager) AuthService {
	return &authService{repo: repo, tokens: tokens}
}

func (s *authService) Register(ctx context.Context, username, email, password string) (*model.User, string, error) {
	if username == "" || email == "" || password == "" {
		return nil, "", ErrMissingFields
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user, err := s.repo.Create(ctx, &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, "", ErrUserExists
		}
		return nil, "", err
	}

	token, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	if email == "" || password == "" {
		return nil, "", ErrMissingFields
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *authService) Profile(ctx context.Context, userID int64) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}
