package memory

import (
	"context"
	"sync"
	"time"

	"pdfscan/internal/model"
	"pdfscan/internal/repository"
)

// UserMemory is a process-local implementation of repository.UserRepository.
// Records live for the lifetime of the process. A counter incremented under
// the mutex assigns ids, so concurrent registrations cannot collide.
type UserMemory struct {
	mu      sync.RWMutex
	nextID  int64
	users   []model.User
	byEmail map[string]int // index into users
	byName  map[string]int
}

// NewUserMemory creates an empty in-memory user repository.
func NewUserMemory() *UserMemory {
	return &UserMemory{
		byEmail: make(map[string]int),
		byName:  make(map[string]int),
	}
}

var _ repository.UserRepository = (*UserMemory)(nil)

// Create stores a new user; the uniqueness check and insert happen under one lock.
func (r *UserMemory) Create(ctx context.Context, u *model.User) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[u.Email]; ok {
		return nil, repository.ErrDuplicate
	}
	if _, ok := r.byName[u.Username]; ok {
		return nil, repository.ErrDuplicate
	}

	r.nextID++
	stored := *u
	stored.ID = r.nextID
	stored.CreatedAt = time.Now().UTC()

	r.users = append(r.users, stored)
	idx := len(r.users) - 1
	r.byEmail[stored.Email] = idx
	r.byName[stored.Username] = idx

	return &stored, nil
}

// FindByID returns a user by id.
func (r *UserMemory) FindByID(ctx context.Context, id int64) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.users {
		if r.users[i].ID == id {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

// FindByEmail returns a user by email.
func (r *UserMemory) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byEmail[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	u := r.users[idx]
	return &u, nil
}
