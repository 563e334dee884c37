package memory

import (
	"context"
	"sync"

	"pdfscan/internal/model"
	"pdfscan/internal/repository"
)

// DocumentMemory is a process-local implementation of repository.DocumentRepository.
// Insertion order is preserved for listings; ids come from a counter under the
// mutex and stay unique across deletions.
type DocumentMemory struct {
	mu     sync.RWMutex
	nextID int64
	docs   []model.Document
}

// NewDocumentMemory creates an empty in-memory document repository.
func NewDocumentMemory() *DocumentMemory {
	return &DocumentMemory{}
}

var _ repository.DocumentRepository = (*DocumentMemory)(nil)

// Create stores a new document and assigns its id.
func (r *DocumentMemory) Create(ctx context.Context, d *model.Document) (*model.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	stored := *d
	stored.ID = r.nextID
	r.docs = append(r.docs, stored)

	return &stored, nil
}

// FindByID returns the full document record, extracted text included.
func (r *DocumentMemory) FindByID(ctx context.Context, id int64) (*model.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.docs {
		if r.docs[i].ID == id {
			d := r.docs[i]
			return &d, nil
		}
	}
	return nil, repository.ErrNotFound
}

// ListByOwner returns the owner's documents in insertion order.
func (r *DocumentMemory) ListByOwner(ctx context.Context, ownerID int64) ([]model.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Document, 0)
	for i := range r.docs {
		if r.docs[i].OwnerID != nil && *r.docs[i].OwnerID == ownerID {
			out = append(out, r.docs[i])
		}
	}
	return out, nil
}

// DeleteOwned removes the document matching both id and owner.
// A missing id and an ownership mismatch both return ErrNotFound.
func (r *DocumentMemory) DeleteOwned(ctx context.Context, id, ownerID int64) (*model.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.docs {
		if r.docs[i].ID != id {
			continue
		}
		if r.docs[i].OwnerID == nil || *r.docs[i].OwnerID != ownerID {
			return nil, repository.ErrNotFound
		}
		d := r.docs[i]
		r.docs = append(r.docs[:i], r.docs[i+1:]...)
		return &d, nil
	}
	return nil, repository.ErrNotFound
}
