package repository

import (
	"context"
	"fmt"
	"sync"

	"ukdtimers/internal/model"
	"ukdtimers/internal/store"
)

// DocumentRepository is the only path from services to the store.
type DocumentRepository interface {
	// Snapshot returns a freshly loaded copy of the document.
	Snapshot(ctx context.Context) *model.Document
	// Update loads the document, applies fn and saves the result. Calls are
	// serialized, so concurrent updates never overwrite each other. When fn
	// returns an error nothing is saved and the error is returned as is.
	Update(ctx context.Context, fn func(doc *model.Document) error) error
}

type documentRepository struct {
	store store.Store
	mu    sync.Mutex
}

// NewDocumentRepository wraps s.
func NewDocumentRepository(s store.Store) DocumentRepository {
	return &documentRepository{store: s}
}

func (r *documentRepository) Snapshot(ctx context.Context) *model.Document {
	return r.store.Load(ctx)
}

func (r *documentRepository) Update(ctx context.Context, fn func(doc *model.Document) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc := r.store.Load(ctx)
	if err := fn(doc); err != nil {
		return err
	}
	if err := r.store.Save(ctx, doc); err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	return nil
}
