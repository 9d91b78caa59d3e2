package store

import (
	"context"
	"sync"

	"ukdtimers/internal/model"
)

// MemoryStore keeps the document in process memory. Load and Save copy, so
// callers never share state with the store.
type MemoryStore struct {
	mu  sync.Mutex
	doc *model.Document
}

// NewMemoryStore returns a store holding a copy of doc, or an empty document
// when doc is nil.
func NewMemoryStore(doc *model.Document) *MemoryStore {
	if doc == nil {
		doc = model.NewDocument()
	}
	return &MemoryStore{doc: doc.Clone()}
}

// Load implements Store.
func (s *MemoryStore) Load(_ context.Context) *model.Document {
	s.mu.Lock()
	doc := s.doc.Clone()
	s.mu.Unlock()

	Migrate(doc)
	return doc
}

// Save implements Store.
func (s *MemoryStore) Save(_ context.Context, doc *model.Document) error {
	s.mu.Lock()
	s.doc = doc.Clone()
	s.mu.Unlock()
	return nil
}

// Close implements Store.
func (s *MemoryStore) Close() error {
	return nil
}
