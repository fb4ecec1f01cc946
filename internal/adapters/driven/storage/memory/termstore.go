package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/rebrand-tracker/internal/core/ports/driven"
)

// Ensure TermStore implements the interface.
var _ driven.TermRepository = (*TermStore)(nil)

// TermStore is an in-memory implementation of driven.TermRepository.
type TermStore struct {
	mu    sync.RWMutex
	terms []string
}

// NewTermStore creates a new in-memory term store.
func NewTermStore() *TermStore {
	return &TermStore{}
}

// LoadTerms returns a copy of the stored terms.
func (s *TermStore) LoadTerms(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.terms))
	copy(out, s.terms)
	return out, nil
}

// SaveTerms replaces the stored terms.
func (s *TermStore) SaveTerms(_ context.Context, terms []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.terms = make([]string, len(terms))
	copy(s.terms, terms)
	return nil
}

// ClearTerms removes all stored terms.
func (s *TermStore) ClearTerms(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.terms = nil
	return nil
}
