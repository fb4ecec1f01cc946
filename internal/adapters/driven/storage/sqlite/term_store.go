package sqlite

import (
	"context"
	"fmt"

	"github.com/custodia-labs/rebrand-tracker/internal/core/ports/driven"
)

// Ensure termStore implements the interface.
var _ driven.TermRepository = (*termStore)(nil)

// termStore implements driven.TermRepository.
// Terms are stored one per row, ordered by position.
type termStore struct {
	store *Store
}

// LoadTerms returns the stored terms in saved order.
func (s *termStore) LoadTerms(ctx context.Context) ([]string, error) {
	rows, err := s.store.db.QueryContext(ctx, "SELECT term FROM terms ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("querying terms: %w", err)
	}
	defer rows.Close()

	terms := make([]string, 0)
	for rows.Next() {
		var term string
		if err := rows.Scan(&term); err != nil {
			return nil, fmt.Errorf("scanning term: %w", err)
		}
		terms = append(terms, term)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating terms: %w", err)
	}
	return terms, nil
}

// SaveTerms replaces the stored terms in a single transaction.
func (s *termStore) SaveTerms(ctx context.Context, terms []string) error {
	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM terms"); err != nil {
		return fmt.Errorf("clearing terms: %w", err)
	}
	for i, term := range terms {
		if _, err := tx.ExecContext(ctx, "INSERT INTO terms (position, term) VALUES (?, ?)", i, term); err != nil {
			return fmt.Errorf("inserting term %q: %w", term, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing terms: %w", err)
	}
	return nil
}

// ClearTerms removes all stored terms.
func (s *termStore) ClearTerms(ctx context.Context) error {
	if _, err := s.store.db.ExecContext(ctx, "DELETE FROM terms"); err != nil {
		return fmt.Errorf("clearing terms: %w", err)
	}
	return nil
}
