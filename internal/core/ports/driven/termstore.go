package driven

import "context"

// TermRepository persists the configured term set.
type TermRepository interface {
	// LoadTerms returns the stored terms. An empty slice means none configured.
	LoadTerms(ctx context.Context) ([]string, error)

	// SaveTerms replaces the stored terms.
	SaveTerms(ctx context.Context, terms []string) error

	// ClearTerms removes all stored terms.
	ClearTerms(ctx context.Context) error
}
