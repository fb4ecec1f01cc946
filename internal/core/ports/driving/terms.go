package driving

import (
	"context"

	"github.com/custodia-labs/rebrand-tracker/internal/core/domain"
)

// TermService manages the configured search terms.
type TermService interface {
	// GetTerms returns the configured terms. An empty set is valid.
	GetTerms(ctx context.Context) (domain.TermSet, error)

	// SetTerms sanitises and stores candidates, replacing the current set.
	// Invalid candidates are dropped; only storage failures are returned.
	// Candidates differing only by case collapse to the first spelling, so
	// the returned set may be smaller than candidates.
	SetTerms(ctx context.Context, candidates []string) (domain.TermSet, error)
}
