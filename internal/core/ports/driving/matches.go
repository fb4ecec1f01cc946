package driving

import (
	"context"

	"github.com/custodia-labs/rebrand-tracker/internal/core/domain"
)

// MatchService reports term matches across all sources.
type MatchService interface {
	// GetMatches returns every match for the active terms plus any
	// source warnings. Results may be served from cache.
	GetMatches(ctx context.Context) (*domain.MatchReport, error)

	// ListMatches returns one filtered page of matches.
	ListMatches(ctx context.Context, filter domain.MatchFilter) (*domain.MatchPage, error)
}
