package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/rebrand-tracker/internal/core/domain"
	"github.com/custodia-labs/rebrand-tracker/internal/core/ports/driving"
)

// Ensure MatchService implements the interface.
var _ driving.MatchService = (*MatchService)(nil)

// MatchService serves match listings through the cache.
type MatchService struct {
	terms   *TermService
	scanner *Scanner
	cache   *MatchCache
}

// NewMatchService creates a match service.
func NewMatchService(terms *TermService, scanner *Scanner, cache *MatchCache) *MatchService {
	return &MatchService{
		terms:   terms,
		scanner: scanner,
		cache:   cache,
	}
}

// GetMatches returns every match for the active terms.
func (s *MatchService) GetMatches(ctx context.Context) (*domain.MatchReport, error) {
	result, err := s.current(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.MatchReport{
		Terms:    result.Terms.Terms(),
		Matches:  result.Matches.Sorted(),
		Warnings: result.WarningMessages(),
	}, nil
}

// ListMatches returns one filtered page of matches.
func (s *MatchService) ListMatches(ctx context.Context, filter domain.MatchFilter) (*domain.MatchPage, error) {
	if filter.Kind != "" && !filter.Kind.IsValid() {
		return nil, fmt.Errorf("%w: %w: %q", domain.ErrInvalidInput, domain.ErrUnsupportedKind, filter.Kind)
	}

	result, err := s.current(ctx)
	if err != nil {
		return nil, err
	}

	page := domain.Paginate(result.Matches.Sorted(), filter)
	page.Warnings = result.WarningMessages()
	return &page, nil
}

func (s *MatchService) current(ctx context.Context) (domain.ScanResult, error) {
	terms, err := s.terms.GetTerms(ctx)
	if err != nil {
		return domain.ScanResult{}, err
	}

	return s.cache.GetOrCompute(ctx, terms.Fingerprint(), func(ctx context.Context) (domain.ScanResult, error) {
		return s.scanner.Scan(ctx, terms), nil
	})
}
