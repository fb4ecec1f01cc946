package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/rebrand-tracker/internal/core/domain"
	"github.com/custodia-labs/rebrand-tracker/internal/core/ports/driven"
	"github.com/custodia-labs/rebrand-tracker/internal/core/ports/driving"
	"github.com/custodia-labs/rebrand-tracker/internal/logger"
)

// Ensure TermService implements the interface.
var _ driving.TermService = (*TermService)(nil)

// TermService holds the configured term set.
type TermService struct {
	repo  driven.TermRepository
	cache *MatchCache
}

// NewTermService creates a term service. Every change to the stored
// terms invalidates cache.
func NewTermService(repo driven.TermRepository, cache *MatchCache) *TermService {
	return &TermService{
		repo:  repo,
		cache: cache,
	}
}

// GetTerms returns the configured terms.
func (s *TermService) GetTerms(ctx context.Context) (domain.TermSet, error) {
	raw, err := s.repo.LoadTerms(ctx)
	if err != nil {
		return domain.TermSet{}, fmt.Errorf("load terms: %w: %w", domain.ErrStorage, err)
	}
	return domain.NewTermSet(raw), nil
}

// SetTerms sanitises candidates and replaces the stored set.
// Matching ignores case, so "Acme" and "ACME" are one term: the first
// spelling is kept and later ones are dropped. Callers should use the
// returned set rather than candidates.
func (s *TermService) SetTerms(ctx context.Context, candidates []string) (domain.TermSet, error) {
	set := domain.NewTermSet(candidates)
	if dropped := len(candidates) - set.Len(); dropped > 0 {
		logger.Debug("dropped %d invalid or duplicate terms", dropped)
	}

	err := s.repo.SaveTerms(ctx, set.Terms())
	s.cache.Invalidate()
	if err != nil {
		return domain.TermSet{}, fmt.Errorf("save terms: %w: %w", domain.ErrStorage, err)
	}

	logger.Info("terms set: %v", set.Terms())
	return set, nil
}

// ClearTerms removes every stored term.
func (s *TermService) ClearTerms(ctx context.Context) error {
	err := s.repo.ClearTerms(ctx)
	s.cache.Invalidate()
	if err != nil {
		return fmt.Errorf("clear terms: %w: %w", domain.ErrStorage, err)
	}
	return nil
}
