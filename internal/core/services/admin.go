package services

import (
	"context"

	"github.com/custodia-labs/rebrand-tracker/internal/core/ports/driving"
	"github.com/custodia-labs/rebrand-tracker/internal/logger"
)

// Ensure AdminService implements the interface.
var _ driving.AdminService = (*AdminService)(nil)

// AdminService performs administrative resets.
type AdminService struct {
	terms *TermService
	cache *MatchCache
}

// NewAdminService creates an admin service.
func NewAdminService(terms *TermService, cache *MatchCache) *AdminService {
	return &AdminService{
		terms: terms,
		cache: cache,
	}
}

// ClearAllState drops the stored terms and the cached match set.
func (s *AdminService) ClearAllState(ctx context.Context) error {
	logger.Section("Clear All State")
	defer s.cache.Invalidate()
	return s.terms.ClearTerms(ctx)
}
