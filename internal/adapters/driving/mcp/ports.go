package mcp

import (
	"github.com/custodia-labs/rebrand-tracker/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Terms reads and replaces the configured terms.
	Terms driving.TermService

	// Matches lists term matches.
	Matches driving.MatchService

	// Replace rewrites a single matched record.
	Replace driving.ReplaceService

	// Admin resets stored state. Optional; clear_all_state reports an error without it.
	Admin driving.AdminService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	switch {
	case p.Terms == nil:
		return ErrMissingTermService
	case p.Matches == nil:
		return ErrMissingMatchService
	case p.Replace == nil:
		return ErrMissingReplaceService
	}
	return nil
}
