// Package tui provides an interactive terminal user interface for rebrand.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/rebrand-tracker/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Terms manages the tracked terms.
	Terms driving.TermService

	// Matches lists term matches.
	Matches driving.MatchService

	// Replace previews and applies single-record replaces.
	Replace driving.ReplaceService

	// Settings manages application settings. Optional.
	Settings driving.SettingsService
}

// NewPorts creates a new Ports aggregate with the required services.
func NewPorts(
	terms driving.TermService,
	matches driving.MatchService,
	replace driving.ReplaceService,
) *Ports {
	return &Ports{
		Terms:   terms,
		Matches: matches,
		Replace: replace,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Terms == nil {
		return ErrMissingTermService
	}
	if p.Matches == nil {
		return ErrMissingMatchService
	}
	if p.Replace == nil {
		return ErrMissingReplaceService
	}
	return nil
}
