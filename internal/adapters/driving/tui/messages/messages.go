// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/rebrand-tracker/internal/core/domain"
)

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewMatches is the match browser.
	ViewMatches
	// ViewTerms edits the tracked terms.
	ViewTerms
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewMatches:
		return "matches"
	case ViewTerms:
		return "terms"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// MatchesLoaded carries one page of matches.
type MatchesLoaded struct {
	Page *domain.MatchPage
	Err  error
}

// TermsLoaded carries the configured terms.
type TermsLoaded struct {
	Terms []string
	Err   error
}

// TermsSaved signals the term list was replaced.
type TermsSaved struct {
	Terms []string
	Err   error
}

// ReplacePreviewed carries the outcome of a dry-run replace.
type ReplacePreviewed struct {
	Request domain.ReplaceRequest
	Preview *domain.ReplacePreview
	Err     error
}

// ReplaceCompleted carries the outcome of an applied replace.
type ReplaceCompleted struct {
	Request domain.ReplaceRequest
	Result  *domain.ReplaceResult
	Err     error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
