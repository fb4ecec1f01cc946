// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The scan path runs TermService -> MatchCache -> Scanner -> SourceAdapters.
// The replace path runs ReplaceEngine -> SourceAdapter and then invalidates
// the MatchCache.
package services
