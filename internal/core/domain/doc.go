// Package domain defines the core business entities for the rebrand tracker.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - TermSet: The configured search terms and their fingerprint
//   - SourceKind / RecordRef: Which record of which source holds text
//   - SourceRecord: One enumerated record with its text fields
//   - Match / MatchSet: Scan results keyed by (kind, record, term)
//   - ReplaceRequest / ReplaceResult / ReplaceError: A single audited replace
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
