// Package sqlite provides a SQLite-based implementation of the content
// repository and term store ports.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO. Both ports share a single database:
//
//   - ContentRepository: documents, authors, metadata records, settings, revisions
//   - TermRepository: the configured term set
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory. Each migration is a pair of .up.sql and .down.sql files.
//
// # Data Location
//
// By default, the database is stored at ~/.rebrand/data/content.db
//
// # Thread Safety
//
// All operations are thread-safe. Every update is a single statement, so a
// field is either fully rewritten or left unchanged. The connection uses WAL
// mode with a 5s busy timeout.
package sqlite
