package driven

import (
	"context"
	"iter"

	"github.com/custodia-labs/rebrand-tracker/internal/core/domain"
)

// SourceAdapter is a uniform view over one category of record storage.
// Adding a source kind means adding an adapter, not editing a switch.
type SourceAdapter interface {
	// Kind identifies the source.
	Kind() domain.SourceKind

	// Enumerate yields every record, read fresh from the backing store.
	// The sequence is finite and not restartable. A yielded error ends it.
	Enumerate(ctx context.Context) iter.Seq2[domain.SourceRecord, error]

	// Get loads one record by ID.
	// Returns domain.ErrRecordNotFound if absent.
	Get(ctx context.Context, id int64) (*domain.SourceRecord, error)

	// ApplyReplace writes newText into the referenced field.
	// Either the whole field is updated or nothing changes.
	// Returns domain.ErrRecordNotFound or an error wrapping domain.ErrWrite.
	ApplyReplace(ctx context.Context, ref domain.RecordRef, newText string) error
}

// Snapshotter captures a revision of a record before it is mutated.
// It is best-effort: callers log failures and proceed.
type Snapshotter interface {
	// CaptureSnapshot stores the current state and returns a revision ID.
	CaptureSnapshot(ctx context.Context, id int64) (string, error)
}
