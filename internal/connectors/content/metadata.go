package content

import (
	"context"
	"fmt"
	"iter"

	"github.com/custodia-labs/rebrand-tracker/internal/core/domain"
	"github.com/custodia-labs/rebrand-tracker/internal/core/ports/driven"
)

// Ensure MetadataAdapter implements the interface.
var _ driven.SourceAdapter = (*MetadataAdapter)(nil)

// MetadataAdapter exposes document metadata records. The record's key is its
// only text field; locators point at the owning document.
type MetadataAdapter struct {
	repo     driven.ContentRepository
	locators Locators
}

// NewMetadataAdapter creates a metadata adapter.
func NewMetadataAdapter(repo driven.ContentRepository, locators Locators) *MetadataAdapter {
	return &MetadataAdapter{repo: repo, locators: locators}
}

// Kind returns domain.SourceKindMetadata.
func (a *MetadataAdapter) Kind() domain.SourceKind {
	return domain.SourceKindMetadata
}

// Enumerate yields every metadata record.
func (a *MetadataAdapter) Enumerate(ctx context.Context) iter.Seq2[domain.SourceRecord, error] {
	return func(yield func(domain.SourceRecord, error) bool) {
		for rec, err := range a.repo.ListAllMetadataRecords(ctx) {
			if err != nil {
				yield(domain.SourceRecord{}, fmt.Errorf("list metadata: %w", err))
				return
			}
			if !yield(a.record(rec), nil) {
				return
			}
		}
	}
}

// Get loads a metadata record by ID.
func (a *MetadataAdapter) Get(ctx context.Context, id int64) (*domain.SourceRecord, error) {
	rec, err := a.repo.GetMetadataRecord(ctx, id)
	if err != nil {
		return nil, readError(err, a.Kind(), id)
	}
	out := a.record(*rec)
	return &out, nil
}

// ApplyReplace writes a new value for the record's key.
//
// The repository updates every row under the record's owner and key. When a
// sibling row under that owner/key holds different text the write would
// clobber it, so the replace is refused with domain.ErrInvalidInput.
func (a *MetadataAdapter) ApplyReplace(ctx context.Context, ref domain.RecordRef, newText string) error {
	rec, err := a.repo.GetMetadataRecord(ctx, ref.ID)
	if err != nil {
		return readError(err, a.Kind(), ref.ID)
	}
	if ref.Field != rec.Key {
		return fieldMismatch(ref)
	}
	if err := a.checkSiblings(ctx, *rec); err != nil {
		return err
	}
	if err := a.repo.UpdateMetadataValue(ctx, rec.OwnerID, rec.Key, newText); err != nil {
		return writeError(err, ref)
	}
	return nil
}

// checkSiblings fails when another row shares rec's owner and key but not its value.
func (a *MetadataAdapter) checkSiblings(ctx context.Context, rec domain.MetadataRecord) error {
	for other, err := range a.repo.ListAllMetadataRecords(ctx) {
		if err != nil {
			return fmt.Errorf("%w: list metadata: %w", domain.ErrStorage, err)
		}
		if other.ID == rec.ID || other.OwnerID != rec.OwnerID || other.Key != rec.Key {
			continue
		}
		if other.Value != rec.Value {
			return fmt.Errorf("%w: metadata %d shares owner %d and key %q with record %d",
				domain.ErrInvalidInput, other.ID, rec.OwnerID, rec.Key, rec.ID)
		}
	}
	return nil
}

func (a *MetadataAdapter) record(rec domain.MetadataRecord) domain.SourceRecord {
	return domain.SourceRecord{
		ID:          rec.ID,
		Fields:      map[string]string{rec.Key: rec.Value},
		Label:       fmt.Sprintf("Document %d / %s", rec.OwnerID, rec.Key),
		EditLocator: a.locators.EditDocument(rec.OwnerID),
		ViewLocator: a.locators.ViewDocument(rec.OwnerID),
	}
}
