package driven

import (
	"context"
	"iter"

	"github.com/custodia-labs/rebrand-tracker/internal/core/domain"
)

// ContentRepository is the hosting platform's content store.
// Implementations must make each Update* call atomic for the single field.
type ContentRepository interface {
	// ListPublishedDocuments yields published documents, read fresh on each call.
	ListPublishedDocuments(ctx context.Context) iter.Seq2[domain.Document, error]

	// ListAllMetadataRecords yields every metadata record.
	ListAllMetadataRecords(ctx context.Context) iter.Seq2[domain.MetadataRecord, error]

	// ListAllSettings yields every setting.
	ListAllSettings(ctx context.Context) iter.Seq2[domain.Setting, error]

	// GetDocument retrieves a document by ID.
	// Returns domain.ErrNotFound if absent.
	GetDocument(ctx context.Context, id int64) (*domain.Document, error)

	// GetMetadataRecord retrieves a metadata record by ID.
	// Returns domain.ErrNotFound if absent.
	GetMetadataRecord(ctx context.Context, id int64) (*domain.MetadataRecord, error)

	// GetSetting retrieves a setting by ID.
	// Returns domain.ErrNotFound if absent.
	GetSetting(ctx context.Context, id int64) (*domain.Setting, error)

	// UpdateDocumentBody replaces a document body.
	UpdateDocumentBody(ctx context.Context, id int64, body string) error

	// UpdateMetadataValue replaces the value stored under ownerID/key.
	UpdateMetadataValue(ctx context.Context, ownerID int64, key, value string) error

	// UpdateSettingValue replaces the value of a named setting.
	UpdateSettingValue(ctx context.Context, name, value string) error

	// ResolveAuthorName returns the display name of an author.
	// Returns an empty string if the author is unknown.
	ResolveAuthorName(ctx context.Context, authorID int64) (string, error)

	// SaveDocumentRevision snapshots the current body of a document.
	// Only the latest revision per document is kept.
	SaveDocumentRevision(ctx context.Context, documentID int64) (*domain.Revision, error)

	// GetDocumentRevision returns the latest revision of a document.
	// Returns domain.ErrNotFound if none exists.
	GetDocumentRevision(ctx context.Context, documentID int64) (*domain.Revision, error)
}
