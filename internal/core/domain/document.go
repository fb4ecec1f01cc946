package domain

import "time"

// DocumentStatus is the publication state of a document.
type DocumentStatus string

// Document states.
const (
	// DocumentPublished documents are scanned.
	DocumentPublished DocumentStatus = "publish"

	// DocumentDraft documents are skipped by the scanner.
	DocumentDraft DocumentStatus = "draft"
)

// Document is a content document as held by the content repository.
type Document struct {
	// ID is the unique identifier for the document.
	ID int64

	// Title is the human-readable title.
	Title string

	// Body is the full text content.
	Body string

	// AuthorID links to the author. Zero when unknown.
	AuthorID int64

	// Status is the publication state.
	Status DocumentStatus

	// UpdatedAt is when the document was last updated.
	UpdatedAt time.Time
}

// MetadataRecord is one key/value pair attached to a document.
type MetadataRecord struct {
	// ID is the unique identifier for the record.
	ID int64

	// OwnerID is the document the record belongs to.
	OwnerID int64

	// Key is the metadata key.
	Key string

	// Value is the text value.
	Value string
}

// Setting is a named global setting.
type Setting struct {
	// ID is the unique identifier for the setting.
	ID int64

	// Name is the setting name. Names are unique.
	Name string

	// Value is the text value.
	Value string
}

// Revision is a snapshot of a document body taken before a replace.
// Only the most recent revision per document is kept.
type Revision struct {
	// ID is the unique identifier for the revision.
	ID string

	// DocumentID is the document the snapshot belongs to.
	DocumentID int64

	// Body is the document body at snapshot time.
	Body string

	// CreatedAt is when the snapshot was taken.
	CreatedAt time.Time
}
