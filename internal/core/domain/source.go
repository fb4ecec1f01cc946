package domain

import (
	"fmt"
	"strings"
)

// SourceKind identifies one category of record storage.
type SourceKind string

// Available source kinds.
const (
	// SourceKindDocument is a published document; its body is the text field.
	SourceKindDocument SourceKind = "document"

	// SourceKindMetadata is a key/value metadata record attached to a document.
	SourceKindMetadata SourceKind = "metadata"

	// SourceKindSetting is a named global setting.
	SourceKindSetting SourceKind = "setting"
)

// DocumentBodyField is the field name of a document's body text.
const DocumentBodyField = "body"

// AllSourceKinds returns the known kinds in presentation order.
func AllSourceKinds() []SourceKind {
	return []SourceKind{SourceKindDocument, SourceKindMetadata, SourceKindSetting}
}

// IsValid returns true if the kind is recognised.
func (k SourceKind) IsValid() bool {
	switch k {
	case SourceKindDocument, SourceKindMetadata, SourceKindSetting:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (k SourceKind) String() string {
	return string(k)
}

// Description returns a human-readable description of the kind.
func (k SourceKind) Description() string {
	switch k {
	case SourceKindDocument:
		return "Documents"
	case SourceKindMetadata:
		return "Metadata"
	case SourceKindSetting:
		return "Settings"
	default:
		return "Unknown"
	}
}

// order returns the presentation rank of the kind.
func (k SourceKind) order() int {
	switch k {
	case SourceKindDocument:
		return 0
	case SourceKindMetadata:
		return 1
	case SourceKindSetting:
		return 2
	default:
		return 3
	}
}

// ParseSourceKind parses a kind name, accepting a few common aliases.
func ParseSourceKind(s string) (SourceKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "document", "documents", "doc", "post":
		return SourceKindDocument, nil
	case "metadata", "meta":
		return SourceKindMetadata, nil
	case "setting", "settings", "option":
		return SourceKindSetting, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedKind, s)
	}
}

// RecordRef identifies the text field of one source record.
type RecordRef struct {
	// Kind is the source the record lives in.
	Kind SourceKind

	// ID is the record identifier within its source.
	ID int64

	// Field names the text field holding the match.
	// "body" for documents, the key for metadata, the setting name for settings.
	Field string
}

// String returns a compact representation, e.g. "metadata/42/seo_title".
func (r RecordRef) String() string {
	return fmt.Sprintf("%s/%d/%s", r.Kind, r.ID, r.Field)
}

// SourceRecord is one record enumerated from a source adapter.
type SourceRecord struct {
	// ID is the record identifier within its source.
	ID int64

	// Fields maps field name to text.
	Fields map[string]string

	// Label is a human-readable description of the record.
	Label string

	// AuthorName is the record author, if known.
	AuthorName string

	// EditLocator is where the record can be edited.
	EditLocator string

	// ViewLocator is where the record can be viewed.
	ViewLocator string
}

// SourceWarning reports a source that failed to enumerate during a scan.
type SourceWarning struct {
	// Kind is the source that failed.
	Kind SourceKind

	// Err is the enumeration failure.
	Err error
}

// Message returns a display message naming the failed source.
func (w SourceWarning) Message() string {
	return fmt.Sprintf("%s source unavailable: %v", w.Kind, w.Err)
}
