package content

import (
	"context"
	"fmt"
	"iter"
	"strconv"

	"github.com/custodia-labs/rebrand-tracker/internal/core/domain"
	"github.com/custodia-labs/rebrand-tracker/internal/core/ports/driven"
	"github.com/custodia-labs/rebrand-tracker/internal/logger"
)

// Ensure DocumentAdapter implements the interfaces.
var (
	_ driven.SourceAdapter = (*DocumentAdapter)(nil)
	_ driven.Snapshotter   = (*DocumentAdapter)(nil)
)

// DocumentAdapter exposes published documents. The body is the only text field.
type DocumentAdapter struct {
	repo     driven.ContentRepository
	locators Locators
}

// NewDocumentAdapter creates a document adapter.
func NewDocumentAdapter(repo driven.ContentRepository, locators Locators) *DocumentAdapter {
	return &DocumentAdapter{repo: repo, locators: locators}
}

// Kind returns domain.SourceKindDocument.
func (a *DocumentAdapter) Kind() domain.SourceKind {
	return domain.SourceKindDocument
}

// Enumerate yields every published document.
func (a *DocumentAdapter) Enumerate(ctx context.Context) iter.Seq2[domain.SourceRecord, error] {
	return func(yield func(domain.SourceRecord, error) bool) {
		authors := make(map[int64]string)
		for doc, err := range a.repo.ListPublishedDocuments(ctx) {
			if err != nil {
				yield(domain.SourceRecord{}, fmt.Errorf("list documents: %w", err))
				return
			}
			if !yield(a.record(ctx, doc, authors), nil) {
				return
			}
		}
	}
}

// Get loads a published document by ID.
func (a *DocumentAdapter) Get(ctx context.Context, id int64) (*domain.SourceRecord, error) {
	doc, err := a.repo.GetDocument(ctx, id)
	if err != nil {
		return nil, readError(err, a.Kind(), id)
	}
	if doc.Status != domain.DocumentPublished {
		return nil, fmt.Errorf("%w: document %d is %s", domain.ErrRecordNotFound, id, doc.Status)
	}
	rec := a.record(ctx, *doc, nil)
	return &rec, nil
}

// ApplyReplace writes a new document body.
func (a *DocumentAdapter) ApplyReplace(ctx context.Context, ref domain.RecordRef, newText string) error {
	if ref.Field != domain.DocumentBodyField {
		return fieldMismatch(ref)
	}
	if err := a.repo.UpdateDocumentBody(ctx, ref.ID, newText); err != nil {
		return writeError(err, ref)
	}
	return nil
}

// CaptureSnapshot stores the current body as the document's latest revision.
func (a *DocumentAdapter) CaptureSnapshot(ctx context.Context, id int64) (string, error) {
	rev, err := a.repo.SaveDocumentRevision(ctx, id)
	if err != nil {
		return "", fmt.Errorf("save revision of document %d: %w", id, err)
	}
	return rev.ID, nil
}

// record builds a source record. Author names are memoised in authors when non-nil.
func (a *DocumentAdapter) record(ctx context.Context, doc domain.Document, authors map[int64]string) domain.SourceRecord {
	label := doc.Title
	if label == "" {
		label = "Document " + strconv.FormatInt(doc.ID, 10)
	}
	return domain.SourceRecord{
		ID:          doc.ID,
		Fields:      map[string]string{domain.DocumentBodyField: doc.Body},
		Label:       label,
		AuthorName:  a.authorName(ctx, doc.AuthorID, authors),
		EditLocator: a.locators.EditDocument(doc.ID),
		ViewLocator: a.locators.ViewDocument(doc.ID),
	}
}

func (a *DocumentAdapter) authorName(ctx context.Context, authorID int64, authors map[int64]string) string {
	if authorID == 0 {
		return ""
	}
	if name, ok := authors[authorID]; ok {
		return name
	}
	name, err := a.repo.ResolveAuthorName(ctx, authorID)
	if err != nil {
		logger.Debug("resolve author %d: %v", authorID, err)
		return ""
	}
	if authors != nil {
		authors[authorID] = name
	}
	return name
}
