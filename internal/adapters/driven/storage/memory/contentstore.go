package memory

import (
	"context"
	"iter"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/rebrand-tracker/internal/core/domain"
	"github.com/custodia-labs/rebrand-tracker/internal/core/ports/driven"
)

// Ensure ContentStore implements the interface.
var _ driven.ContentRepository = (*ContentStore)(nil)

// ContentStore is an in-memory implementation of driven.ContentRepository.
// Enumeration works on a snapshot taken under the read lock, so callers may
// write while iterating.
type ContentStore struct {
	mu        sync.RWMutex
	nextID    int64
	documents map[int64]domain.Document
	authors   map[int64]string
	metadata  map[int64]domain.MetadataRecord
	settings  map[int64]domain.Setting
	revisions map[int64]domain.Revision
}

// NewContentStore creates a new in-memory content store.
func NewContentStore() *ContentStore {
	return &ContentStore{
		documents: make(map[int64]domain.Document),
		authors:   make(map[int64]string),
		metadata:  make(map[int64]domain.MetadataRecord),
		settings:  make(map[int64]domain.Setting),
		revisions: make(map[int64]domain.Revision),
	}
}

// assignID returns id, or the next free ID when id is zero.
func (s *ContentStore) assignID(id int64) int64 {
	if id == 0 {
		s.nextID++
		return s.nextID
	}
	if id > s.nextID {
		s.nextID = id
	}
	return id
}

// AddDocument stores a document. A zero ID is assigned; an empty status means published.
func (s *ContentStore) AddDocument(doc domain.Document) domain.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc.ID = s.assignID(doc.ID)
	if doc.Status == "" {
		doc.Status = domain.DocumentPublished
	}
	if doc.UpdatedAt.IsZero() {
		doc.UpdatedAt = time.Now()
	}
	s.documents[doc.ID] = doc
	return doc
}

// AddAuthor registers an author name.
func (s *ContentStore) AddAuthor(id int64, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.authors[id] = name
}

// AddMetadata stores a metadata record. A zero ID is assigned.
func (s *ContentStore) AddMetadata(rec domain.MetadataRecord) domain.MetadataRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec.ID = s.assignID(rec.ID)
	s.metadata[rec.ID] = rec
	return rec
}

// AddSetting stores a setting. A zero ID is assigned.
func (s *ContentStore) AddSetting(setting domain.Setting) domain.Setting {
	s.mu.Lock()
	defer s.mu.Unlock()
	setting.ID = s.assignID(setting.ID)
	s.settings[setting.ID] = setting
	return setting
}

// ListPublishedDocuments yields published documents ordered by ID.
func (s *ContentStore) ListPublishedDocuments(ctx context.Context) iter.Seq2[domain.Document, error] {
	s.mu.RLock()
	docs := make([]domain.Document, 0, len(s.documents))
	for _, d := range s.documents {
		if d.Status == domain.DocumentPublished {
			docs = append(docs, d)
		}
	}
	s.mu.RUnlock()
	sort.Slice(docs, func(i, j int) bool { return docs[i].ID < docs[j].ID })
	return yieldAll(ctx, docs)
}

// ListAllMetadataRecords yields every metadata record ordered by ID.
func (s *ContentStore) ListAllMetadataRecords(ctx context.Context) iter.Seq2[domain.MetadataRecord, error] {
	s.mu.RLock()
	recs := make([]domain.MetadataRecord, 0, len(s.metadata))
	for _, r := range s.metadata {
		recs = append(recs, r)
	}
	s.mu.RUnlock()
	sort.Slice(recs, func(i, j int) bool { return recs[i].ID < recs[j].ID })
	return yieldAll(ctx, recs)
}

// ListAllSettings yields every setting ordered by ID.
func (s *ContentStore) ListAllSettings(ctx context.Context) iter.Seq2[domain.Setting, error] {
	s.mu.RLock()
	settings := make([]domain.Setting, 0, len(s.settings))
	for _, st := range s.settings {
		settings = append(settings, st)
	}
	s.mu.RUnlock()
	sort.Slice(settings, func(i, j int) bool { return settings[i].ID < settings[j].ID })
	return yieldAll(ctx, settings)
}

// yieldAll turns a snapshot into a sequence that stops on context cancellation.
func yieldAll[T any](ctx context.Context, items []T) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for _, item := range items {
			if err := ctx.Err(); err != nil {
				var zero T
				yield(zero, err)
				return
			}
			if !yield(item, nil) {
				return
			}
		}
	}
}

// GetDocument retrieves a document by ID.
func (s *ContentStore) GetDocument(_ context.Context, id int64) (*domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.documents[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &doc, nil
}

// GetMetadataRecord retrieves a metadata record by ID.
func (s *ContentStore) GetMetadataRecord(_ context.Context, id int64) (*domain.MetadataRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.metadata[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &rec, nil
}

// GetSetting retrieves a setting by ID.
func (s *ContentStore) GetSetting(_ context.Context, id int64) (*domain.Setting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.settings[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &st, nil
}

// UpdateDocumentBody replaces a document body.
func (s *ContentStore) UpdateDocumentBody(_ context.Context, id int64, body string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.documents[id]
	if !ok {
		return domain.ErrNotFound
	}
	doc.Body = body
	doc.UpdatedAt = time.Now()
	s.documents[id] = doc
	return nil
}

// UpdateMetadataValue replaces the value of every record under ownerID/key.
func (s *ContentStore) UpdateMetadataValue(_ context.Context, ownerID int64, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	found := false
	for id, rec := range s.metadata {
		if rec.OwnerID == ownerID && rec.Key == key {
			rec.Value = value
			s.metadata[id] = rec
			found = true
		}
	}
	if !found {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateSettingValue replaces the value of a named setting.
func (s *ContentStore) UpdateSettingValue(_ context.Context, name, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, st := range s.settings {
		if st.Name == name {
			st.Value = value
			s.settings[id] = st
			return nil
		}
	}
	return domain.ErrNotFound
}

// ResolveAuthorName returns the author's display name or "" if unknown.
func (s *ContentStore) ResolveAuthorName(_ context.Context, authorID int64) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authors[authorID], nil
}

// SaveDocumentRevision snapshots the current body, replacing any previous revision.
func (s *ContentStore) SaveDocumentRevision(_ context.Context, documentID int64) (*domain.Revision, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.documents[documentID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	rev := domain.Revision{
		ID:         uuid.NewString(),
		DocumentID: documentID,
		Body:       doc.Body,
		CreatedAt:  time.Now(),
	}
	s.revisions[documentID] = rev
	return &rev, nil
}

// GetDocumentRevision returns the latest revision of a document.
func (s *ContentStore) GetDocumentRevision(_ context.Context, documentID int64) (*domain.Revision, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rev, ok := s.revisions[documentID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &rev, nil
}
