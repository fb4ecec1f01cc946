package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"iter"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/rebrand-tracker/internal/core/domain"
	"github.com/custodia-labs/rebrand-tracker/internal/core/ports/driven"
)

// Ensure ContentStore implements the interface.
var _ driven.ContentRepository = (*ContentStore)(nil)

// ContentStore implements driven.ContentRepository.
// It also exposes insert methods used to seed demo content.
type ContentStore struct {
	store *Store
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// queryAll runs query lazily: nothing is read until the sequence is iterated,
// and the rows are closed when iteration stops.
func queryAll[T any](ctx context.Context, db *sql.DB, what string, scan func(rowScanner) (T, error),
	query string, args ...any) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		var zero T
		rows, err := db.QueryContext(ctx, query, args...)
		if err != nil {
			yield(zero, fmt.Errorf("querying %s: %w", what, err))
			return
		}
		defer rows.Close()

		for rows.Next() {
			item, err := scan(rows)
			if err != nil {
				yield(zero, err)
				return
			}
			if !yield(item, nil) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			yield(zero, fmt.Errorf("iterating %s: %w", what, err))
		}
	}
}

// ==================== Documents ====================

const documentColumns = "id, title, body, author_id, status, updated_at"

func scanDocument(row rowScanner) (domain.Document, error) {
	var doc domain.Document
	var status string
	if err := row.Scan(&doc.ID, &doc.Title, &doc.Body, &doc.AuthorID, &status, &doc.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return doc, domain.ErrNotFound
		}
		return doc, fmt.Errorf("scanning document: %w", err)
	}
	doc.Status = domain.DocumentStatus(status)
	return doc, nil
}

// ListPublishedDocuments yields published documents ordered by ID.
func (s *ContentStore) ListPublishedDocuments(ctx context.Context) iter.Seq2[domain.Document, error] {
	return queryAll(ctx, s.store.db, "documents", scanDocument,
		"SELECT "+documentColumns+" FROM documents WHERE status = ? ORDER BY id",
		string(domain.DocumentPublished))
}

// GetDocument retrieves a document by ID.
func (s *ContentStore) GetDocument(ctx context.Context, id int64) (*domain.Document, error) {
	row := s.store.db.QueryRowContext(ctx, "SELECT "+documentColumns+" FROM documents WHERE id = ?", id)
	doc, err := scanDocument(row)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// UpdateDocumentBody replaces a document body.
func (s *ContentStore) UpdateDocumentBody(ctx context.Context, id int64, body string) error {
	res, err := s.store.db.ExecContext(ctx,
		"UPDATE documents SET body = ?, updated_at = ? WHERE id = ?", body, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("updating document %d: %w", id, err)
	}
	return requireAffected(res)
}

// InsertDocument stores or replaces a document. A zero ID is assigned by the database.
func (s *ContentStore) InsertDocument(ctx context.Context, doc domain.Document) (domain.Document, error) {
	if doc.Status == "" {
		doc.Status = domain.DocumentPublished
	}
	if doc.UpdatedAt.IsZero() {
		doc.UpdatedAt = time.Now().UTC()
	}

	var id any
	if doc.ID != 0 {
		id = doc.ID
	}
	res, err := s.store.db.ExecContext(ctx, `
		INSERT INTO documents (id, title, body, author_id, status, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			body = excluded.body,
			author_id = excluded.author_id,
			status = excluded.status,
			updated_at = excluded.updated_at
	`, id, doc.Title, doc.Body, doc.AuthorID, string(doc.Status), doc.UpdatedAt)
	if err != nil {
		return doc, fmt.Errorf("saving document: %w", err)
	}
	if doc.ID == 0 {
		if doc.ID, err = res.LastInsertId(); err != nil {
			return doc, fmt.Errorf("reading document id: %w", err)
		}
	}
	return doc, nil
}

// ==================== Authors ====================

// ResolveAuthorName returns the author's display name or "" if unknown.
func (s *ContentStore) ResolveAuthorName(ctx context.Context, authorID int64) (string, error) {
	var name string
	err := s.store.db.QueryRowContext(ctx, "SELECT name FROM authors WHERE id = ?", authorID).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("resolving author %d: %w", authorID, err)
	}
	return name, nil
}

// InsertAuthor stores or renames an author.
func (s *ContentStore) InsertAuthor(ctx context.Context, id int64, name string) error {
	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO authors (id, name) VALUES (?, ?)
		ON CONFLICT(id) DO UPDATE SET name = excluded.name
	`, id, name)
	if err != nil {
		return fmt.Errorf("saving author: %w", err)
	}
	return nil
}

// ==================== Metadata ====================

const metadataColumns = "id, owner_id, meta_key, meta_value"

func scanMetadata(row rowScanner) (domain.MetadataRecord, error) {
	var rec domain.MetadataRecord
	if err := row.Scan(&rec.ID, &rec.OwnerID, &rec.Key, &rec.Value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return rec, domain.ErrNotFound
		}
		return rec, fmt.Errorf("scanning metadata: %w", err)
	}
	return rec, nil
}

// ListAllMetadataRecords yields every metadata record ordered by ID.
func (s *ContentStore) ListAllMetadataRecords(ctx context.Context) iter.Seq2[domain.MetadataRecord, error] {
	return queryAll(ctx, s.store.db, "metadata", scanMetadata,
		"SELECT "+metadataColumns+" FROM metadata ORDER BY id")
}

// GetMetadataRecord retrieves a metadata record by ID.
func (s *ContentStore) GetMetadataRecord(ctx context.Context, id int64) (*domain.MetadataRecord, error) {
	row := s.store.db.QueryRowContext(ctx, "SELECT "+metadataColumns+" FROM metadata WHERE id = ?", id)
	rec, err := scanMetadata(row)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// UpdateMetadataValue replaces the value of every record under ownerID/key.
func (s *ContentStore) UpdateMetadataValue(ctx context.Context, ownerID int64, key, value string) error {
	res, err := s.store.db.ExecContext(ctx,
		"UPDATE metadata SET meta_value = ? WHERE owner_id = ? AND meta_key = ?", value, ownerID, key)
	if err != nil {
		return fmt.Errorf("updating metadata %d/%s: %w", ownerID, key, err)
	}
	return requireAffected(res)
}

// InsertMetadata stores a metadata record. A zero ID is assigned by the database.
func (s *ContentStore) InsertMetadata(ctx context.Context, rec domain.MetadataRecord) (domain.MetadataRecord, error) {
	var id any
	if rec.ID != 0 {
		id = rec.ID
	}
	res, err := s.store.db.ExecContext(ctx, `
		INSERT INTO metadata (id, owner_id, meta_key, meta_value) VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			owner_id = excluded.owner_id,
			meta_key = excluded.meta_key,
			meta_value = excluded.meta_value
	`, id, rec.OwnerID, rec.Key, rec.Value)
	if err != nil {
		return rec, fmt.Errorf("saving metadata: %w", err)
	}
	if rec.ID == 0 {
		if rec.ID, err = res.LastInsertId(); err != nil {
			return rec, fmt.Errorf("reading metadata id: %w", err)
		}
	}
	return rec, nil
}

// ==================== Settings ====================

const settingColumns = "id, name, value"

func scanSetting(row rowScanner) (domain.Setting, error) {
	var st domain.Setting
	if err := row.Scan(&st.ID, &st.Name, &st.Value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return st, domain.ErrNotFound
		}
		return st, fmt.Errorf("scanning setting: %w", err)
	}
	return st, nil
}

// ListAllSettings yields every setting ordered by ID.
func (s *ContentStore) ListAllSettings(ctx context.Context) iter.Seq2[domain.Setting, error] {
	return queryAll(ctx, s.store.db, "settings", scanSetting,
		"SELECT "+settingColumns+" FROM settings ORDER BY id")
}

// GetSetting retrieves a setting by ID.
func (s *ContentStore) GetSetting(ctx context.Context, id int64) (*domain.Setting, error) {
	row := s.store.db.QueryRowContext(ctx, "SELECT "+settingColumns+" FROM settings WHERE id = ?", id)
	st, err := scanSetting(row)
	if err != nil {
		return nil, err
	}
	return &st, nil
}

// UpdateSettingValue replaces the value of a named setting.
func (s *ContentStore) UpdateSettingValue(ctx context.Context, name, value string) error {
	res, err := s.store.db.ExecContext(ctx, "UPDATE settings SET value = ? WHERE name = ?", value, name)
	if err != nil {
		return fmt.Errorf("updating setting %s: %w", name, err)
	}
	return requireAffected(res)
}

// InsertSetting stores a setting, replacing any setting with the same name.
func (s *ContentStore) InsertSetting(ctx context.Context, st domain.Setting) (domain.Setting, error) {
	var id any
	if st.ID != 0 {
		id = st.ID
	}
	row := s.store.db.QueryRowContext(ctx, `
		INSERT INTO settings (id, name, value) VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET value = excluded.value
		RETURNING id
	`, id, st.Name, st.Value)
	if err := row.Scan(&st.ID); err != nil {
		return st, fmt.Errorf("saving setting: %w", err)
	}
	return st, nil
}

// ==================== Revisions ====================

// SaveDocumentRevision snapshots the current body, replacing any previous revision.
func (s *ContentStore) SaveDocumentRevision(ctx context.Context, documentID int64) (*domain.Revision, error) {
	rev := domain.Revision{
		ID:         uuid.NewString(),
		DocumentID: documentID,
		CreatedAt:  time.Now().UTC(),
	}
	row := s.store.db.QueryRowContext(ctx, `
		INSERT INTO revisions (id, document_id, body, created_at)
		SELECT ?, id, body, ? FROM documents WHERE id = ?
		ON CONFLICT(document_id) DO UPDATE SET
			id = excluded.id,
			body = excluded.body,
			created_at = excluded.created_at
		RETURNING body
	`, rev.ID, rev.CreatedAt, documentID)
	if err := row.Scan(&rev.Body); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("saving revision of document %d: %w", documentID, err)
	}
	return &rev, nil
}

// GetDocumentRevision returns the latest revision of a document.
func (s *ContentStore) GetDocumentRevision(ctx context.Context, documentID int64) (*domain.Revision, error) {
	var rev domain.Revision
	err := s.store.db.QueryRowContext(ctx, `
		SELECT id, document_id, body, created_at FROM revisions WHERE document_id = ?
	`, documentID).Scan(&rev.ID, &rev.DocumentID, &rev.Body, &rev.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting revision of document %d: %w", documentID, err)
	}
	return &rev, nil
}

// requireAffected maps an update that touched no rows to domain.ErrNotFound.
func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
