package services

import (
	"context"
	"iter"
	"sort"
	"sync"

	"github.com/custodia-labs/rebrand-tracker/internal/core/domain"
	"github.com/custodia-labs/rebrand-tracker/internal/core/ports/driven"
)

// mockAdapter implements driven.SourceAdapter over an in-memory record map.
type mockAdapter struct {
	kind domain.SourceKind

	mu        sync.Mutex
	records   map[int64]domain.SourceRecord
	enumErr   error
	enumCalls int
	getErr    error
	applyErr  error
	applied   int
}

func newMockAdapter(kind domain.SourceKind, records ...domain.SourceRecord) *mockAdapter {
	m := &mockAdapter{kind: kind, records: make(map[int64]domain.SourceRecord)}
	for _, r := range records {
		m.records[r.ID] = r
	}
	return m
}

func (m *mockAdapter) Kind() domain.SourceKind { return m.kind }

func (m *mockAdapter) Enumerate(_ context.Context) iter.Seq2[domain.SourceRecord, error] {
	m.mu.Lock()
	m.enumCalls++
	recs := make([]domain.SourceRecord, 0, len(m.records))
	for _, r := range m.records {
		recs = append(recs, cloneRecord(r))
	}
	enumErr := m.enumErr
	m.mu.Unlock()
	sort.Slice(recs, func(i, j int) bool { return recs[i].ID < recs[j].ID })

	return func(yield func(domain.SourceRecord, error) bool) {
		for _, r := range recs {
			if !yield(r, nil) {
				return
			}
		}
		if enumErr != nil {
			yield(domain.SourceRecord{}, enumErr)
		}
	}
}

func (m *mockAdapter) Get(_ context.Context, id int64) (*domain.SourceRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	r, ok := m.records[id]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	out := cloneRecord(r)
	return &out, nil
}

func (m *mockAdapter) ApplyReplace(_ context.Context, ref domain.RecordRef, newText string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.applyErr != nil {
		return m.applyErr
	}
	r, ok := m.records[ref.ID]
	if !ok {
		return domain.ErrRecordNotFound
	}
	if _, ok := r.Fields[ref.Field]; !ok {
		return domain.ErrRecordNotFound
	}
	r = cloneRecord(r)
	r.Fields[ref.Field] = newText
	m.records[ref.ID] = r
	m.applied++
	return nil
}

func (m *mockAdapter) text(id int64, field string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.records[id].Fields[field]
}

func (m *mockAdapter) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.enumCalls
}

func cloneRecord(r domain.SourceRecord) domain.SourceRecord {
	fields := make(map[string]string, len(r.Fields))
	for k, v := range r.Fields {
		fields[k] = v
	}
	r.Fields = fields
	return r
}

// mockSnapshotAdapter adds driven.Snapshotter to mockAdapter.
type mockSnapshotAdapter struct {
	*mockAdapter
	snapID  string
	snapErr error
	snaps   int
}

var _ driven.Snapshotter = (*mockSnapshotAdapter)(nil)

func (m *mockSnapshotAdapter) CaptureSnapshot(_ context.Context, _ int64) (string, error) {
	m.snaps++
	if m.snapErr != nil {
		return "", m.snapErr
	}
	return m.snapID, nil
}

// mockTermRepo implements driven.TermRepository with injectable failures.
type mockTermRepo struct {
	mu       sync.Mutex
	terms    []string
	loadErr  error
	saveErr  error
	clearErr error
}

func (m *mockTermRepo) LoadTerms(_ context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return append([]string(nil), m.terms...), nil
}

func (m *mockTermRepo) SaveTerms(_ context.Context, terms []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.terms = append([]string(nil), terms...)
	return nil
}

func (m *mockTermRepo) ClearTerms(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.clearErr != nil {
		return m.clearErr
	}
	m.terms = nil
	return nil
}

// doc builds a document-like record with a single body field.
func doc(id int64, body string) domain.SourceRecord {
	return domain.SourceRecord{
		ID:          id,
		Fields:      map[string]string{domain.DocumentBodyField: body},
		Label:       "Doc",
		EditLocator: "https://example.com/admin/documents/1/edit",
		ViewLocator: "https://example.com/documents/1",
	}
}

// field builds a record with one named field.
func field(id int64, name, value string) domain.SourceRecord {
	return domain.SourceRecord{ID: id, Fields: map[string]string{name: value}, Label: name}
}
