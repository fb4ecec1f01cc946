package mcp

import (
	"context"

	"github.com/custodia-labs/rebrand-tracker/internal/core/domain"
)

// mockTermService is a mock implementation of driving.TermService.
type mockTermService struct {
	terms []string
	set   []string
	err   error
}

func (m *mockTermService) GetTerms(_ context.Context) (domain.TermSet, error) {
	return domain.NewTermSet(m.terms), m.err
}

func (m *mockTermService) SetTerms(_ context.Context, candidates []string) (domain.TermSet, error) {
	if m.err != nil {
		return domain.TermSet{}, m.err
	}
	m.set = candidates
	return domain.NewTermSet(candidates), nil
}

// mockMatchService is a mock implementation of driving.MatchService.
type mockMatchService struct {
	report     *domain.MatchReport
	page       *domain.MatchPage
	lastFilter domain.MatchFilter
	err        error
}

func (m *mockMatchService) GetMatches(_ context.Context) (*domain.MatchReport, error) {
	return m.report, m.err
}

func (m *mockMatchService) ListMatches(_ context.Context, filter domain.MatchFilter) (*domain.MatchPage, error) {
	m.lastFilter = filter
	return m.page, m.err
}

// mockReplaceService is a mock implementation of driving.ReplaceService.
type mockReplaceService struct {
	result  *domain.ReplaceResult
	preview *domain.ReplacePreview
	lastReq domain.ReplaceRequest
	err     error
}

func (m *mockReplaceService) ReplaceMatch(_ context.Context, req domain.ReplaceRequest) (*domain.ReplaceResult, error) {
	m.lastReq = req
	return m.result, m.err
}

func (m *mockReplaceService) Preview(_ context.Context, req domain.ReplaceRequest) (*domain.ReplacePreview, error) {
	m.lastReq = req
	return m.preview, m.err
}

// mockAdminService is a mock implementation of driving.AdminService.
type mockAdminService struct {
	calls int
	err   error
}

func (m *mockAdminService) ClearAllState(_ context.Context) error {
	m.calls++
	return m.err
}

// testPorts returns ports backed by fresh mocks.
func testPorts() (*Ports, *mockTermService, *mockMatchService, *mockReplaceService, *mockAdminService) {
	terms := &mockTermService{}
	matches := &mockMatchService{}
	replace := &mockReplaceService{}
	admin := &mockAdminService{}
	return &Ports{Terms: terms, Matches: matches, Replace: replace, Admin: admin},
		terms, matches, replace, admin
}

var sampleMatch = domain.Match{
	Kind:        domain.SourceKindDocument,
	RecordID:    12,
	Field:       domain.DocumentBodyField,
	Term:        "Acme",
	Label:       "Launch post",
	Occurrences: 2,
	EditLocator: "https://example.com/admin/documents/12/edit",
	ViewLocator: "https://example.com/documents/12?highlight=Acme",
}
