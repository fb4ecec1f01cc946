package tui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/rebrand-tracker/internal/core/domain"
)

// MockTermService implements driving.TermService for testing.
type MockTermService struct {
	Terms []string
}

func (m *MockTermService) GetTerms(_ context.Context) (domain.TermSet, error) {
	return domain.NewTermSet(m.Terms), nil
}

func (m *MockTermService) SetTerms(_ context.Context, candidates []string) (domain.TermSet, error) {
	m.Terms = candidates
	return domain.NewTermSet(candidates), nil
}

// MockMatchService implements driving.MatchService for testing.
type MockMatchService struct {
	Page *domain.MatchPage
}

func (m *MockMatchService) GetMatches(_ context.Context) (*domain.MatchReport, error) {
	return &domain.MatchReport{}, nil
}

func (m *MockMatchService) ListMatches(_ context.Context, f domain.MatchFilter) (*domain.MatchPage, error) {
	if m.Page != nil {
		return m.Page, nil
	}
	return &domain.MatchPage{Page: f.Page}, nil
}

// MockReplaceService implements driving.ReplaceService for testing.
type MockReplaceService struct{}

func (m *MockReplaceService) ReplaceMatch(_ context.Context, req domain.ReplaceRequest) (*domain.ReplaceResult, error) {
	return &domain.ReplaceResult{Term: req.Term, Replacement: req.Replacement}, nil
}

func (m *MockReplaceService) Preview(_ context.Context, _ domain.ReplaceRequest) (*domain.ReplacePreview, error) {
	return &domain.ReplacePreview{}, nil
}

func TestNewPorts(t *testing.T) {
	terms := &MockTermService{}
	matches := &MockMatchService{}
	replace := &MockReplaceService{}

	p := NewPorts(terms, matches, replace)

	assert.Equal(t, terms, p.Terms)
	assert.Equal(t, matches, p.Matches)
	assert.Equal(t, replace, p.Replace)
	assert.Nil(t, p.Settings)
	assert.NoError(t, p.Validate())
}

func TestPorts_Validate(t *testing.T) {
	tests := []struct {
		name  string
		ports *Ports
		want  error
	}{
		{"nil ports", nil, ErrInvalidPorts},
		{"missing terms", &Ports{Matches: &MockMatchService{}, Replace: &MockReplaceService{}}, ErrMissingTermService},
		{"missing matches", &Ports{Terms: &MockTermService{}, Replace: &MockReplaceService{}}, ErrMissingMatchService},
		{"missing replace", &Ports{Terms: &MockTermService{}, Matches: &MockMatchService{}}, ErrMissingReplaceService},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.ports.Validate(), tt.want)
		})
	}
}
