package terms

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/rebrand-tracker/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/rebrand-tracker/internal/core/domain"
)

type mockTermService struct {
	set   domain.TermSet
	err   error
	saved [][]string
}

func (m *mockTermService) GetTerms(_ context.Context) (domain.TermSet, error) {
	return m.set, m.err
}

func (m *mockTermService) SetTerms(_ context.Context, candidates []string) (domain.TermSet, error) {
	if m.err != nil {
		return domain.TermSet{}, m.err
	}
	m.saved = append(m.saved, candidates)
	m.set = domain.NewTermSet(candidates)
	return m.set, nil
}

func TestView_InitLoadsTerms(t *testing.T) {
	svc := &mockTermService{set: domain.NewTermSet([]string{"Acme", "Globex"})}
	v := NewView(nil, svc)

	v, _ = v.Update(v.Init()())

	assert.Equal(t, []string{"Acme", "Globex"}, v.Terms())
	assert.Contains(t, v.View(), "Globex")
}

func TestView_EmptyTerms(t *testing.T) {
	v := NewView(nil, &mockTermService{})

	v, _ = v.Update(v.Init()())

	assert.Empty(t, v.Terms())
	assert.Contains(t, v.View(), "No terms configured")
}

func TestView_EditAndSave(t *testing.T) {
	svc := &mockTermService{set: domain.NewTermSet([]string{"Acme"})}
	v := NewView(nil, svc)
	v, _ = v.Update(v.Init()())

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("e")})
	require.True(t, v.Editing())

	for _, r := range ", globex,  " {
		v, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}

	v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.False(t, v.Editing())

	v, _ = v.Update(cmd())

	require.Len(t, svc.saved, 1)
	assert.Equal(t, []string{"Acme", " globex", "  "}, svc.saved[0])
	assert.Equal(t, []string{"Acme", "globex"}, v.Terms())
	assert.Contains(t, v.View(), "Saved 2 term(s)")
}

func TestView_EditCancelled(t *testing.T) {
	svc := &mockTermService{set: domain.NewTermSet([]string{"Acme"})}
	v := NewView(nil, svc)

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, v.Editing())

	v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.Nil(t, cmd)
	assert.False(t, v.Editing())
	assert.Empty(t, svc.saved)
}

func TestView_SaveError(t *testing.T) {
	v := NewView(nil, &mockTermService{})
	v, _ = v.Update(messages.TermsSaved{Err: errors.New("readonly database")})

	require.Error(t, v.Err())
	assert.Contains(t, v.View(), "readonly database")
}

func TestView_Back(t *testing.T) {
	v := NewView(nil, &mockTermService{})

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)

	assert.Equal(t, messages.ViewChanged{View: messages.ViewMenu}, cmd())
}

func TestView_Reset(t *testing.T) {
	v := NewView(nil, &mockTermService{})
	v.editing = true
	v.notice = "Saved"

	v.Reset()

	assert.False(t, v.Editing())
	assert.NoError(t, v.Err())
}
