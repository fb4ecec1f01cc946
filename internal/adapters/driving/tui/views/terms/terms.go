// Package terms provides the term editor view for the TUI.
package terms

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/rebrand-tracker/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/rebrand-tracker/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/rebrand-tracker/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/rebrand-tracker/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/rebrand-tracker/internal/core/ports/driving"
)

// View shows the tracked terms and edits them as a comma-separated line.
type View struct {
	ctx     context.Context
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	service driving.TermService

	input   *input.TextInput
	terms   []string
	editing bool
	notice  string
	err     error

	width  int
	height int
}

// NewView creates a new term editor.
func NewView(s *styles.Styles, service driving.TermService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		ctx:     context.Background(),
		styles:  s,
		keymap:  keymap.DefaultKeyMap(),
		service: service,
		input:   input.NewTextInput(s, "Terms: ", "Acme, Acme Corp, acme.io"),
		width:   80,
		height:  24,
	}
}

// SetContext sets the context passed to service calls.
func (v *View) SetContext(ctx context.Context) {
	v.ctx = ctx
}

// Init loads the configured terms.
func (v *View) Init() tea.Cmd {
	if v.service == nil {
		return nil
	}
	ctx, svc := v.ctx, v.service
	return func() tea.Msg {
		set, err := svc.GetTerms(ctx)
		return messages.TermsLoaded{Terms: set.Terms(), Err: err}
	}
}

// Reset leaves edit mode and clears messages.
func (v *View) Reset() {
	v.editing = false
	v.notice = ""
	v.err = nil
	v.input.Reset()
}

func (v *View) save(candidates []string) tea.Cmd {
	ctx, svc := v.ctx, v.service
	return func() tea.Msg {
		set, err := svc.SetTerms(ctx, candidates)
		return messages.TermsSaved{Terms: set.Terms(), Err: err}
	}
}

// Update handles messages for the term editor.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.TermsLoaded:
		v.err = msg.Err
		if msg.Err == nil {
			v.terms = msg.Terms
		}
		return v, nil

	case messages.TermsSaved:
		v.err = msg.Err
		if msg.Err == nil {
			v.terms = msg.Terms
			v.notice = fmt.Sprintf("Saved %d term(s)", len(msg.Terms))
		}
		return v, nil

	case tea.KeyMsg:
		if v.editing {
			return v.updateEditing(msg)
		}
		k := msg.String()
		switch {
		case keymap.Matches(k, v.keymap.Back):
			return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewMenu} }
		case keymap.Matches(k, v.keymap.Edit), keymap.Matches(k, v.keymap.Select):
			v.editing = true
			v.notice = ""
			v.input.SetValue(strings.Join(v.terms, ", "))
			return v, v.input.Focus()
		case keymap.Matches(k, v.keymap.Refresh):
			return v, v.Init()
		}
	}
	return v, nil
}

func (v *View) updateEditing(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		v.editing = false
		v.input.Blur()
		return v, nil
	case tea.KeyEnter:
		v.editing = false
		v.input.Blur()
		if v.service == nil {
			return v, nil
		}
		return v, v.save(strings.Split(v.input.Value(), ","))
	}
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// View renders the term editor.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Terms"))
	b.WriteString("\n\n")

	if len(v.terms) == 0 {
		b.WriteString(v.styles.Muted.Render("No terms configured"))
		b.WriteString("\n")
	}
	for _, t := range v.terms {
		b.WriteString("  " + v.styles.Term.Render(t))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if v.editing {
		b.WriteString(v.input.View())
		b.WriteString("\n")
		b.WriteString(v.styles.Help.Render("[enter] save  [esc] cancel"))
	} else {
		if v.err != nil {
			b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
			b.WriteString("\n")
		} else if v.notice != "" {
			b.WriteString(v.styles.Success.Render(v.notice))
			b.WriteString("\n")
		}
		b.WriteString(v.styles.Help.Render("[e] edit  [R] reload  [esc] back"))
	}
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.input.SetWidth(width)
}

// Terms returns the displayed terms.
func (v *View) Terms() []string {
	return v.terms
}

// Editing reports whether the input is active.
func (v *View) Editing() bool {
	return v.editing
}

// Err returns the last load or save error.
func (v *View) Err() error {
	return v.err
}
