// Package matches provides the match browser view for the TUI.
// It pages through matches, filters by source kind and drives the
// preview-then-confirm replace flow for the selected match.
package matches

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/rebrand-tracker/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/rebrand-tracker/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/rebrand-tracker/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/rebrand-tracker/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/rebrand-tracker/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/rebrand-tracker/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/rebrand-tracker/internal/core/domain"
	"github.com/custodia-labs/rebrand-tracker/internal/core/ports/driving"
)

// Mode is the interaction state of the view.
type Mode int

// View modes.
const (
	ModeBrowse Mode = iota
	ModeInput
	ModeConfirm
)

// kindCycle is the order the filter key steps through. Empty means all.
var kindCycle = []domain.SourceKind{
	"",
	domain.SourceKindDocument,
	domain.SourceKindMetadata,
	domain.SourceKindSetting,
}

// View is the match browser.
type View struct {
	ctx     context.Context
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	matches driving.MatchService
	replace driving.ReplaceService

	list   *list.MatchList
	input  *input.TextInput
	status *status.Bar

	filter  domain.MatchFilter
	page    *domain.MatchPage
	mode    Mode
	pending *domain.ReplaceRequest
	preview *domain.ReplacePreview
	notice  string
	err     error

	width  int
	height int
}

// NewView creates a new match browser.
func NewView(s *styles.Styles, matches driving.MatchService, replace driving.ReplaceService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	km := keymap.DefaultKeyMap()

	return &View{
		ctx:     context.Background(),
		styles:  s,
		keymap:  km,
		matches: matches,
		replace: replace,
		list:    list.NewMatchList(s),
		input:   input.NewTextInput(s, "Replace with: ", "new text"),
		status:  status.NewBar(s, km),
		filter:  domain.MatchFilter{Page: 1, PerPage: domain.DefaultPerPage},
		width:   80,
		height:  24,
	}
}

// SetContext sets the context passed to service calls.
func (v *View) SetContext(ctx context.Context) {
	v.ctx = ctx
}

// Init loads the first page.
func (v *View) Init() tea.Cmd {
	return v.load()
}

// Reset returns to browse mode on the first page, keeping the kind filter.
func (v *View) Reset() {
	v.mode = ModeBrowse
	v.pending = nil
	v.preview = nil
	v.notice = ""
	v.err = nil
	v.filter.Page = 1
	v.input.Reset()
}

func (v *View) load() tea.Cmd {
	if v.matches == nil {
		return nil
	}
	ctx, svc, filter := v.ctx, v.matches, v.filter
	v.status.SetState(status.StateLoading)
	return func() tea.Msg {
		page, err := svc.ListMatches(ctx, filter)
		return messages.MatchesLoaded{Page: page, Err: err}
	}
}

func (v *View) previewCmd(req domain.ReplaceRequest) tea.Cmd {
	ctx, svc := v.ctx, v.replace
	return func() tea.Msg {
		p, err := svc.Preview(ctx, req)
		return messages.ReplacePreviewed{Request: req, Preview: p, Err: err}
	}
}

func (v *View) applyCmd(req domain.ReplaceRequest) tea.Cmd {
	ctx, svc := v.ctx, v.replace
	return func() tea.Msg {
		res, err := svc.ReplaceMatch(ctx, req)
		return messages.ReplaceCompleted{Request: req, Result: res, Err: err}
	}
}

// Update handles messages for the match browser.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.MatchesLoaded:
		return v, v.handleLoaded(msg)

	case messages.ReplacePreviewed:
		if msg.Err != nil {
			v.mode = ModeBrowse
			v.pending = nil
			v.notice = describeError(msg.Err)
			return v, nil
		}
		v.preview = msg.Preview
		v.mode = ModeConfirm
		return v, nil

	case messages.ReplaceCompleted:
		v.mode = ModeBrowse
		v.pending = nil
		v.preview = nil
		if msg.Err != nil {
			v.notice = describeError(msg.Err)
			return v, nil
		}
		v.notice = fmt.Sprintf("Replaced %d occurrence(s) of %q in %s",
			msg.Result.Occurrences, msg.Result.Term, msg.Result.Ref)
		return v, v.load()

	case tea.KeyMsg:
		switch v.mode {
		case ModeInput:
			return v.updateInput(msg)
		case ModeConfirm:
			return v.updateConfirm(msg)
		case ModeBrowse:
			return v.updateBrowse(msg)
		}
	}

	return v, nil
}

func (v *View) handleLoaded(msg messages.MatchesLoaded) tea.Cmd {
	if msg.Err != nil {
		v.err = msg.Err
		v.status.SetState(status.StateError)
		v.status.SetMessage(msg.Err.Error())
		return nil
	}
	v.err = nil
	page := msg.Page
	if page == nil {
		page = &domain.MatchPage{Page: 1}
	}
	// A replace can empty the last page; step back to the new last page.
	if page.Pages > 0 && page.Page > page.Pages {
		v.filter.Page = page.Pages
		return v.load()
	}

	v.page = page
	v.list.SetMatches(page.Matches)
	v.status.SetState(status.StateMatches)
	v.status.SetPage(page.Total, page.Page, page.Pages)
	v.status.SetMessage(v.filterLabel())
	return nil
}

func (v *View) updateBrowse(msg tea.KeyMsg) (*View, tea.Cmd) {
	k := msg.String()
	switch {
	case keymap.Matches(k, v.keymap.Back):
		return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewMenu} }

	case keymap.Matches(k, v.keymap.Up), keymap.Matches(k, v.keymap.Down):
		v.list, _ = v.list.Update(msg)
		return v, nil

	case keymap.Matches(k, v.keymap.NextPage):
		if v.page != nil && v.page.Page < v.page.Pages {
			v.filter.Page++
			return v, v.load()
		}
		return v, nil

	case keymap.Matches(k, v.keymap.PrevPage):
		if v.filter.Page > 1 {
			v.filter.Page--
			return v, v.load()
		}
		return v, nil

	case keymap.Matches(k, v.keymap.Filter):
		v.filter.Kind = nextKind(v.filter.Kind)
		v.filter.Page = 1
		return v, v.load()

	case keymap.Matches(k, v.keymap.Refresh):
		return v, v.load()

	case keymap.Matches(k, v.keymap.Replace):
		m := v.list.SelectedMatch()
		if m == nil || v.replace == nil {
			return v, nil
		}
		v.pending = &domain.ReplaceRequest{
			Kind:     m.Kind,
			RecordID: m.RecordID,
			Field:    m.Field,
			Term:     m.Term,
		}
		v.notice = ""
		v.mode = ModeInput
		v.input.Reset()
		v.input.SetLabel(fmt.Sprintf("Replace %q with: ", m.Term))
		return v, v.input.Focus()
	}
	return v, nil
}

func (v *View) updateInput(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		v.cancel()
		return v, nil
	case tea.KeyEnter:
		req := *v.pending
		req.Replacement = v.input.Value()
		v.pending = &req
		v.input.Blur()
		return v, v.previewCmd(req)
	}
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *View) updateConfirm(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "enter", "y", "Y":
		return v, v.applyCmd(*v.pending)
	case "esc", "n", "N":
		v.cancel()
	}
	return v, nil
}

func (v *View) cancel() {
	v.mode = ModeBrowse
	v.pending = nil
	v.preview = nil
	v.input.Reset()
	v.notice = "Replace cancelled"
}

// View renders the match browser.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Matches"))
	b.WriteString("  ")
	b.WriteString(v.styles.Muted.Render(v.filterLabel()))
	b.WriteString("\n\n")

	if v.page != nil {
		for _, w := range v.page.Warnings {
			b.WriteString(v.styles.Warning.Render("! " + w))
			b.WriteString("\n")
		}
		if len(v.page.Warnings) > 0 {
			b.WriteString("\n")
		}
	}

	b.WriteString(v.list.View())
	b.WriteString("\n\n")

	switch v.mode {
	case ModeInput:
		b.WriteString(v.input.View())
		b.WriteString("\n")
	case ModeConfirm:
		b.WriteString(v.renderPreview())
		b.WriteString("\n")
	case ModeBrowse:
		if v.notice != "" {
			b.WriteString(v.styles.Subtitle.Render(v.notice))
			b.WriteString("\n")
		}
	}

	b.WriteString(v.status.View())
	return b.String()
}

func (v *View) renderPreview() string {
	if v.preview == nil {
		return ""
	}
	p := v.preview
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %d occurrence(s)\n", v.styles.Subtitle.Render(p.Ref.String()), p.Occurrences)
	b.WriteString(v.styles.Error.Render("- " + excerpt(p.Before, v.width)))
	b.WriteString("\n")
	b.WriteString(v.styles.Success.Render("+ " + excerpt(p.After, v.width)))
	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[enter/y] apply  [esc/n] cancel"))
	return b.String()
}

func (v *View) filterLabel() string {
	if v.filter.Kind == "" {
		return "all sources"
	}
	return "filter: " + v.filter.Kind.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.list.SetDimensions(width, max(height-10, 4))
	v.input.SetWidth(width)
	v.status.SetWidth(width)
}

// Mode returns the current interaction mode.
func (v *View) Mode() Mode {
	return v.mode
}

// Filter returns the active filter.
func (v *View) Filter() domain.MatchFilter {
	return v.filter
}

// Notice returns the last outcome message.
func (v *View) Notice() string {
	return v.notice
}

// Err returns the last load error.
func (v *View) Err() error {
	return v.err
}

// List exposes the match list component.
func (v *View) List() *list.MatchList {
	return v.list
}

func nextKind(current domain.SourceKind) domain.SourceKind {
	for i, k := range kindCycle {
		if k == current {
			return kindCycle[(i+1)%len(kindCycle)]
		}
	}
	return ""
}

func describeError(err error) string {
	if re, ok := domain.AsReplaceError(err); ok {
		return fmt.Sprintf("Replace %s: %s", re.Outcome, re.Reason)
	}
	return "Error: " + err.Error()
}

// excerpt flattens text to one line that fits the width.
func excerpt(s string, width int) string {
	s = strings.Join(strings.Fields(s), " ")
	limit := max(width-4, 20)
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit-3]) + "..."
}
