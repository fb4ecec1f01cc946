// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/rebrand-tracker/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/rebrand-tracker/internal/core/domain"
)

// MatchList displays matches in a navigable list.
type MatchList struct {
	matches  []domain.Match
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewMatchList creates a new match list component.
func NewMatchList(s *styles.Styles) *MatchList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &MatchList{
		styles: s,
		width:  80,
		height: 10,
	}
}

// Init initialises the match list.
func (l *MatchList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (l *MatchList) Update(msg tea.Msg) (*MatchList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			l.MoveUp()
		case "down", "j":
			l.MoveDown()
		}
	}
	return l, nil
}

// View renders the match list.
func (l *MatchList) View() string {
	if len(l.matches) == 0 {
		return l.styles.Muted.Render("No matches")
	}

	// Each match renders as two lines.
	visible := max((l.height-2)/2, 1)

	start := 0
	if l.selected >= visible {
		start = l.selected - visible + 1
	}
	end := min(start+visible, len(l.matches))

	lines := make([]string, 0, (end-start)*2)
	for i := start; i < end; i++ {
		lines = append(lines, l.renderMatch(i, &l.matches[i]))
	}
	return strings.Join(lines, "\n")
}

func (l *MatchList) renderMatch(index int, m *domain.Match) string {
	indicator := "  "
	if index == l.selected {
		indicator = "> "
	}

	label := truncate(m.Label, max(l.width-40, 10))
	count := fmt.Sprintf("×%d", m.Occurrences)

	var head string
	if index == l.selected {
		head = l.styles.Selected.Render(indicator+label) + " "
	} else {
		head = l.styles.Normal.Render(indicator+label) + " "
	}
	head = l.styles.Kind(m.Kind) + " " + head +
		l.styles.Term.Render(m.Term) + " " + l.styles.Muted.Render(count)

	detail := m.Field
	if m.AuthorName != "" {
		detail += " · " + m.AuthorName
	}
	if m.EditLocator != "" {
		detail += " · " + m.EditLocator
	}
	detail = truncate(detail, max(l.width-6, 20))

	return head + "\n" + l.styles.Muted.Render("    "+detail)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// SetMatches replaces the list contents and resets the selection.
func (l *MatchList) SetMatches(matches []domain.Match) {
	l.matches = matches
	l.selected = 0
}

// Matches returns the current matches.
func (l *MatchList) Matches() []domain.Match {
	return l.matches
}

// Selected returns the index of the selected match.
func (l *MatchList) Selected() int {
	return l.selected
}

// SetSelected sets the selected index.
func (l *MatchList) SetSelected(index int) {
	if index >= 0 && index < len(l.matches) {
		l.selected = index
	}
}

// SelectedMatch returns the currently selected match, or nil if none.
func (l *MatchList) SelectedMatch() *domain.Match {
	if l.selected < 0 || l.selected >= len(l.matches) {
		return nil
	}
	return &l.matches[l.selected]
}

// MoveUp moves selection up.
func (l *MatchList) MoveUp() {
	if l.selected > 0 {
		l.selected--
	}
}

// MoveDown moves selection down.
func (l *MatchList) MoveDown() {
	if l.selected < len(l.matches)-1 {
		l.selected++
	}
}

// SetDimensions sets the component dimensions.
func (l *MatchList) SetDimensions(width, height int) {
	l.width = width
	l.height = height
}

// Count returns the number of matches.
func (l *MatchList) Count() int {
	return len(l.matches)
}

// IsEmpty returns whether the list is empty.
func (l *MatchList) IsEmpty() bool {
	return len(l.matches) == 0
}
