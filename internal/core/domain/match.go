package domain

import (
	"sort"
	"strings"
	"time"
)

// DefaultPerPage is the page size used when a filter does not set one.
const DefaultPerPage = 20

// MatchKey uniquely identifies a match.
// At most one Match exists per key; repeated occurrences of the same
// term in one record are counted, not duplicated.
type MatchKey struct {
	Kind     SourceKind
	RecordID int64
	Term     string
}

// Match is one (source, record, term) triple confirmed to contain the term.
type Match struct {
	// Kind is the source the record lives in.
	Kind SourceKind `json:"kind"`

	// RecordID is the record identifier within its source.
	RecordID int64 `json:"record_id"`

	// Field names the text field holding the term.
	Field string `json:"field"`

	// Term is the configured term that matched.
	Term string `json:"term"`

	// Label is a human-readable description of the record.
	Label string `json:"label"`

	// Occurrences counts whole-word occurrences of the term in the field.
	Occurrences int `json:"occurrences"`

	// AuthorName is the record author, if known.
	AuthorName string `json:"author_name,omitempty"`

	// EditLocator is where the record can be edited.
	EditLocator string `json:"edit_locator"`

	// ViewLocator is where the record can be viewed.
	ViewLocator string `json:"view_locator"`
}

// Key returns the uniqueness key of the match.
func (m Match) Key() MatchKey {
	return MatchKey{Kind: m.Kind, RecordID: m.RecordID, Term: m.Term}
}

// Ref returns the record reference the match points at.
func (m Match) Ref() RecordRef {
	return RecordRef{Kind: m.Kind, ID: m.RecordID, Field: m.Field}
}

// MatchSet holds one full scan result keyed by MatchKey.
// Iteration order is unspecified; use Sorted for presentation.
type MatchSet map[MatchKey]Match

// Put upserts a match. The last write for a key wins.
func (s MatchSet) Put(m Match) {
	s[m.Key()] = m
}

// Sorted returns the matches ordered by kind, record id, then term.
func (s MatchSet) Sorted() []Match {
	out := make([]Match, 0, len(s))
	for _, m := range s {
		out = append(out, m)
	}
	SortMatches(out)
	return out
}

// SortMatches orders matches by kind, record id, then term.
func SortMatches(matches []Match) {
	sort.Slice(matches, func(i, j int) bool {
		a, b := matches[i], matches[j]
		if a.Kind != b.Kind {
			return a.Kind.order() < b.Kind.order()
		}
		if a.RecordID != b.RecordID {
			return a.RecordID < b.RecordID
		}
		return a.Term < b.Term
	})
}

// ScanResult is the output of one scan pass.
type ScanResult struct {
	// Terms is the term set the scan ran with.
	Terms TermSet

	// Matches is the full match set.
	Matches MatchSet

	// Warnings lists sources that failed to enumerate.
	Warnings []SourceWarning

	// ScannedAt is when the scan completed.
	ScannedAt time.Time
}

// WarningMessages returns the warnings as display strings.
func (r ScanResult) WarningMessages() []string {
	out := make([]string, 0, len(r.Warnings))
	for _, w := range r.Warnings {
		out = append(out, w.Message())
	}
	return out
}

// MatchReport is the response to a full match listing.
type MatchReport struct {
	// Terms is the active term set, sorted.
	Terms []string `json:"terms"`

	// Matches are all matches in presentation order.
	Matches []Match `json:"matches"`

	// Warnings names any sources that failed to enumerate.
	Warnings []string `json:"warnings"`
}

// MatchFilter narrows and pages a match listing.
type MatchFilter struct {
	// Kind restricts to one source kind. Empty means all.
	Kind SourceKind

	// Term restricts to one term (case-insensitive). Empty means all.
	Term string

	// Page is the 1-based page number. Values below 1 mean 1.
	Page int

	// PerPage is the page size. Values below 1 mean DefaultPerPage.
	PerPage int
}

// Matches reports whether m passes the filter's kind and term restrictions.
func (f MatchFilter) Matches(m Match) bool {
	if f.Kind != "" && m.Kind != f.Kind {
		return false
	}
	if f.Term != "" && !strings.EqualFold(f.Term, m.Term) {
		return false
	}
	return true
}

// MatchPage is one page of a filtered match listing.
type MatchPage struct {
	// Matches on this page in presentation order.
	Matches []Match `json:"matches"`

	// Total is the number of matches passing the filter.
	Total int `json:"total"`

	// Page is the 1-based page number actually returned.
	Page int `json:"page"`

	// Pages is the number of pages available.
	Pages int `json:"pages"`

	// Warnings names any sources that failed to enumerate.
	Warnings []string `json:"warnings"`
}

// Paginate applies the filter to sorted matches.
func Paginate(sorted []Match, f MatchFilter) MatchPage {
	perPage := f.PerPage
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	page := f.Page
	if page < 1 {
		page = 1
	}

	filtered := make([]Match, 0, len(sorted))
	for _, m := range sorted {
		if f.Matches(m) {
			filtered = append(filtered, m)
		}
	}

	// Page and size come from clients; keep the arithmetic within total.
	total := len(filtered)
	pages := 0
	if total > 0 {
		pages = (total-1)/perPage + 1
	}
	start := total
	if page-1 < pages {
		start = (page - 1) * perPage
	}
	end := start + min(perPage, total-start)

	return MatchPage{
		Matches: filtered[start:end],
		Total:   total,
		Page:    page,
		Pages:   pages,
	}
}
