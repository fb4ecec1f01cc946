package services

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// wordMatcher finds whole-word, case-insensitive, literal occurrences of one term.
// An occurrence counts only when the characters on either side of it are not
// word characters (letters, digits, underscore).
type wordMatcher struct {
	term string
	re   *regexp.Regexp
}

func newWordMatcher(term string) *wordMatcher {
	return &wordMatcher{
		term: term,
		re:   regexp.MustCompile("(?i)" + regexp.QuoteMeta(term)),
	}
}

// find returns the byte ranges of every whole-word occurrence in text.
// Candidates that fail the boundary check are retried one rune later so
// overlapping occurrences are not skipped.
func (m *wordMatcher) find(text string) [][2]int {
	var out [][2]int
	pos := 0
	for pos < len(text) {
		loc := m.re.FindStringIndex(text[pos:])
		if loc == nil {
			break
		}
		start, end := pos+loc[0], pos+loc[1]
		if end > start && isWordBoundary(text, start, end) {
			out = append(out, [2]int{start, end})
			pos = end
			continue
		}
		_, size := utf8.DecodeRuneInString(text[start:])
		if size == 0 {
			size = 1
		}
		pos = start + size
	}
	return out
}

// Count returns the number of whole-word occurrences in text.
func (m *wordMatcher) Count(text string) int {
	return len(m.find(text))
}

// Replace substitutes every whole-word occurrence with replacement.
// The replacement is inserted literally.
func (m *wordMatcher) Replace(text, replacement string) (string, int) {
	locs := m.find(text)
	if len(locs) == 0 {
		return text, 0
	}

	var b strings.Builder
	if n := len(text) + len(locs)*(len(replacement)-len(m.term)); n > 0 {
		b.Grow(n)
	}
	last := 0
	for _, loc := range locs {
		b.WriteString(text[last:loc[0]])
		b.WriteString(replacement)
		last = loc[1]
	}
	b.WriteString(text[last:])
	return b.String(), len(locs)
}

func isWordBoundary(text string, start, end int) bool {
	if start > 0 {
		r, _ := utf8.DecodeLastRuneInString(text[:start])
		if isWordRune(r) {
			return false
		}
	}
	if end < len(text) {
		r, _ := utf8.DecodeRuneInString(text[end:])
		if isWordRune(r) {
			return false
		}
	}
	return true
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
