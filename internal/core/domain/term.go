package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"
	"unicode"
)

// TermSet is an immutable set of search terms.
// Terms are sanitised, non-empty and unique (case-insensitively),
// held in sorted order so that equal sets compare and fingerprint equally.
type TermSet struct {
	terms []string
}

// NewTermSet sanitises candidates into a TermSet.
// Invalid entries (empty after sanitisation) are dropped silently.
// When two candidates differ only by case, the first spelling wins.
func NewTermSet(candidates []string) TermSet {
	seen := make(map[string]struct{}, len(candidates))
	terms := make([]string, 0, len(candidates))
	for _, c := range candidates {
		term := SanitizeTerm(c)
		if term == "" {
			continue
		}
		folded := strings.ToLower(term)
		if _, ok := seen[folded]; ok {
			continue
		}
		seen[folded] = struct{}{}
		terms = append(terms, term)
	}
	sort.Strings(terms)
	return TermSet{terms: terms}
}

// SanitizeTerm trims a candidate and collapses control characters
// and whitespace runs into single spaces.
func SanitizeTerm(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	pendingSpace := false
	for _, r := range s {
		if unicode.IsControl(r) || unicode.IsSpace(r) || r == unicode.ReplacementChar {
			pendingSpace = true
			continue
		}
		if pendingSpace && b.Len() > 0 {
			b.WriteByte(' ')
		}
		pendingSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

// Terms returns a copy of the terms in sorted order.
func (s TermSet) Terms() []string {
	out := make([]string, len(s.terms))
	copy(out, s.terms)
	return out
}

// Len returns the number of terms.
func (s TermSet) Len() int {
	return len(s.terms)
}

// IsEmpty returns true if no terms are configured.
func (s TermSet) IsEmpty() bool {
	return len(s.terms) == 0
}

// Contains reports whether term is in the set, ignoring case.
func (s TermSet) Contains(term string) bool {
	for _, t := range s.terms {
		if strings.EqualFold(t, term) {
			return true
		}
	}
	return false
}

// Fingerprint returns a deterministic digest of the set.
// Two sets with the same terms always share a fingerprint.
func (s TermSet) Fingerprint() string {
	h := sha256.New()
	for i, t := range s.terms {
		if i > 0 {
			h.Write([]byte{0})
		}
		h.Write([]byte(t))
	}
	return hex.EncodeToString(h.Sum(nil))
}
