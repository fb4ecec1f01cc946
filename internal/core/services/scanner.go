package services

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/custodia-labs/rebrand-tracker/internal/core/domain"
	"github.com/custodia-labs/rebrand-tracker/internal/core/ports/driven"
	"github.com/custodia-labs/rebrand-tracker/internal/logger"
)

// Scanner finds whole-word occurrences of the active terms across all sources.
// It has no side effects: scanning twice with no writes in between yields
// equal match sets.
type Scanner struct {
	adapters []driven.SourceAdapter
	parallel bool
	now      func() time.Time
}

// ScannerOption configures a Scanner.
type ScannerOption func(*Scanner)

// WithParallelScan enumerates sources concurrently.
func WithParallelScan(parallel bool) ScannerOption {
	return func(s *Scanner) {
		s.parallel = parallel
	}
}

// WithScanClock injects the time source used for ScannedAt.
func WithScanClock(now func() time.Time) ScannerOption {
	return func(s *Scanner) {
		s.now = now
	}
}

// NewScanner creates a scanner over the given adapters.
func NewScanner(adapters []driven.SourceAdapter, opts ...ScannerOption) *Scanner {
	s := &Scanner{
		adapters: adapters,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// sourceScan is the outcome of scanning one source.
type sourceScan struct {
	matches domain.MatchSet
	err     error
}

// Scan runs one full pass for terms.
// A source that fails to enumerate contributes no matches and a warning;
// the other sources are unaffected.
func (s *Scanner) Scan(ctx context.Context, terms domain.TermSet) domain.ScanResult {
	result := domain.ScanResult{
		Terms:   terms,
		Matches: domain.MatchSet{},
	}
	if terms.IsEmpty() || len(s.adapters) == 0 {
		result.ScannedAt = s.now()
		return result
	}

	logger.Section("Match Scan")
	logger.Debug("terms: %v", terms.Terms())

	matchers := make([]*wordMatcher, 0, terms.Len())
	for _, t := range terms.Terms() {
		matchers = append(matchers, newWordMatcher(t))
	}

	scans := make([]sourceScan, len(s.adapters))
	if s.parallel {
		// No shared context: one failing source must not cancel the others.
		var g errgroup.Group
		for i, adapter := range s.adapters {
			g.Go(func() error {
				scans[i] = scanSource(ctx, adapter, matchers)
				return nil
			})
		}
		_ = g.Wait()
	} else {
		for i, adapter := range s.adapters {
			scans[i] = scanSource(ctx, adapter, matchers)
		}
	}

	for i, scan := range scans {
		kind := s.adapters[i].Kind()
		if scan.err != nil {
			logger.Warn("%s source failed: %v", kind, scan.err)
			result.Warnings = append(result.Warnings, domain.SourceWarning{
				Kind: kind,
				Err:  fmt.Errorf("%w: %w", domain.ErrSourceUnavailable, scan.err),
			})
			continue
		}
		for _, m := range scan.matches {
			result.Matches.Put(m)
		}
		logger.Debug("%s: %d matches", kind, len(scan.matches))
	}

	result.ScannedAt = s.now()
	logger.Info("scan complete: %d matches, %d warnings", len(result.Matches), len(result.Warnings))
	return result
}

// scanSource enumerates one source once and tests every term against every
// text field. Partial results are discarded on enumeration failure.
func scanSource(ctx context.Context, adapter driven.SourceAdapter, matchers []*wordMatcher) sourceScan {
	kind := adapter.Kind()
	matches := domain.MatchSet{}

	for rec, err := range adapter.Enumerate(ctx) {
		if err != nil {
			return sourceScan{err: err}
		}
		for _, field := range sortedFields(rec.Fields) {
			text := rec.Fields[field]
			if text == "" {
				continue
			}
			for _, m := range matchers {
				n := m.Count(text)
				if n == 0 {
					continue
				}
				matches.Put(domain.Match{
					Kind:        kind,
					RecordID:    rec.ID,
					Field:       field,
					Term:        m.term,
					Label:       rec.Label,
					Occurrences: n,
					AuthorName:  rec.AuthorName,
					EditLocator: rec.EditLocator,
					ViewLocator: withHighlight(rec.ViewLocator, m.term),
				})
			}
		}
	}

	return sourceScan{matches: matches}
}

func sortedFields(fields map[string]string) []string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// withHighlight adds a highlight query parameter so the viewer can mark the term.
func withHighlight(locator, term string) string {
	if locator == "" {
		return ""
	}
	u, err := url.Parse(locator)
	if err != nil {
		return locator
	}
	q := u.Query()
	q.Set("highlight", term)
	u.RawQuery = q.Encode()
	return u.String()
}
