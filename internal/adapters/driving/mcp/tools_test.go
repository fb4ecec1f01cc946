package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/rebrand-tracker/internal/core/domain"
)

func TestServer_handleGetTerms(t *testing.T) {
	ctx := context.Background()

	t.Run("returns sorted terms", func(t *testing.T) {
		ports, terms, _, _, _ := testPorts()
		terms.terms = []string{"Zeta", "Acme"}
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, out, err := server.handleGetTerms(ctx, nil, GetTermsInput{})

		require.NoError(t, err)
		assert.Equal(t, []string{"Acme", "Zeta"}, out.Terms)
	})

	t.Run("propagates storage failure", func(t *testing.T) {
		ports, terms, _, _, _ := testPorts()
		terms.err = domain.ErrStorage
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, _, err = server.handleGetTerms(ctx, nil, GetTermsInput{})

		assert.ErrorIs(t, err, domain.ErrStorage)
	})
}

func TestServer_handleSetTerms(t *testing.T) {
	ports, terms, _, _, _ := testPorts()
	server, err := NewServer(ports)
	require.NoError(t, err)

	_, out, err := server.handleSetTerms(context.Background(), nil, SetTermsInput{
		Terms: []string{" Acme ", "acme", "", "Globex"},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{" Acme ", "acme", "", "Globex"}, terms.set)
	assert.Equal(t, []string{"Acme", "Globex"}, out.Terms)
}

func TestServer_handleGetMatches(t *testing.T) {
	ctx := context.Background()

	t.Run("no filter returns full report", func(t *testing.T) {
		ports, _, matches, _, _ := testPorts()
		matches.report = &domain.MatchReport{
			Terms:    []string{"Acme"},
			Matches:  []domain.Match{sampleMatch},
			Warnings: []string{"metadata source unavailable: boom"},
		}
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, out, err := server.handleGetMatches(ctx, nil, GetMatchesInput{})

		require.NoError(t, err)
		assert.Equal(t, []string{"Acme"}, out.Terms)
		assert.Equal(t, []domain.Match{sampleMatch}, out.Matches)
		assert.Equal(t, 1, out.Total)
		assert.Equal(t, 1, out.Pages)
		assert.Len(t, out.Warnings, 1)
	})

	t.Run("filter is parsed and forwarded", func(t *testing.T) {
		ports, _, matches, _, _ := testPorts()
		matches.page = &domain.MatchPage{Matches: []domain.Match{sampleMatch}, Total: 7, Page: 2, Pages: 4}
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, out, err := server.handleGetMatches(ctx, nil, GetMatchesInput{
			Kind: "docs", Term: "acme", Page: 2, PerPage: 2,
		})

		require.NoError(t, err)
		assert.Equal(t, domain.MatchFilter{
			Kind: domain.SourceKindDocument, Term: "acme", Page: 2, PerPage: 2,
		}, matches.lastFilter)
		assert.Equal(t, 7, out.Total)
		assert.Equal(t, 4, out.Pages)
	})

	t.Run("unknown kind is rejected", func(t *testing.T) {
		ports, _, _, _, _ := testPorts()
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, _, err = server.handleGetMatches(ctx, nil, GetMatchesInput{Kind: "comments"})

		assert.ErrorIs(t, err, domain.ErrUnsupportedKind)
	})
}

func TestServer_handleReplaceMatch(t *testing.T) {
	ctx := context.Background()
	input := ReplaceMatchInput{
		Kind: "metadata", RecordID: 4, Field: "seo_title", Term: "Acme", Replacement: "Globex",
	}

	t.Run("replaced", func(t *testing.T) {
		ports, _, _, replace, _ := testPorts()
		replace.result = &domain.ReplaceResult{Occurrences: 3}
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, out, err := server.handleReplaceMatch(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, StatusReplaced, out.Status)
		assert.Equal(t, 3, out.Occurrences)
		assert.Equal(t, domain.ReplaceRequest{
			Kind: domain.SourceKindMetadata, RecordID: 4, Field: "seo_title", Term: "Acme", Replacement: "Globex",
		}, replace.lastReq)
	})

	t.Run("dry run previews", func(t *testing.T) {
		ports, _, _, replace, _ := testPorts()
		replace.preview = &domain.ReplacePreview{Before: "Acme", After: "Globex", Occurrences: 1}
		server, err := NewServer(ports)
		require.NoError(t, err)

		dry := input
		dry.DryRun = true
		_, out, err := server.handleReplaceMatch(ctx, nil, dry)

		require.NoError(t, err)
		assert.Equal(t, StatusPreview, out.Status)
		assert.Equal(t, "Globex", out.After)
	})

	t.Run("rejection is reported in output", func(t *testing.T) {
		ports, _, _, replace, _ := testPorts()
		replace.err = domain.Rejected(domain.ReasonTermNotFound, domain.ErrTermNotFound)
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, out, err := server.handleReplaceMatch(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, "rejected", out.Status)
		assert.Equal(t, "term_not_found", out.Reason)
	})

	t.Run("write failure is reported in output", func(t *testing.T) {
		ports, _, _, replace, _ := testPorts()
		replace.err = domain.Failed(domain.ReasonWriteError, domain.ErrWrite)
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, out, err := server.handleReplaceMatch(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, "failed", out.Status)
		assert.Equal(t, "write_error", out.Reason)
	})

	t.Run("bad kind is invalid context", func(t *testing.T) {
		ports, _, _, replace, _ := testPorts()
		server, err := NewServer(ports)
		require.NoError(t, err)

		bad := input
		bad.Kind = ""
		_, out, err := server.handleReplaceMatch(ctx, nil, bad)

		require.NoError(t, err)
		assert.Equal(t, "invalid_context", out.Reason)
		assert.Zero(t, replace.lastReq)
	})

	t.Run("storage error is a tool error", func(t *testing.T) {
		ports, _, _, replace, _ := testPorts()
		replace.err = errors.New("database is locked")
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, _, err = server.handleReplaceMatch(ctx, nil, input)

		assert.EqualError(t, err, "database is locked")
	})
}

func TestServer_handleClearAllState(t *testing.T) {
	ctx := context.Background()

	t.Run("clears", func(t *testing.T) {
		ports, _, _, _, admin := testPorts()
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, out, err := server.handleClearAllState(ctx, nil, ClearAllStateInput{})

		require.NoError(t, err)
		assert.True(t, out.Cleared)
		assert.Equal(t, 1, admin.calls)
	})

	t.Run("unavailable without admin port", func(t *testing.T) {
		ports, _, _, _, _ := testPorts()
		ports.Admin = nil
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, _, err = server.handleClearAllState(ctx, nil, ClearAllStateInput{})

		assert.Error(t, err)
	})
}
