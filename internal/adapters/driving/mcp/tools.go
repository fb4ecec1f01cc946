package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/rebrand-tracker/internal/core/domain"
)

// Replace statuses reported by the replace_match tool.
const (
	StatusReplaced = "replaced"
	StatusPreview  = "preview"
)

// GetTermsInput is the input schema for the get_terms tool.
type GetTermsInput struct{}

// TermsOutput lists the configured terms.
type TermsOutput struct {
	Terms []string `json:"terms"`
}

// SetTermsInput is the input schema for the set_terms tool.
type SetTermsInput struct {
	Terms []string `json:"terms" jsonschema:"the full list of terms to track; replaces the current list"`
}

// GetMatchesInput is the input schema for the get_matches tool.
// With no fields set the full report is returned.
type GetMatchesInput struct {
	Kind    string `json:"kind,omitempty" jsonschema:"restrict to one source: document, metadata or setting"`
	Term    string `json:"term,omitempty" jsonschema:"restrict to one term"`
	Page    int    `json:"page,omitempty" jsonschema:"1-based page number"`
	PerPage int    `json:"per_page,omitempty" jsonschema:"page size (default 20)"`
}

// GetMatchesOutput is the output schema for the get_matches tool.
type GetMatchesOutput struct {
	Terms    []string       `json:"terms,omitempty"`
	Matches  []domain.Match `json:"matches"`
	Warnings []string       `json:"warnings"`
	Total    int            `json:"total"`
	Page     int            `json:"page"`
	Pages    int            `json:"pages"`
}

// ReplaceMatchInput is the input schema for the replace_match tool.
type ReplaceMatchInput struct {
	Kind        string `json:"kind" jsonschema:"source of the record: document, metadata or setting"`
	RecordID    int64  `json:"record_id" jsonschema:"record identifier from get_matches"`
	Field       string `json:"field,omitempty" jsonschema:"field name from get_matches"`
	Term        string `json:"term" jsonschema:"the term to replace"`
	Replacement string `json:"replacement" jsonschema:"the replacement text"`
	DryRun      bool   `json:"dry_run,omitempty" jsonschema:"preview the change without writing"`
}

// ReplaceMatchOutput is the output schema for the replace_match tool.
// Status is replaced, preview, rejected or failed; Reason is set for the last two.
type ReplaceMatchOutput struct {
	Status      string `json:"status"`
	Reason      string `json:"reason,omitempty"`
	Message     string `json:"message,omitempty"`
	Occurrences int    `json:"occurrences,omitempty"`
	RevisionID  string `json:"revision_id,omitempty"`
	Before      string `json:"before,omitempty"`
	After       string `json:"after,omitempty"`
}

// ClearAllStateInput is the input schema for the clear_all_state tool.
type ClearAllStateInput struct{}

// ClearAllStateOutput is the output schema for the clear_all_state tool.
type ClearAllStateOutput struct {
	Cleared bool `json:"cleared"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_terms",
		Description: "List the terms being tracked",
	}, s.handleGetTerms)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "set_terms",
		Description: "Replace the list of tracked terms",
	}, s.handleSetTerms)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_matches",
		Description: "List records containing a tracked term as a whole word",
	}, s.handleGetMatches)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "replace_match",
		Description: "Replace every whole-word occurrence of a term in one record",
	}, s.handleReplaceMatch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "clear_all_state",
		Description: "Remove all tracked terms and cached matches",
	}, s.handleClearAllState)
}

func (s *Server) handleGetTerms(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ GetTermsInput,
) (*mcp.CallToolResult, TermsOutput, error) {
	set, err := s.ports.Terms.GetTerms(ctx)
	if err != nil {
		return nil, TermsOutput{}, err
	}
	return nil, TermsOutput{Terms: set.Terms()}, nil
}

func (s *Server) handleSetTerms(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SetTermsInput,
) (*mcp.CallToolResult, TermsOutput, error) {
	set, err := s.ports.Terms.SetTerms(ctx, input.Terms)
	if err != nil {
		return nil, TermsOutput{}, err
	}
	return nil, TermsOutput{Terms: set.Terms()}, nil
}

func (s *Server) handleGetMatches(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetMatchesInput,
) (*mcp.CallToolResult, GetMatchesOutput, error) {
	if input == (GetMatchesInput{}) {
		report, err := s.ports.Matches.GetMatches(ctx)
		if err != nil {
			return nil, GetMatchesOutput{}, err
		}
		pages := 0
		if len(report.Matches) > 0 {
			pages = 1
		}
		return nil, GetMatchesOutput{
			Terms:    report.Terms,
			Matches:  report.Matches,
			Warnings: report.Warnings,
			Total:    len(report.Matches),
			Page:     1,
			Pages:    pages,
		}, nil
	}

	filter := domain.MatchFilter{
		Term:    input.Term,
		Page:    input.Page,
		PerPage: input.PerPage,
	}
	if input.Kind != "" {
		kind, err := domain.ParseSourceKind(input.Kind)
		if err != nil {
			return nil, GetMatchesOutput{}, err
		}
		filter.Kind = kind
	}

	page, err := s.ports.Matches.ListMatches(ctx, filter)
	if err != nil {
		return nil, GetMatchesOutput{}, err
	}
	return nil, GetMatchesOutput{
		Matches:  page.Matches,
		Warnings: page.Warnings,
		Total:    page.Total,
		Page:     page.Page,
		Pages:    page.Pages,
	}, nil
}

// handleReplaceMatch reports rejections and write failures in the output
// rather than as tool errors so callers can act on the reason.
func (s *Server) handleReplaceMatch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ReplaceMatchInput,
) (*mcp.CallToolResult, ReplaceMatchOutput, error) {
	kind, err := domain.ParseSourceKind(input.Kind)
	if err != nil {
		err = fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
		return nil, rejectionOutput(domain.Rejected(domain.ReasonInvalidContext, err)), nil
	}
	req := domain.ReplaceRequest{
		Kind:        kind,
		RecordID:    input.RecordID,
		Field:       input.Field,
		Term:        input.Term,
		Replacement: input.Replacement,
	}

	if input.DryRun {
		preview, err := s.ports.Replace.Preview(ctx, req)
		if out, ok := asRejection(err); ok {
			return nil, out, nil
		}
		if err != nil {
			return nil, ReplaceMatchOutput{}, err
		}
		return nil, ReplaceMatchOutput{
			Status:      StatusPreview,
			Occurrences: preview.Occurrences,
			Before:      preview.Before,
			After:       preview.After,
		}, nil
	}

	result, err := s.ports.Replace.ReplaceMatch(ctx, req)
	if out, ok := asRejection(err); ok {
		return nil, out, nil
	}
	if err != nil {
		return nil, ReplaceMatchOutput{}, err
	}
	return nil, ReplaceMatchOutput{
		Status:      StatusReplaced,
		Occurrences: result.Occurrences,
		RevisionID:  result.RevisionID,
	}, nil
}

func (s *Server) handleClearAllState(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ ClearAllStateInput,
) (*mcp.CallToolResult, ClearAllStateOutput, error) {
	if s.ports.Admin == nil {
		return nil, ClearAllStateOutput{}, errors.New("clear_all_state is not available")
	}
	if err := s.ports.Admin.ClearAllState(ctx); err != nil {
		return nil, ClearAllStateOutput{}, err
	}
	return nil, ClearAllStateOutput{Cleared: true}, nil
}

func asRejection(err error) (ReplaceMatchOutput, bool) {
	re, ok := domain.AsReplaceError(err)
	if !ok {
		return ReplaceMatchOutput{}, false
	}
	return rejectionOutput(re), true
}

func rejectionOutput(re *domain.ReplaceError) ReplaceMatchOutput {
	return ReplaceMatchOutput{
		Status:  string(re.Outcome),
		Reason:  string(re.Reason),
		Message: re.Err.Error(),
	}
}
