// Package mcp provides an MCP (Model Context Protocol) server adapter for the
// rebrand tracker. It lets AI assistants list term matches and apply replacements.
package mcp

import "errors"

// Port validation errors.
var (
	ErrMissingTermService    = errors.New("mcp: term service is required")
	ErrMissingMatchService   = errors.New("mcp: match service is required")
	ErrMissingReplaceService = errors.New("mcp: replace service is required")
)
