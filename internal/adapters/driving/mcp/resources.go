package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for rebrand resources.
	uriScheme = "rebrand://"

	// matchesURI is the full match report.
	matchesURI = uriScheme + "matches"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         matchesURI,
		Name:        "matches",
		Description: "Every record containing a tracked term, with edit and view links",
		MIMEType:    "application/json",
	}, s.handleMatchesResource)
}

// handleMatchesResource returns the full match report as JSON.
func (s *Server) handleMatchesResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	report, err := s.ports.Matches.GetMatches(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting matches: %w", err)
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling matches: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
