package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/rebrand-tracker/internal/core/domain"
)

// Helper to create a ReadResourceRequest with the given URI.
func makeReadResourceRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{
			URI: uri,
		},
	}
}

func TestServer_handleMatchesResource(t *testing.T) {
	ctx := context.Background()

	t.Run("returns report as JSON", func(t *testing.T) {
		ports, _, matches, _, _ := testPorts()
		matches.report = &domain.MatchReport{
			Terms:    []string{"Acme"},
			Matches:  []domain.Match{sampleMatch},
			Warnings: []string{},
		}
		server, err := NewServer(ports)
		require.NoError(t, err)

		result, err := server.handleMatchesResource(ctx, makeReadResourceRequest(matchesURI))

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "application/json", result.Contents[0].MIMEType)
		assert.Equal(t, "rebrand://matches", result.Contents[0].URI)

		var decoded domain.MatchReport
		require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &decoded))
		assert.Equal(t, []string{"Acme"}, decoded.Terms)
		require.Len(t, decoded.Matches, 1)
		assert.Equal(t, "https://example.com/documents/12?highlight=Acme", decoded.Matches[0].ViewLocator)
	})

	t.Run("propagates error", func(t *testing.T) {
		ports, _, matches, _, _ := testPorts()
		matches.err = errors.New("scan failed")
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, err = server.handleMatchesResource(ctx, makeReadResourceRequest(matchesURI))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "scan failed")
	})
}
