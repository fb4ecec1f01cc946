package mcp

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	t.Run("missing ports returns error", func(t *testing.T) {
		server, err := NewServer(&Ports{})
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingTermService)
	})

	t.Run("valid ports creates server", func(t *testing.T) {
		ports, _, _, _, _ := testPorts()
		server, err := NewServer(ports)
		require.NoError(t, err)
		assert.NotNil(t, server)
	})
}

func TestServer_Handler(t *testing.T) {
	ports, _, _, _, _ := testPorts()
	server, err := NewServer(ports)
	require.NoError(t, err)

	assert.NotNil(t, server.Handler())
}

func TestServer_RunHTTP_StopsOnCancel(t *testing.T) {
	ports, _, _, _, _ := testPorts()
	server, err := NewServer(ports)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(t.Context())
	done := make(chan error, 1)
	go func() { done <- server.RunHTTP(ctx, "127.0.0.1:0") }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("RunHTTP did not return after cancel")
	}
}

func TestPorts_Validate(t *testing.T) {
	full, terms, matches, replace, _ := testPorts()

	tests := []struct {
		name  string
		ports *Ports
		want  error
	}{
		{"empty", &Ports{}, ErrMissingTermService},
		{"no matches", &Ports{Terms: terms}, ErrMissingMatchService},
		{"no replace", &Ports{Terms: terms, Matches: matches}, ErrMissingReplaceService},
		{"admin optional", &Ports{Terms: terms, Matches: matches, Replace: replace}, nil},
		{"all ports", full, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.ports.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
