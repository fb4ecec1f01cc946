package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/rebrand-tracker/internal/logger"
)

func TestRootCmd_Flags(t *testing.T) {
	for _, name := range []string{"verbose", "config-dir", "data-dir"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), name)
	}
	assert.Equal(t, "v", rootCmd.PersistentFlags().Lookup("verbose").Shorthand)
}

func TestInitServices_SkipsVersion(t *testing.T) {
	resetServices()
	t.Cleanup(resetServices)

	_, err := execute(t, "", "version")

	require.NoError(t, err)
	assert.Nil(t, termService)
}

func TestInitServices_KeepsInjectedServices(t *testing.T) {
	env := setupTestServices(t)
	before := termService

	_, err := execute(t, "", "terms", "set", "OldCo")

	require.NoError(t, err)
	assert.Same(t, before, termService)
	stored, _ := env.terms.LoadTerms(t.Context())
	assert.Equal(t, []string{"OldCo"}, stored)
}

func TestInitServices_WiresSQLiteStore(t *testing.T) {
	resetServices()
	t.Cleanup(resetServices)

	configDir := t.TempDir()
	dataDir := t.TempDir()
	run := func(args ...string) string {
		t.Helper()
		out, err := execute(t, "", append([]string{"--config-dir", configDir, "--data-dir", dataDir}, args...)...)
		require.NoError(t, err)
		return out
	}

	run("seed", writeSeedFile(t, seedFixture))
	assert.Nil(t, termService, "services are released after each command")

	run("terms", "set", "OldCo")
	out := run("matches")
	assert.Contains(t, out, "[5] Launch")
	assert.Contains(t, out, "by Sam")
	assert.Contains(t, out, "seo_title")
	assert.Contains(t, out, "blogname")
	assert.NotContains(t, out, "Notes")

	out = run("replace", "document", "5", "OldCo", "NewCo", "--yes")
	assert.Contains(t, out, "Revision saved:")

	out = run("matches", "--kind", "document")
	assert.Contains(t, out, "No matches found.")

	run("settings", "ttl", "10m")
	assert.FileExists(t, filepath.Join(configDir, "config.toml"))
	assert.FileExists(t, filepath.Join(dataDir, "content.db"))
	assert.Contains(t, run("settings"), "TTL: 10m0s")
}

func TestVerboseFlag(t *testing.T) {
	setupTestServices(t)
	buf := new(bytes.Buffer)
	logger.SetOutput(buf)
	t.Cleanup(func() {
		logger.SetVerbose(false)
		logger.SetOutput(os.Stderr)
	})

	_, err := execute(t, "", "--verbose", "replace", "setting", "20", "OldCo", "NewCo", "--yes")

	require.NoError(t, err)
	assert.True(t, logger.IsVerbose())
	assert.Contains(t, buf.String(), "replaced 1 occurrence(s)")
}
