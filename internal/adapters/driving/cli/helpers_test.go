package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/custodia-labs/rebrand-tracker/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/rebrand-tracker/internal/connectors/content"
	"github.com/custodia-labs/rebrand-tracker/internal/core/domain"
	"github.com/custodia-labs/rebrand-tracker/internal/core/services"
)

// testEnv exposes the in-memory stores behind the wired services.
type testEnv struct {
	content *memory.ContentStore
	terms   *memory.TermStore
	config  *memory.ConfigStore
	seeder  *mockSeeder
}

// setupTestServices wires the package services over memory stores seeded
// with a small fixture and clears them on cleanup.
func setupTestServices(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		content: memory.NewContentStore(),
		terms:   memory.NewTermStore(),
		config:  memory.NewConfigStore(map[string]any{"replace.writes_per_second": 1000.0}),
		seeder:  &mockSeeder{},
	}
	env.content.AddAuthor(1, "Dana")
	env.content.AddDocument(domain.Document{ID: 1, Title: "About us", Body: "OldCo was founded by oldco fans.", AuthorID: 1})
	env.content.AddDocument(domain.Document{ID: 2, Title: "Draft", Body: "OldCo draft", Status: domain.DocumentDraft})
	env.content.AddMetadata(domain.MetadataRecord{ID: 10, OwnerID: 1, Key: "seo_title", Value: "About OldCo"})
	env.content.AddSetting(domain.Setting{ID: 20, Name: "blogname", Value: "OldCo Blog"})
	env.content.AddSetting(domain.Setting{ID: 21, Name: "tagline", Value: "OldCoin news"})

	adapters := content.NewAdapters(env.content, content.NewLocators("https://example.test/admin", "https://example.test"))
	cache := services.NewMatchCache(time.Hour)
	terms := services.NewTermService(env.terms, cache)

	prevTTY := stdinIsTerminal

	termService = terms
	matchService = services.NewMatchService(terms, services.NewScanner(adapters), cache)
	replaceService = services.NewReplaceEngine(adapters, cache)
	adminService = services.NewAdminService(terms, cache)
	settingsService = services.NewSettingsService(env.config)
	contentSeeder = env.seeder
	matchCache = cache
	configStore = nil
	closeStore = nil
	stdinIsTerminal = func() bool { return false }

	t.Cleanup(func() {
		resetServices()
		stdinIsTerminal = prevTTY
	})
	return env
}

// execute runs the root command with args and input, returning combined output.
func execute(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetIn(strings.NewReader(input))
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		resetFlags(rootCmd)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}

// resetFlags restores every flag to its default so tests do not leak state.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// mockSeeder records inserted fixtures.
type mockSeeder struct {
	authors   map[int64]string
	documents []domain.Document
	metadata  []domain.MetadataRecord
	settings  []domain.Setting
	err       error
}

func (m *mockSeeder) InsertAuthor(_ context.Context, id int64, name string) error {
	if m.err != nil {
		return m.err
	}
	if m.authors == nil {
		m.authors = make(map[int64]string)
	}
	m.authors[id] = name
	return nil
}

func (m *mockSeeder) InsertDocument(_ context.Context, doc domain.Document) (domain.Document, error) {
	if m.err != nil {
		return doc, m.err
	}
	m.documents = append(m.documents, doc)
	return doc, nil
}

func (m *mockSeeder) InsertMetadata(_ context.Context, rec domain.MetadataRecord) (domain.MetadataRecord, error) {
	if m.err != nil {
		return rec, m.err
	}
	m.metadata = append(m.metadata, rec)
	return rec, nil
}

func (m *mockSeeder) InsertSetting(_ context.Context, st domain.Setting) (domain.Setting, error) {
	if m.err != nil {
		return st, m.err
	}
	m.settings = append(m.settings, st)
	return st, nil
}
