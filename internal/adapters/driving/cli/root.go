// Package cli provides the cobra command tree for the rebrand binary.
// Commands talk to the core through driving ports held in package-level
// variables, wired once per invocation in the root PersistentPreRunE.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/rebrand-tracker/internal/adapters/driven/config/file"
	"github.com/custodia-labs/rebrand-tracker/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/rebrand-tracker/internal/connectors/content"
	"github.com/custodia-labs/rebrand-tracker/internal/core/domain"
	"github.com/custodia-labs/rebrand-tracker/internal/core/ports/driving"
	"github.com/custodia-labs/rebrand-tracker/internal/core/services"
	"github.com/custodia-labs/rebrand-tracker/internal/logger"
)

// version is set at build time with -ldflags "-X ...cli.version=v1.2.3".
var version = "dev"

// ContentSeeder loads fixture content into the content store.
type ContentSeeder interface {
	InsertAuthor(ctx context.Context, id int64, name string) error
	InsertDocument(ctx context.Context, doc domain.Document) (domain.Document, error)
	InsertMetadata(ctx context.Context, rec domain.MetadataRecord) (domain.MetadataRecord, error)
	InsertSetting(ctx context.Context, st domain.Setting) (domain.Setting, error)
}

var (
	termService     driving.TermService
	matchService    driving.MatchService
	replaceService  driving.ReplaceService
	adminService    driving.AdminService
	settingsService driving.SettingsService
	contentSeeder   ContentSeeder

	// matchCache is shared by the services so settings changes can retune it.
	matchCache *services.MatchCache

	// configStore backs settingsService; mcp serve watches its file.
	configStore *file.ConfigStore

	// closeStore releases the content store after the command finishes.
	closeStore func() error
)

var (
	verboseFlag   bool
	configDirFlag string
	dataDirFlag   string
)

var errNotConfigured = errors.New("service not configured")

var rootCmd = &cobra.Command{
	Use:   "rebrand",
	Short: "Track and replace retired terms across site content",
	Long: `rebrand scans documents, metadata and settings for a configured list of
terms, reports every whole-word, case-insensitive match with links to view
and edit the record, and replaces terms one record at a time.

Run 'rebrand terms set "Old Name" "OldCo"' to configure terms, then
'rebrand matches' to list them.`,
	SilenceUsage:       true,
	PersistentPreRunE:  initServices,
	PersistentPostRunE: closeServices,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "print debug logs to stderr")
	rootCmd.PersistentFlags().StringVar(&configDirFlag, "config-dir", "", "config directory (default ~/.rebrand)")
	rootCmd.PersistentFlags().StringVar(&dataDirFlag, "data-dir", "", "data directory (default from config or ~/.rebrand/data)")
}

// Execute runs the root command.
func Execute() error {
	// PersistentPostRunE is skipped when a command fails.
	defer func() { _ = closeServices(nil, nil) }()
	return rootCmd.Execute()
}

// initServices wires the core services unless they are already set.
func initServices(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verboseFlag)

	if cmd.Name() == versionCmd.Name() || termService != nil {
		return nil
	}

	store, err := file.NewConfigStore(configDirFlag)
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}
	settingsSvc := services.NewSettingsService(store)
	settings, err := settingsSvc.Get()
	if err != nil {
		return fmt.Errorf("reading settings: %w", err)
	}

	dataDir := settings.Storage.DataDir
	if dataDirFlag != "" {
		dataDir = dataDirFlag
	}
	db, err := sqlite.NewStore(dataDir)
	if err != nil {
		return fmt.Errorf("opening content store: %w", err)
	}
	logger.Debug("content store: %s", db.Path())

	contentRepo := db.ContentRepository()
	adapters := content.NewAdapters(contentRepo, content.NewLocators(
		settings.Locators.AdminURL, settings.Locators.SiteURL,
	))

	cache := services.NewMatchCache(settings.Cache.TTL)
	terms := services.NewTermService(db.TermRepository(), cache)
	scanner := services.NewScanner(adapters, services.WithParallelScan(settings.Scan.Parallel))

	configStore = store
	settingsService = settingsSvc
	matchCache = cache
	termService = terms
	matchService = services.NewMatchService(terms, scanner, cache)
	replaceService = services.NewReplaceEngine(adapters, cache)
	adminService = services.NewAdminService(terms, cache)
	contentSeeder = contentRepo
	closeStore = db.Close
	return nil
}

func closeServices(_ *cobra.Command, _ []string) error {
	if closeStore == nil {
		return nil
	}
	err := closeStore()
	resetServices()
	return err
}

// resetServices drops the wired services so the next command wires afresh.
func resetServices() {
	termService = nil
	matchService = nil
	replaceService = nil
	adminService = nil
	settingsService = nil
	contentSeeder = nil
	matchCache = nil
	configStore = nil
	closeStore = nil
}
