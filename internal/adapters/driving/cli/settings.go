package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change settings stored in ~/.rebrand/config.toml.

The file can also be edited by hand; 'rebrand mcp serve' picks up changes
while it runs.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsShow,
}

var settingsTTLCmd = &cobra.Command{
	Use:   "ttl <duration>",
	Short: "Set how long match results are cached",
	Long: `Set the match cache lifetime, e.g. 30m or 2h. Zero disables caching.

Changing terms or replacing a match always drops the cache regardless of
this setting.`,
	Args: cobra.ExactArgs(1),
	RunE: runSettingsTTL,
}

var settingsLocatorsCmd = &cobra.Command{
	Use:   "locators <admin-url> <site-url>",
	Short: "Set the base URLs for edit and view links",
	Args:  cobra.ExactArgs(2),
	RunE:  runSettingsLocators,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsTTLCmd)
	settingsCmd.AddCommand(settingsLocatorsCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return fmt.Errorf("settings %w", errNotConfigured)
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Cache]")
	if settings.Cache.TTL == 0 {
		cmd.Println("  TTL: disabled")
	} else {
		cmd.Printf("  TTL: %s\n", settings.Cache.TTL)
	}
	cmd.Println()

	cmd.Println("[Scan]")
	cmd.Printf("  Parallel: %s\n", yesNo(settings.Scan.Parallel))
	cmd.Println()

	cmd.Println("[Locators]")
	cmd.Printf("  Admin URL: %s\n", settings.Locators.AdminURL)
	cmd.Printf("  Site URL: %s\n", settings.Locators.SiteURL)
	cmd.Println()

	cmd.Println("[Replace]")
	cmd.Printf("  Writes per second: %g\n", settings.Replace.WritesPerSecond)
	cmd.Println()

	cmd.Println("[Storage]")
	dataDir := settings.Storage.DataDir
	if dataDir == "" {
		dataDir = "~/.rebrand/data (default)"
	}
	cmd.Printf("  Data dir: %s\n", dataDir)
	cmd.Println()

	if err := settingsService.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
	} else {
		cmd.Println("Configuration is valid.")
	}
	return nil
}

func runSettingsTTL(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return fmt.Errorf("settings %w", errNotConfigured)
	}

	ttl, err := time.ParseDuration(args[0])
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", args[0], err)
	}
	if err := settingsService.SetCacheTTL(ttl); err != nil {
		return fmt.Errorf("failed to set cache ttl: %w", err)
	}
	if matchCache != nil {
		matchCache.SetTTL(ttl)
	}
	cmd.Printf("Cache TTL set to %s.\n", ttl)
	return nil
}

func runSettingsLocators(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return fmt.Errorf("settings %w", errNotConfigured)
	}
	if err := settingsService.SetLocators(args[0], args[1]); err != nil {
		return fmt.Errorf("failed to set locators: %w", err)
	}
	cmd.Println("Locators updated.")
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
