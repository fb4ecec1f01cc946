package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all terms and cached matches",
	Long: `Remove the stored term list and drop any cached match results.

Content records are not touched.`,
	Args: cobra.NoArgs,
	RunE: runClear,
}

func init() {
	rootCmd.AddCommand(clearCmd)
}

func runClear(cmd *cobra.Command, _ []string) error {
	if adminService == nil {
		return fmt.Errorf("admin %w", errNotConfigured)
	}
	if err := adminService.ClearAllState(cmd.Context()); err != nil {
		return fmt.Errorf("failed to clear state: %w", err)
	}
	cmd.Println("Cleared terms and cached matches.")
	return nil
}
