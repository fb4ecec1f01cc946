package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var termsCmd = &cobra.Command{
	Use:   "terms",
	Short: "Manage tracked terms",
	Long: `View and replace the list of terms to scan for.

Terms are matched as whole words, ignoring case. Duplicates that differ
only in case are collapsed and blank entries are dropped.`,
	RunE: runTermsGet,
}

var termsGetCmd = &cobra.Command{
	Use:   "get",
	Short: "List tracked terms",
	Args:  cobra.NoArgs,
	RunE:  runTermsGet,
}

var termsSetCmd = &cobra.Command{
	Use:   "set <term>...",
	Short: "Replace the tracked terms",
	Long: `Replace the tracked terms with the given list.

Examples:
  rebrand terms set "Old Name" OldCo
  rebrand terms set          # clears the list`,
	RunE: runTermsSet,
}

var termsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all terms and cached matches",
	Args:  cobra.NoArgs,
	RunE:  runClear,
}

func init() {
	termsCmd.AddCommand(termsGetCmd)
	termsCmd.AddCommand(termsSetCmd)
	termsCmd.AddCommand(termsClearCmd)
	rootCmd.AddCommand(termsCmd)
}

func runTermsGet(cmd *cobra.Command, _ []string) error {
	if termService == nil {
		return fmt.Errorf("term %w", errNotConfigured)
	}

	set, err := termService.GetTerms(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to get terms: %w", err)
	}

	if set.IsEmpty() {
		cmd.Println("No terms configured.")
		return nil
	}
	for _, t := range set.Terms() {
		cmd.Println(t)
	}
	return nil
}

func runTermsSet(cmd *cobra.Command, args []string) error {
	if termService == nil {
		return fmt.Errorf("term %w", errNotConfigured)
	}

	set, err := termService.SetTerms(cmd.Context(), args)
	if err != nil {
		return fmt.Errorf("failed to set terms: %w", err)
	}

	if dropped := len(args) - set.Len(); dropped > 0 {
		cmd.Printf("Saved %d term(s); %d blank or duplicate entries dropped.\n", set.Len(), dropped)
	} else {
		cmd.Printf("Saved %d term(s).\n", set.Len())
	}
	return nil
}
