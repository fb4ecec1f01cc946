package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/rebrand-tracker/internal/core/domain"
)

var matchesCmd = &cobra.Command{
	Use:   "matches",
	Short: "List term matches",
	Long: `List every record that contains a tracked term.

Results are grouped by source (documents, metadata, settings) and may be
served from the match cache. Sources that fail to load are reported as
warnings; the remaining sources are still listed.

Examples:
  rebrand matches
  rebrand matches --kind metadata --term OldCo
  rebrand matches --json
  rebrand matches --csv > matches.csv`,
	Args: cobra.NoArgs,
	RunE: runMatches,
}

func init() {
	matchesCmd.Flags().StringP("kind", "k", "", "only show one source kind (document, metadata, setting)")
	matchesCmd.Flags().StringP("term", "t", "", "only show one term")
	matchesCmd.Flags().IntP("page", "p", 1, "page number")
	matchesCmd.Flags().IntP("per-page", "n", domain.DefaultPerPage, "matches per page")
	matchesCmd.Flags().Bool("json", false, "print the page as JSON")
	matchesCmd.Flags().Bool("csv", false, "print all filtered matches as CSV")
	matchesCmd.MarkFlagsMutuallyExclusive("json", "csv")
	rootCmd.AddCommand(matchesCmd)
}

func matchFilterFromFlags(cmd *cobra.Command) (domain.MatchFilter, error) {
	var f domain.MatchFilter
	kind, _ := cmd.Flags().GetString("kind")
	if kind != "" {
		k, err := domain.ParseSourceKind(kind)
		if err != nil {
			return f, err
		}
		f.Kind = k
	}
	f.Term, _ = cmd.Flags().GetString("term")
	f.Page, _ = cmd.Flags().GetInt("page")
	f.PerPage, _ = cmd.Flags().GetInt("per-page")
	return f, nil
}

func runMatches(cmd *cobra.Command, _ []string) error {
	if matchService == nil {
		return fmt.Errorf("match %w", errNotConfigured)
	}

	filter, err := matchFilterFromFlags(cmd)
	if err != nil {
		return err
	}

	asCSV, _ := cmd.Flags().GetBool("csv")
	if asCSV {
		return writeMatchesCSV(cmd, filter)
	}

	page, err := matchService.ListMatches(cmd.Context(), filter)
	if err != nil {
		return fmt.Errorf("failed to list matches: %w", err)
	}

	asJSON, _ := cmd.Flags().GetBool("json")
	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(page)
	}

	for _, w := range page.Warnings {
		cmd.PrintErrf("warning: %s\n", w)
	}

	if page.Total == 0 {
		cmd.Println("No matches found.")
		return nil
	}

	var current domain.SourceKind
	for _, m := range page.Matches {
		if m.Kind != current {
			current = m.Kind
			cmd.Printf("\n%s\n", m.Kind.Description())
		}
		cmd.Printf("  [%d] %s  %q ×%d", m.RecordID, m.Label, m.Term, m.Occurrences)
		if m.AuthorName != "" {
			cmd.Printf("  by %s", m.AuthorName)
		}
		cmd.Println()
		cmd.Printf("      field: %s\n", m.Field)
		cmd.Printf("      edit:  %s\n", m.EditLocator)
		cmd.Printf("      view:  %s\n", m.ViewLocator)
	}
	cmd.Printf("\nPage %d of %d (%d matches)\n", page.Page, max(page.Pages, 1), page.Total)
	return nil
}

// writeMatchesCSV writes every match passing the filter, ignoring paging.
func writeMatchesCSV(cmd *cobra.Command, filter domain.MatchFilter) error {
	report, err := matchService.GetMatches(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list matches: %w", err)
	}
	for _, w := range report.Warnings {
		cmd.PrintErrf("warning: %s\n", w)
	}

	w := csv.NewWriter(cmd.OutOrStdout())
	if err := w.Write([]string{
		"kind", "record_id", "field", "term", "occurrences", "label", "author", "edit_locator", "view_locator",
	}); err != nil {
		return err
	}
	for _, m := range report.Matches {
		if !filter.Matches(m) {
			continue
		}
		if err := w.Write([]string{
			m.Kind.String(),
			strconv.FormatInt(m.RecordID, 10),
			m.Field,
			m.Term,
			strconv.Itoa(m.Occurrences),
			m.Label,
			m.AuthorName,
			m.EditLocator,
			m.ViewLocator,
		}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
