package cli

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/rebrand-tracker/internal/core/domain"
	"github.com/custodia-labs/rebrand-tracker/internal/logger"
)

var replaceAllCmd = &cobra.Command{
	Use:   "replace-all <term> <replacement>",
	Short: "Replace a term in every matching record",
	Long: `Replace a term in every record that currently matches it.

Each record is replaced independently, in match order, at most
replace.writes_per_second writes per second. A failure on one record does
not stop the others and nothing is rolled back.

Examples:
  rebrand replace-all OldCo NewCo --yes
  rebrand replace-all "Old Name" "New Name" --kind document`,
	Args: cobra.ExactArgs(2),
	RunE: runReplaceAll,
}

func init() {
	replaceAllCmd.Flags().StringP("kind", "k", "", "only replace in one source kind")
	replaceAllCmd.Flags().BoolP("yes", "y", false, "apply without asking for confirmation")
	rootCmd.AddCommand(replaceAllCmd)
}

func writeLimiter() *rate.Limiter {
	perSecond := domain.DefaultAppSettings().Replace.WritesPerSecond
	if settingsService != nil {
		if s, err := settingsService.Get(); err == nil {
			perSecond = s.Replace.WritesPerSecond
		}
	}
	if perSecond <= 0 || math.IsInf(perSecond, 1) {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Limit(perSecond), 1)
}

func runReplaceAll(cmd *cobra.Command, args []string) error {
	if matchService == nil || replaceService == nil {
		return fmt.Errorf("replace %w", errNotConfigured)
	}

	filter := domain.MatchFilter{Term: args[0]}
	if kind, _ := cmd.Flags().GetString("kind"); kind != "" {
		k, err := domain.ParseSourceKind(kind)
		if err != nil {
			return err
		}
		filter.Kind = k
	}
	replacement := args[1]
	yes, _ := cmd.Flags().GetBool("yes")

	report, err := matchService.GetMatches(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list matches: %w", err)
	}
	for _, w := range report.Warnings {
		cmd.PrintErrf("warning: %s\n", w)
	}

	var targets []domain.Match
	for _, m := range report.Matches {
		if filter.Matches(m) {
			targets = append(targets, m)
		}
	}
	if len(targets) == 0 {
		cmd.Printf("No matches for %q.\n", args[0])
		return nil
	}

	if !yes {
		if !stdinIsTerminal() {
			return errConfirmationRequired
		}
		cmd.Printf("%d record(s) contain %q.\n", len(targets), args[0])
		if !confirm(cmd, fmt.Sprintf("Replace with %q in all of them?", replacement)) {
			cmd.Println("Aborted.")
			return nil
		}
	}

	limiter := writeLimiter()
	var replaced, occurrences, failed int
	for _, m := range targets {
		if err := limiter.Wait(cmd.Context()); err != nil {
			return err
		}
		res, err := replaceService.ReplaceMatch(cmd.Context(), domain.ReplaceRequest{
			Kind:        m.Kind,
			RecordID:    m.RecordID,
			Field:       m.Field,
			Term:        m.Term,
			Replacement: replacement,
		})
		if err != nil {
			failed++
			logger.Warn("replace %s failed: %v", m.Ref(), err)
			cmd.PrintErrf("%s: %v\n", m.Ref(), describeReplaceError(err))
			continue
		}
		replaced++
		occurrences += res.Occurrences
		cmd.Printf("%s: %d occurrence(s)\n", res.Ref, res.Occurrences)
	}

	cmd.Printf("Replaced %d occurrence(s) in %d record(s).\n", occurrences, replaced)
	if failed > 0 {
		return fmt.Errorf("%d of %d replaces failed", failed, len(targets))
	}
	return nil
}
