package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/rebrand-tracker/internal/core/domain"
)

// stdinIsTerminal reports whether confirmations can be prompted for.
var stdinIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

var errConfirmationRequired = errors.New("stdin is not a terminal; pass --yes to apply without confirmation")

var replaceCmd = &cobra.Command{
	Use:   "replace <kind> <record-id> <term> <replacement>",
	Short: "Replace a term in one record",
	Long: `Replace every whole-word occurrence of a term in a single record.

The record must currently contain the term; stale matches are rejected.
Documents get a revision snapshot before they are rewritten.

Examples:
  rebrand replace document 42 OldCo NewCo
  rebrand replace metadata 7 "Old Name" "New Name" --field seo_title
  rebrand replace setting 3 OldCo NewCo --dry-run`,
	Args: cobra.ExactArgs(4),
	RunE: runReplace,
}

func init() {
	replaceCmd.Flags().String("field", "", "text field to rewrite (defaults to the record's only text field)")
	replaceCmd.Flags().BoolP("yes", "y", false, "apply without asking for confirmation")
	replaceCmd.Flags().Bool("dry-run", false, "show the change without writing it")
	rootCmd.AddCommand(replaceCmd)
}

func parseReplaceArgs(args []string) (domain.ReplaceRequest, error) {
	kind, err := domain.ParseSourceKind(args[0])
	if err != nil {
		return domain.ReplaceRequest{}, err
	}
	id, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil || id <= 0 {
		return domain.ReplaceRequest{}, fmt.Errorf("%w: record id must be a positive integer, got %q",
			domain.ErrInvalidInput, args[1])
	}
	return domain.ReplaceRequest{
		Kind:        kind,
		RecordID:    id,
		Term:        args[2],
		Replacement: args[3],
	}, nil
}

func runReplace(cmd *cobra.Command, args []string) error {
	if replaceService == nil {
		return fmt.Errorf("replace %w", errNotConfigured)
	}

	req, err := parseReplaceArgs(args)
	if err != nil {
		return err
	}
	req.Field, _ = cmd.Flags().GetString("field")
	yes, _ := cmd.Flags().GetBool("yes")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	if dryRun || !yes {
		if !dryRun && !stdinIsTerminal() {
			return errConfirmationRequired
		}
		preview, err := replaceService.Preview(cmd.Context(), req)
		if err != nil {
			return describeReplaceError(err)
		}
		printPreview(cmd, preview)
		if dryRun {
			return nil
		}
		if !confirm(cmd, "Apply this change?") {
			cmd.Println("Aborted.")
			return nil
		}
	}

	result, err := replaceService.ReplaceMatch(cmd.Context(), req)
	if err != nil {
		return describeReplaceError(err)
	}

	cmd.Printf("Replaced %d occurrence(s) of %q with %q in %s.\n",
		result.Occurrences, result.Term, result.Replacement, result.Ref)
	if result.RevisionID != "" {
		cmd.Printf("Revision saved: %s\n", result.RevisionID)
	}
	return nil
}

func printPreview(cmd *cobra.Command, p *domain.ReplacePreview) {
	cmd.Printf("%s: %d occurrence(s)\n", p.Ref, p.Occurrences)
	cmd.Printf("- %s\n", p.Before)
	cmd.Printf("+ %s\n", p.After)
}

// describeReplaceError renders a rejection or failure with its reason code.
func describeReplaceError(err error) error {
	if re, ok := domain.AsReplaceError(err); ok {
		return fmt.Errorf("replace %s [%s]: %w", re.Outcome, re.Reason, re.Err)
	}
	return fmt.Errorf("replace failed: %w", err)
}

// confirm asks a yes/no question on the command's input. The default is no.
func confirm(cmd *cobra.Command, question string) bool {
	cmd.Printf("%s [y/N]: ", question)
	answer, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
