package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tenderdata/sparqlint/internal/advise"
)

// CheckResult is the JSON payload of the check command.
type CheckResult struct {
	Warnings []string `json:"warnings"`
}

// NewCheckCommand creates the check command. Performance findings are
// advisory, so the command always exits 0.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check <file|->",
		Short: "Flag likely performance problems",
		Long: `Scan a query for patterns that tend to be slow on public endpoints:
missing LIMIT, piles of OPTIONAL or FILTER clauses, disconnected triple
patterns, SELECT *, and ungrouped aggregates.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(rootOpts, args[0], cmd)
		},
	}
}

func runCheck(opts *RootOptions, arg string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	query, err := readQuery(cmd, arg)
	if err != nil {
		return err
	}

	warnings := advise.CheckPerformance(query)
	if warnings == nil {
		warnings = []string{}
	}

	if opts.Format == "json" {
		return formatter.Success(CheckResult{Warnings: warnings})
	}

	if len(warnings) == 0 {
		fmt.Fprintln(formatter.Writer, "No performance issues found")
		return nil
	}
	for _, w := range warnings {
		fmt.Fprintf(formatter.Writer, "warning: %s\n", w)
	}
	return nil
}
