package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tenderdata/sparqlint/internal/complete"
)

// CompleteResult is the JSON payload of the complete command.
type CompleteResult struct {
	Completed string `json:"completed"`
}

// NewCompleteCommand creates the complete command.
func NewCompleteCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "complete <file|->",
		Short: "Fill in missing query structure",
		Long: `Repair incomplete query text into a minimally valid query: default
prefixes, a SELECT clause, a WHERE block, and a LIMIT, each added only
when missing. Empty input yields the starter template.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runComplete(rootOpts, args[0], cmd)
		},
	}
}

func runComplete(opts *RootOptions, arg string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	query, err := readQuery(cmd, arg)
	if err != nil {
		return err
	}

	completed := complete.Query(query)

	if opts.Format == "json" {
		return formatter.Success(CompleteResult{Completed: completed})
	}
	fmt.Fprintln(formatter.Writer, completed)
	return nil
}
