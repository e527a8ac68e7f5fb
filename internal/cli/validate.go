package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tenderdata/sparqlint/internal/validate"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file|->",
		Short: "Check a query for structural problems",
		Long: `Validate a SPARQL query's structure: query form, WHERE clause,
brace and quote balance, prefix declarations. Exits 1 when the query is
structurally invalid; advisory findings are printed as warnings.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}
}

func runValidate(opts *RootOptions, arg string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	query, err := readQuery(cmd, arg)
	if err != nil {
		return err
	}
	formatter.VerboseLog("validating %d bytes of query text", len(query))

	res := validate.Query(query)
	if !res.Valid {
		if err := formatter.Error(ErrCodeInvalid, res.Error, nil); err != nil {
			return err
		}
		return reportedError(ExitFailure)
	}

	if opts.Format == "json" {
		return formatter.Success(res)
	}

	fmt.Fprintln(formatter.Writer, "Query is valid")
	for _, w := range res.Warnings {
		fmt.Fprintf(formatter.Writer, "warning: %s\n", w)
	}
	return nil
}
