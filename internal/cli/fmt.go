package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tenderdata/sparqlint/internal/format"
)

// FormatResult is the JSON payload of the fmt command.
type FormatResult struct {
	Formatted string `json:"formatted"`
	Changed   bool   `json:"changed"`
}

// NewFmtCommand creates the fmt command.
func NewFmtCommand(rootOpts *RootOptions) *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "fmt <file|->",
		Short: "Re-indent a query",
		Long: `Re-indent a SPARQL query to two spaces per nesting level. Lines are
never reordered, merged, or split. Malformed input comes back unchanged.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFmt(rootOpts, args[0], write, cmd)
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "rewrite the file in place instead of printing")
	return cmd
}

func runFmt(opts *RootOptions, arg string, write bool, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	query, err := readQuery(cmd, arg)
	if err != nil {
		return err
	}

	formatted := format.Query(query)
	changed := formatted != query

	if write {
		if arg == "-" {
			return NewExitError(ExitCommandError, "cannot use --write with stdin input")
		}
		if changed {
			if err := os.WriteFile(arg, []byte(formatted), 0o644); err != nil {
				return WrapExitError(ExitCommandError, "rewrite query file", err)
			}
		}
		formatter.VerboseLog("formatted %s (changed=%t)", arg, changed)
		if opts.Format == "json" {
			return formatter.Success(FormatResult{Formatted: formatted, Changed: changed})
		}
		return nil
	}

	if opts.Format == "json" {
		return formatter.Success(FormatResult{Formatted: formatted, Changed: changed})
	}
	fmt.Fprintln(formatter.Writer, formatted)
	return nil
}
