package cli

import (
	"fmt"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/tenderdata/sparqlint/internal/scan"
)

// VarsResult is the JSON payload of the vars command.
type VarsResult struct {
	Variables []string          `json:"variables"`
	Prefixes  map[string]string `json:"prefixes"`
}

// NewVarsCommand creates the vars command.
func NewVarsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "vars <file|->",
		Short: "List variables and declared prefixes",
		Long: `Extract the query's variables (in order of first use) and its declared
PREFIX bindings.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVars(rootOpts, args[0], cmd)
		},
	}
}

func runVars(opts *RootOptions, arg string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	query, err := readQuery(cmd, arg)
	if err != nil {
		return err
	}

	variables := scan.Variables(query)
	if variables == nil {
		variables = []string{}
	}
	prefixes := scan.Prefixes(query)

	if opts.Format == "json" {
		return formatter.Success(VarsResult{Variables: variables, Prefixes: prefixes})
	}

	if len(variables) == 0 {
		fmt.Fprintln(formatter.Writer, "No variables found")
	} else {
		t := table.NewWriter()
		t.SetOutputMirror(formatter.Writer)
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"#", "VARIABLE"})
		for i, v := range variables {
			t.AppendRow(table.Row{i + 1, v})
		}
		t.Render()
	}

	if len(prefixes) > 0 {
		names := make([]string, 0, len(prefixes))
		for name := range prefixes {
			names = append(names, name)
		}
		sort.Strings(names)

		t := table.NewWriter()
		t.SetOutputMirror(formatter.Writer)
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"PREFIX", "NAMESPACE"})
		for _, name := range names {
			t.AppendRow(table.Row{name, prefixes[name]})
		}
		t.Render()
	}
	return nil
}
