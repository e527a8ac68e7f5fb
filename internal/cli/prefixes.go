package cli

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/tenderdata/sparqlint/internal/advise"
)

// PrefixesResult is the JSON payload of the prefixes command.
type PrefixesResult struct {
	Suggestions []advise.PrefixSuggestion `json:"suggestions"`
}

// NewPrefixesCommand creates the prefixes command.
func NewPrefixesCommand(rootOpts *RootOptions) *cobra.Command {
	var namespacesFile string

	cmd := &cobra.Command{
		Use:   "prefixes <file|->",
		Short: "Suggest missing PREFIX declarations",
		Long: `Match the query's URI literals against the known namespace table and
print the PREFIX declarations the query could add. Extra namespaces can
be merged in from a YAML file of {uri, prefix} entries; builtin entries
keep precedence.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrefixes(rootOpts, args[0], namespacesFile, cmd)
		},
	}

	cmd.Flags().StringVar(&namespacesFile, "namespaces", "", "YAML file with additional namespace table entries")
	return cmd
}

func runPrefixes(opts *RootOptions, arg, namespacesFile string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	query, err := readQuery(cmd, arg)
	if err != nil {
		return err
	}

	namespaces := advise.Builtin
	if namespacesFile != "" {
		extra, err := advise.LoadNamespaces(namespacesFile)
		if err != nil {
			return WrapExitError(ExitCommandError, ErrCodeNamespaces+": load namespaces", err)
		}
		namespaces = advise.MergeNamespaces(namespaces, extra)
		formatter.VerboseLog("merged %d namespace entries from %s", len(extra), namespacesFile)
	}

	suggestions := advise.SuggestPrefixesFrom(query, namespaces)
	if suggestions == nil {
		suggestions = []advise.PrefixSuggestion{}
	}

	if opts.Format == "json" {
		return formatter.Success(PrefixesResult{Suggestions: suggestions})
	}

	if len(suggestions) == 0 {
		fmt.Fprintln(formatter.Writer, "No prefix suggestions")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(formatter.Writer)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"PREFIX", "NAMESPACE"})
	for _, s := range suggestions {
		t.AppendRow(table.Row{s.Prefix, s.URI})
	}
	t.Render()

	fmt.Fprintln(formatter.Writer)
	for _, s := range suggestions {
		fmt.Fprintln(formatter.Writer, s.Declaration)
	}
	return nil
}
