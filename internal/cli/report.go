package cli

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/tenderdata/sparqlint/internal/report"
)

// newReportID generates the correlation ID stamped on report output.
// UUIDv7 keeps IDs sortable by creation time. Swappable in tests for
// deterministic output.
var newReportID = func() string {
	return uuid.Must(uuid.NewV7()).String()
}

// NewReportCommand creates the report command.
func NewReportCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "report <file|->",
		Short: "Run every analysis and print the full report",
		Long: `Aggregate every analysis into a single report: validation verdict,
complexity, performance warnings, prefix suggestions, variables, and
declared prefixes, plus a content-addressed fingerprint of the query.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(rootOpts, args[0], cmd)
		},
	}
}

func runReport(opts *RootOptions, arg string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	query, err := readQuery(cmd, arg)
	if err != nil {
		return err
	}

	rep := report.Build(query)
	id := newReportID()
	formatter.VerboseLog("report %s for fingerprint %s", id, rep.Fingerprint)

	if opts.Format == "json" {
		// The data payload is the canonical serialization, byte for
		// byte, so fingerprint-addressed snapshots match CLI output.
		raw, err := rep.CanonicalJSON()
		if err != nil {
			return WrapExitError(ExitCommandError, "serialize report", err)
		}
		return formatter.SuccessWithID(id, json.RawMessage(raw))
	}

	w := formatter.Writer
	fmt.Fprintf(w, "Report:      %s\n", id)
	fmt.Fprintf(w, "Fingerprint: %s\n", rep.Fingerprint)
	fmt.Fprintf(w, "Complex:     %t\n", rep.Complex)
	if rep.Validation.Valid {
		fmt.Fprintln(w, "Valid:       yes")
	} else {
		fmt.Fprintf(w, "Valid:       no (%s)\n", rep.Validation.Error)
	}
	for _, warning := range rep.Validation.Warnings {
		fmt.Fprintf(w, "  warning: %s\n", warning)
	}
	for _, warning := range rep.Performance {
		fmt.Fprintf(w, "  perf: %s\n", warning)
	}
	for _, s := range rep.Suggestions {
		fmt.Fprintf(w, "  suggest: %s\n", s.Declaration)
	}
	fmt.Fprintf(w, "Variables:   %d\n", len(rep.Variables))
	return nil
}
