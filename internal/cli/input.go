package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// maxQueryBytes caps how much query text a command will read, matching
// the engine's own input cap.
const maxQueryBytes = 1 << 20

// readQuery loads the query text from a file argument, or from stdin
// when the argument is "-".
func readQuery(cmd *cobra.Command, arg string) (string, error) {
	if arg == "-" {
		data, err := io.ReadAll(io.LimitReader(cmd.InOrStdin(), maxQueryBytes+1))
		if err != nil {
			return "", WrapExitError(ExitCommandError, "read query from stdin", err)
		}
		if len(data) > maxQueryBytes {
			return "", NewExitError(ExitCommandError, fmt.Sprintf("query on stdin exceeds %d bytes", maxQueryBytes))
		}
		return string(data), nil
	}

	data, err := os.ReadFile(arg)
	if err != nil {
		return "", WrapExitError(ExitCommandError, "read query file", err)
	}
	if len(data) > maxQueryBytes {
		return "", NewExitError(ExitCommandError, fmt.Sprintf("query file %s exceeds %d bytes", arg, maxQueryBytes))
	}
	return string(data), nil
}
