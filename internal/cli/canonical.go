package cli

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/afmkit/internal/canonical"
)

// NewCanonicalCommand creates the canonical command.
func NewCanonicalCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "canonical <file>",
		Short: "Print the canonical JSON form of an AFM execution",
		Long: `Decode an AFM execution and print it in canonical JSON (RFC 8785):
sorted keys, no insignificant whitespace, normalized strings and numbers.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCanonical(rootOpts, args[0], cmd)
		},
	}
}

func runCanonical(opts *RootOptions, path string, cmd *cobra.Command) error {
	f := opts.formatter(cmd)

	exec, err := loadExecution(path)
	if err != nil {
		return loadFailure(f, err)
	}

	data, err := canonical.Marshal(exec)
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeGeneric, "canonicalizing execution", err)
	}

	return f.Success(json.RawMessage(data), func(w io.Writer) {
		w.Write(data)
		io.WriteString(w, "\n")
	})
}
