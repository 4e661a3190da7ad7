package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/afmkit/afm"
	"github.com/roach88/afmkit/internal/canonical"
)

// FingerprintResult is the output of fingerprint.
type FingerprintResult struct {
	File        string `json:"file"`
	Domain      string `json:"domain"`
	Fingerprint string `json:"fingerprint"`
}

// NewFingerprintCommand creates the fingerprint command.
func NewFingerprintCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "fingerprint <file>",
		Short: "Print the canonical fingerprint of an AFM execution",
		Long: `Print the SHA-256 fingerprint of the canonical form of an AFM execution.

Two executions that differ only in key order, whitespace, absent versus
empty optional sections or number spelling have the same fingerprint.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFingerprint(rootOpts, args[0], cmd)
		},
	}
}

func runFingerprint(opts *RootOptions, path string, cmd *cobra.Command) error {
	f := opts.formatter(cmd)

	exec, err := loadExecution(path)
	if err != nil {
		return loadFailure(f, err)
	}

	fp, err := canonical.Fingerprint(canonical.DomainExecution, exec)
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeGeneric, "computing fingerprint", err)
	}
	opts.Log.Debug().Str("file", path).Str("fingerprint", fp).Msg("fingerprinted execution")

	result := FingerprintResult{File: path, Domain: canonical.DomainExecution, Fingerprint: fp}
	return f.Success(result, func(w io.Writer) {
		fmt.Fprintln(w, fp)
	})
}

// loadExecution reads and decodes an execution. Decode failures are
// reported as LoadErrors with ErrCodeDecode.
func loadExecution(path string) (afm.Execution, error) {
	doc, err := LoadDocument(path)
	if err != nil {
		return afm.Execution{}, err
	}
	exec, err := afm.DecodeExecution(doc.JSON)
	if err != nil {
		return afm.Execution{}, &LoadError{Code: ErrCodeDecode, Message: fmt.Sprintf("decoding %s", path), Err: err}
	}
	return exec, nil
}
