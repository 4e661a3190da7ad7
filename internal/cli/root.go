package cli

import (
	"fmt"
	"slices"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/roach88/afmkit/internal/config"
	"github.com/roach88/afmkit/internal/logger"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"

	Config *config.Config
	Log    zerolog.Logger
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command of afmctl. cfg seeds the flag
// defaults; a nil cfg uses the built-in defaults.
func NewRootCommand(cfg *config.Config) *cobra.Command {
	if cfg == nil {
		cfg = config.Default()
	}
	opts := &RootOptions{Config: cfg, Log: zerolog.Nop()}

	cmd := &cobra.Command{
		Use:   "afmctl",
		Short: "afmctl - AFM executions and embedding messages",
		Long: `Validate, canonicalize and fingerprint AFM execution documents, and
build or inspect the command and event messages exchanged with embedded
Analytical Designer and KPI Dashboards.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}

			level := cfg.LogLevel
			if opts.Verbose {
				level = "debug"
			}
			opts.Log = logger.New(logger.Options{
				Level:     level,
				Format:    cfg.LogFormat,
				Component: cmd.Name(),
				Writer:    cmd.ErrOrStderr(),
			})
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", cfg.Format, "output format (json|text)")

	cmd.AddCommand(NewValidateCommand(opts))
	cmd.AddCommand(NewFingerprintCommand(opts))
	cmd.AddCommand(NewCanonicalCommand(opts))
	cmd.AddCommand(NewInspectCommand(opts))
	cmd.AddCommand(NewCommandCommand(opts))
	cmd.AddCommand(NewTestCommand(opts))

	return cmd
}

func isValidFormat(format string) bool {
	return slices.Contains(ValidFormats, format)
}

// formatter returns the output formatter for cmd.
func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   o.Verbose,
	}
}
