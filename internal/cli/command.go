package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/afmkit/embedding"
	"github.com/roach88/afmkit/embedding/ad"
	"github.com/roach88/afmkit/embedding/kd"
)

// CommandOptions holds flags for the command subcommands.
type CommandOptions struct {
	*RootOptions
	Title                string
	CorrelationID        string
	NewID                bool
	Identifier           string
	URI                  string
	ExportFormat         string
	MergeHeaders         bool
	IncludeFilterContext bool
}

type commandBuilder func(o *CommandOptions, cmd *cobra.Command) (embedding.Envelope, error)

var adCommands = map[string]commandBuilder{
	"save": func(o *CommandOptions, _ *cobra.Command) (embedding.Envelope, error) {
		return ad.SaveInsight(o.Title, o.CorrelationID), nil
	},
	"saveAs": func(o *CommandOptions, _ *cobra.Command) (embedding.Envelope, error) {
		return ad.SaveAsInsight(o.Title, o.CorrelationID), nil
	},
	"export": func(o *CommandOptions, cmd *cobra.Command) (embedding.Envelope, error) {
		cfg := ad.ExportConfig{Format: ad.ExportFormat(o.ExportFormat), Title: o.Title}
		switch cfg.Format {
		case "", ad.ExportXLSX, ad.ExportCSV, ad.ExportRaw:
		default:
			return nil, fmt.Errorf("unknown export format %q", o.ExportFormat)
		}
		if cmd.Flags().Changed("merge-headers") {
			cfg.MergeHeaders = &o.MergeHeaders
		}
		if cmd.Flags().Changed("include-filter-context") {
			cfg.IncludeFilterContext = &o.IncludeFilterContext
		}
		return ad.ExportInsight(cfg, o.CorrelationID), nil
	},
	"undo": func(o *CommandOptions, _ *cobra.Command) (embedding.Envelope, error) {
		return ad.Undo(o.CorrelationID), nil
	},
	"redo": func(o *CommandOptions, _ *cobra.Command) (embedding.Envelope, error) {
		return ad.Redo(o.CorrelationID), nil
	},
}

var kdCommands = map[string]commandBuilder{
	"switchToEdit": func(o *CommandOptions, _ *cobra.Command) (embedding.Envelope, error) {
		return kd.SwitchToEdit(o.CorrelationID), nil
	},
	"cancelEdit": func(o *CommandOptions, _ *cobra.Command) (embedding.Envelope, error) {
		return kd.CancelEdit(o.CorrelationID), nil
	},
	"deleteDashboard": func(o *CommandOptions, _ *cobra.Command) (embedding.Envelope, error) {
		return kd.DeleteDashboard(o.CorrelationID), nil
	},
	"save": func(o *CommandOptions, _ *cobra.Command) (embedding.Envelope, error) {
		return kd.Save(o.Title, o.CorrelationID), nil
	},
	"addKpi": func(o *CommandOptions, _ *cobra.Command) (embedding.Envelope, error) {
		return kd.AddKpi(o.CorrelationID), nil
	},
	"addInsight": func(o *CommandOptions, _ *cobra.Command) (embedding.Envelope, error) {
		switch {
		case o.Identifier != "" && o.URI != "":
			return nil, fmt.Errorf("--identifier and --uri are mutually exclusive")
		case o.Identifier != "":
			return kd.AddInsight(kd.IdentifierInsightRef{Identifier: o.Identifier}, o.CorrelationID), nil
		case o.URI != "":
			return kd.AddInsight(kd.URIInsightRef{URI: o.URI}, o.CorrelationID), nil
		}
		return nil, fmt.Errorf("addInsight needs --identifier or --uri")
	},
	"addFilter": func(o *CommandOptions, _ *cobra.Command) (embedding.Envelope, error) {
		return kd.AddFilter(o.CorrelationID), nil
	},
}

func commandNames(builders map[string]commandBuilder) []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// NewCommandCommand creates the command command with its ad and kd subcommands.
func NewCommandCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "command",
		Short: "Build a command message for an embedded application",
		Long: `Build a command message for Analytical Designer (ad) or KPI Dashboards (kd)
and print it as JSON, ready to be posted to the embedded application.

Examples:
  afmctl command ad save --title "Revenue" --correlation-id c1
  afmctl command ad export --export-format csv --merge-headers=false
  afmctl command kd addInsight --identifier insight.1 --new-id`,
	}

	cmd.AddCommand(newAppCommand(rootOpts, "ad", "Analytical Designer", adCommands))
	cmd.AddCommand(newAppCommand(rootOpts, "kd", "KPI Dashboards", kdCommands))
	return cmd
}

func newAppCommand(rootOpts *RootOptions, app, title string, builders map[string]commandBuilder) *cobra.Command {
	opts := &CommandOptions{RootOptions: rootOpts}
	names := commandNames(builders)

	cmd := &cobra.Command{
		Use:           app + " <name>",
		Short:         fmt.Sprintf("Build a %s command (%s)", title, strings.Join(names, ", ")),
		Args:          cobra.ExactArgs(1),
		ValidArgs:     names,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuildCommand(opts, builders, app, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Title, "title", "", "title of the saved or exported object")
	cmd.Flags().StringVar(&opts.CorrelationID, "correlation-id", "", "correlation id of the command")
	cmd.Flags().BoolVar(&opts.NewID, "new-id", false, "generate a UUIDv7 correlation id")
	if app == "kd" {
		cmd.Flags().StringVar(&opts.Identifier, "identifier", "", "identifier of the insight to add")
		cmd.Flags().StringVar(&opts.URI, "uri", "", "URI of the insight to add")
	}
	if app == "ad" {
		cmd.Flags().StringVar(&opts.ExportFormat, "export-format", "", "export format (xlsx|csv|raw)")
		cmd.Flags().BoolVar(&opts.MergeHeaders, "merge-headers", true, "merge headers in the export")
		cmd.Flags().BoolVar(&opts.IncludeFilterContext, "include-filter-context", false, "include the filter context in the export")
	}
	return cmd
}

func runBuildCommand(opts *CommandOptions, builders map[string]commandBuilder, app, name string, cmd *cobra.Command) error {
	f := opts.formatter(cmd)

	build, ok := builders[name]
	if !ok {
		return f.Fail(ExitCommandError, ErrCodeBadArgument,
			fmt.Sprintf("unknown %s command %q, expected one of %v", app, name, commandNames(builders)), nil)
	}

	if opts.NewID {
		if opts.CorrelationID != "" {
			return f.Fail(ExitCommandError, ErrCodeBadArgument, "--new-id and --correlation-id are mutually exclusive", nil)
		}
		opts.CorrelationID = embedding.NewCorrelationID()
	}

	env, err := build(opts, cmd)
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeBadArgument, err.Error(), nil)
	}

	data, err := embedding.Encode(env)
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeGeneric, "encoding command", err)
	}
	opts.Log.Debug().Str("type", env.TypeName()).Str("correlation_id", env.Correlation()).Msg("built command")

	return f.Success(json.RawMessage(data), func(w io.Writer) {
		w.Write(data)
		io.WriteString(w, "\n")
	})
}
