package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/afmkit/embedding"
	"github.com/roach88/afmkit/internal/conformance"
	"github.com/roach88/afmkit/internal/correlation"
	"github.com/roach88/afmkit/internal/schema"
)

// InspectedMessage describes one message of an inspected file.
type InspectedMessage struct {
	Index         int               `json:"index"`
	Kind          string            `json:"kind"`
	Type          string            `json:"type,omitempty"`
	Class         string            `json:"class"`
	CorrelationID string            `json:"correlationId,omitempty"`
	Resolves      *int              `json:"resolves,omitempty"`
	Issues        []ValidationIssue `json:"issues,omitempty"`
}

// InspectResult is the output of inspect.
type InspectResult struct {
	File     string             `json:"file"`
	Messages []InspectedMessage `json:"messages"`
	Pending  int                `json:"pending"`
}

// NewInspectCommand creates the inspect command.
func NewInspectCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file>",
		Short: "Classify embedding messages",
		Long: `Classify each command and event message in a file.

The file holds one message object or an array of messages in the order
they were exchanged. Each message is checked against the message schema
and classified; events are paired with the earlier command carrying the
same correlation id.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(rootOpts, args[0], cmd)
		},
	}
}

func runInspect(opts *RootOptions, path string, cmd *cobra.Command) error {
	f := opts.formatter(cmd)

	doc, err := LoadDocument(path)
	if err != nil {
		return loadFailure(f, err)
	}
	msgs, err := embedding.DecodeAll(doc.JSON)
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeDecode, fmt.Sprintf("decoding %s", path), err)
	}

	tracker, err := correlation.New(opts.Config.CorrelationCapacity,
		correlation.WithEvictHook(func(p correlation.Pending) {
			opts.Log.Warn().Str("correlation_id", p.CorrelationID).Msg("dropped unanswered command")
		}))
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeGeneric, "creating correlation tracker", err)
	}

	result := InspectResult{File: path, Messages: make([]InspectedMessage, 0, len(msgs))}
	indexOf := make(map[string]int)
	issues := 0

	for i, msg := range msgs {
		im := InspectedMessage{
			Index:         i,
			Kind:          msg.Kind().String(),
			Type:          msg.TypeName(),
			Class:         conformance.Classify(msg),
			CorrelationID: msg.CorrelationID,
		}

		if data, err := embedding.Encode(msg); err == nil {
			for _, si := range schema.CheckMessage(fmt.Sprintf("%s[%d]", path, i), data) {
				im.Issues = append(im.Issues, ValidationIssue{Code: si.Code, Field: si.Field, Message: si.Message})
			}
		}
		issues += len(im.Issues)

		switch msg.Kind() {
		case embedding.KindCommand:
			if msg.CorrelationID != "" {
				if _, err := tracker.Track(msg); err == nil {
					indexOf[msg.CorrelationID] = i
				}
			}
		case embedding.KindEvent:
			if p, ok := tracker.Resolve(msg); ok {
				idx := indexOf[p.CorrelationID]
				im.Resolves = &idx
			}
		}

		opts.Log.Debug().Int("index", i).Str("class", im.Class).Msg("inspected message")
		result.Messages = append(result.Messages, im)
	}
	result.Pending = tracker.Pending()

	text := func(w io.Writer) {
		for _, m := range result.Messages {
			fmt.Fprintf(w, "[%d] %s", m.Index, m.Class)
			if m.CorrelationID != "" {
				fmt.Fprintf(w, " (%s)", m.CorrelationID)
			}
			if m.Resolves != nil {
				fmt.Fprintf(w, " -> answers [%d]", *m.Resolves)
			}
			fmt.Fprintln(w)
			for _, issue := range m.Issues {
				fmt.Fprintf(w, "    %s: %s\n", issue.Code, issue.Message)
			}
		}
		fmt.Fprintf(w, "\n%d message(s), %d unanswered command(s)\n", len(result.Messages), result.Pending)
	}

	if issues == 0 {
		return f.Success(result, text)
	}
	_ = f.Failure(schema.ErrSchemaViolation, fmt.Sprintf("%d schema issue(s)", issues), result, text)
	return NewExitError(ExitFailure, fmt.Sprintf("%d schema issue(s)", issues))
}
