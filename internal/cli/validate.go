package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/afmkit/afm"
	"github.com/roach88/afmkit/internal/canonical"
	"github.com/roach88/afmkit/internal/lint"
	"github.com/roach88/afmkit/internal/schema"
)

// ValidationIssue is one problem reported by validate.
type ValidationIssue struct {
	Code    string `json:"code"`
	Field   string `json:"field"`
	Message string `json:"message"`
	Line    int    `json:"line,omitempty"`
	Column  int    `json:"column,omitempty"`
}

// ValidationResult is the outcome of validating one execution.
type ValidationResult struct {
	File        string            `json:"file"`
	Valid       bool              `json:"valid"`
	Fingerprint string            `json:"fingerprint,omitempty"`
	Issues      []ValidationIssue `json:"issues,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Validate an AFM execution document",
		Long: `Validate an AFM execution document (JSON or YAML).

The document is checked against the execution schema, decoded, and then
linted for duplicate local identifiers, unresolved references, unknown
enumeration values and derived measure cycles.

Exit codes:
  0 - Document is valid
  1 - Document has issues
  2 - Command error (file not found, unparseable input)`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}
}

func runValidate(opts *RootOptions, path string, cmd *cobra.Command) error {
	f := opts.formatter(cmd)

	doc, err := LoadDocument(path)
	if err != nil {
		return loadFailure(f, err)
	}

	result := ValidateDocument(doc)
	opts.Log.Debug().
		Str("file", path).
		Bool("yaml", doc.FromYAML).
		Int("issues", len(result.Issues)).
		Msg("validated execution")

	if result.Valid {
		return f.Success(result, func(w io.Writer) {
			fmt.Fprintf(w, "✓ %s is valid\n", path)
			fmt.Fprintf(w, "  fingerprint %s\n", result.Fingerprint)
		})
	}

	_ = f.Failure(result.Issues[0].Code, result.Issues[0].Message, result, func(w io.Writer) {
		fmt.Fprintf(w, "✗ %s: validation failed\n\n", path)
		for _, issue := range result.Issues {
			if issue.Line > 0 {
				fmt.Fprintf(w, "line %d:%d\n", issue.Line, issue.Column)
			}
			fmt.Fprintf(w, "  %s: %s: %s\n", issue.Code, issue.Field, issue.Message)
		}
	})
	return NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d issue(s)", len(result.Issues)))
}

// ValidateDocument runs the schema check, the typed decode and the lint
// checks. Later stages run only when the earlier ones pass.
func ValidateDocument(doc *Document) ValidationResult {
	result := ValidationResult{File: doc.Path}

	for _, i := range schema.CheckExecution(doc.Path, doc.JSON) {
		issue := ValidationIssue{Code: i.Code, Field: i.Field, Message: i.Message}
		if !doc.FromYAML {
			issue.Line, issue.Column = i.Line, i.Column
		}
		result.Issues = append(result.Issues, issue)
	}
	if len(result.Issues) > 0 {
		return result
	}

	exec, err := afm.DecodeExecution(doc.JSON)
	if err != nil {
		result.Issues = append(result.Issues, ValidationIssue{Code: ErrCodeDecode, Field: "execution", Message: err.Error()})
		return result
	}

	for _, i := range lint.Check(exec) {
		result.Issues = append(result.Issues, ValidationIssue{Code: i.Code, Field: i.Field, Message: i.Message})
	}
	if len(result.Issues) > 0 {
		return result
	}

	fp, err := canonical.Fingerprint(canonical.DomainExecution, exec)
	if err != nil {
		result.Issues = append(result.Issues, ValidationIssue{Code: ErrCodeGeneric, Field: "execution", Message: err.Error()})
		return result
	}
	result.Valid = true
	result.Fingerprint = fp
	return result
}
