package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Command error codes (E001-E099). Validation codes live with the checks
// that produce them: E1xx in lint, E2xx in schema.
const (
	ErrCodeGeneric     = "E001" // Generic/unknown error
	ErrCodeNotFound    = "E002" // Input file not found or unreadable
	ErrCodeParseFailed = "E003" // Input is neither JSON nor YAML
	ErrCodeDecode      = "E004" // Input does not decode into the expected type
	ErrCodeWriteFailed = "E005" // Output file write error
	ErrCodeBadArgument = "E006" // Invalid command argument or flag
)

// Document is an input file normalized to JSON.
type Document struct {
	Path string
	JSON []byte

	// FromYAML is set when JSON was converted from YAML, in which case
	// line numbers in diagnostics refer to the converted form.
	FromYAML bool
}

// LoadError is returned by LoadDocument.
type LoadError struct {
	Code    string
	Message string
	Err     error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *LoadError) Unwrap() error { return e.Err }

// LoadDocument reads a JSON or YAML file. Files ending in .yaml or .yml are
// always treated as YAML; others are tried as JSON first.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("file not found: %s", path)}
		}
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("reading %s", path), Err: err}
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".yaml" && ext != ".yml" && json.Valid(data) {
		return &Document{Path: path, JSON: data}, nil
	}

	converted, err := yamlToJSON(data)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeParseFailed, Message: fmt.Sprintf("%s is neither JSON nor YAML", path), Err: err}
	}
	return &Document{Path: path, JSON: converted, FromYAML: true}, nil
}

func yamlToJSON(data []byte) ([]byte, error) {
	var v any
	dec := yaml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if v == nil {
		return nil, errors.New("empty document")
	}
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("converting to JSON: %w", err)
	}
	return out, nil
}

// loadFailure reports a LoadDocument error through f.
func loadFailure(f *OutputFormatter, err error) error {
	var le *LoadError
	if errors.As(err, &le) {
		return f.Fail(ExitCommandError, le.Code, le.Message, le.Err)
	}
	return f.Fail(ExitCommandError, ErrCodeGeneric, "loading input", err)
}
