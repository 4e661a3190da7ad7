// Package visualization holds the legacy visualization style envelope.
package visualization

import "encoding/json"

// Style is the style envelope attached to a visualization.
type Style struct {
	Visualization *Options `json:"visualization,omitempty"`
}

// Options carries visualization options. Stack is opaque: it is kept as raw
// JSON and written back unchanged.
type Options struct {
	Stack json.RawMessage `json:"stack,omitempty"`
}

// HasStack reports whether the style carries stack options.
func (s Style) HasStack() bool {
	return s.Visualization != nil && len(s.Visualization.Stack) > 0
}
