package conformance

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario is a recorded exchange of messages with expectations.
type Scenario struct {
	// Name identifies the scenario and names its golden file.
	Name string `yaml:"name"`

	Description string `yaml:"description"`

	// CorrelationIDs are handed out, in order, to commands that carry no
	// correlation id. Once exhausted, ids are derived from Name.
	CorrelationIDs []string `yaml:"correlation_ids,omitempty"`

	Messages []Step `yaml:"messages"`

	// Assertions are checked against the whole trace after the last message.
	Assertions []Assertion `yaml:"assertions,omitempty"`
}

// Step is one message as it crossed the boundary.
type Step struct {
	// Message is the raw envelope object.
	Message map[string]any `yaml:"message"`

	// Expect is the class Classify must return. Empty skips the check.
	Expect string `yaml:"expect,omitempty"`

	// Resolves is the class of the pending command this event must answer.
	Resolves string `yaml:"resolves,omitempty"`
}

// Assertion checks the trace as a whole.
type Assertion struct {
	// Type is one of AssertTraceOrder, AssertTraceCount or AssertPending.
	Type string `yaml:"type"`

	// Classes lists the classes expected in order (trace_order).
	Classes []string `yaml:"classes,omitempty"`

	// Class is the counted class (trace_count).
	Class string `yaml:"class,omitempty"`

	// Count is the expected number of occurrences (trace_count) or of
	// unanswered commands (pending).
	Count int `yaml:"count,omitempty"`
}

// Assertion types.
const (
	AssertTraceOrder = "trace_order"
	AssertTraceCount = "trace_count"
	AssertPending    = "pending"
)

// LoadScenario reads a scenario file. Unknown fields are rejected so that
// typos in expectations do not silently pass.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses and validates scenario YAML.
func ParseScenario(data []byte) (*Scenario, error) {
	var s Scenario
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&s); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &s, nil
}

func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}
	if len(s.Messages) == 0 {
		return fmt.Errorf("messages list is required and must be non-empty")
	}

	for i, step := range s.Messages {
		if step.Message == nil {
			return fmt.Errorf("messages[%d]: message is required", i)
		}
	}

	for i, a := range s.Assertions {
		if err := validateAssertion(i, a); err != nil {
			return err
		}
	}
	return nil
}

func validateAssertion(i int, a Assertion) error {
	switch a.Type {
	case "":
		return fmt.Errorf("assertions[%d]: type is required", i)
	case AssertTraceOrder:
		if len(a.Classes) == 0 {
			return fmt.Errorf("assertions[%d]: classes list is required for trace_order", i)
		}
	case AssertTraceCount:
		if a.Class == "" {
			return fmt.Errorf("assertions[%d]: class is required for trace_count", i)
		}
		if a.Count < 0 {
			return fmt.Errorf("assertions[%d]: count must be non-negative for trace_count", i)
		}
	case AssertPending:
		if a.Count < 0 {
			return fmt.Errorf("assertions[%d]: count must be non-negative for pending", i)
		}
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", i, a.Type)
	}
	return nil
}
