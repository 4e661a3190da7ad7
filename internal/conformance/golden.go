package conformance

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/afmkit/internal/canonical"
)

// Snapshot is the golden representation of a run.
type Snapshot struct {
	Scenario string       `json:"scenario"`
	Pending  int          `json:"pending"`
	Trace    []TraceEvent `json:"trace"`
}

// MarshalSnapshot returns the canonical JSON of the run of scenario name.
func MarshalSnapshot(name string, r *Result) ([]byte, error) {
	return canonical.Marshal(Snapshot{Scenario: name, Pending: r.Pending, Trace: r.Trace})
}

// RunWithGolden runs s and compares its trace with testdata/golden/<name>.golden.
func RunWithGolden(t *testing.T, s *Scenario, opts ...RunOption) (*Result, error) {
	t.Helper()

	result, err := Run(s, opts...)
	if err != nil {
		return nil, err
	}
	if err := AssertGolden(t, s.Name, result); err != nil {
		return nil, err
	}
	return result, nil
}

// AssertGolden compares result with testdata/golden/<name>.golden.
func AssertGolden(t *testing.T, name string, result *Result) error {
	t.Helper()

	data, err := MarshalSnapshot(name, result)
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, data)
	return nil
}
