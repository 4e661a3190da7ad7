package conformance

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/roach88/afmkit/embedding"
	"github.com/roach88/afmkit/internal/correlation"
)

// RunOption configures Run.
type RunOption func(*runner)

// WithLogger logs each replayed message at debug level.
func WithLogger(log zerolog.Logger) RunOption {
	return func(r *runner) {
		r.log = log
	}
}

type runner struct {
	log zerolog.Logger
}

// Run replays the messages of s in order and checks its expectations.
// Mismatches are reported in the result; the error is reserved for
// scenarios that cannot be replayed at all.
func Run(s *Scenario, opts ...RunOption) (*Result, error) {
	r := &runner{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(r)
	}

	tracker, err := correlation.New(len(s.Messages)+1,
		correlation.WithIDGenerator(newScenarioIDs(s.Name, s.CorrelationIDs)))
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", s.Name, err)
	}

	result := NewResult()
	for i, step := range s.Messages {
		r.replay(tracker, result, int64(i+1), step)
	}
	result.Pending = tracker.Pending()

	for _, a := range s.Assertions {
		if err := evaluate(result, a); err != nil {
			result.AddError(err.Error())
		}
	}

	r.log.Debug().
		Str("scenario", s.Name).
		Bool("pass", result.Pass).
		Int("pending", result.Pending).
		Msg("scenario finished")
	return result, nil
}

func (r *runner) replay(tracker *correlation.Tracker, result *Result, seq int64, step Step) {
	field := fmt.Sprintf("messages[%d]", seq-1)

	raw, err := json.Marshal(step.Message)
	if err != nil {
		result.AddError(fmt.Sprintf("%s: %v", field, err))
		return
	}
	msg, err := embedding.Decode(raw)
	if err != nil {
		result.AddError(fmt.Sprintf("%s: %v", field, err))
		return
	}

	ev := TraceEvent{
		Seq:           seq,
		Kind:          msg.Kind().String(),
		Type:          msg.TypeName(),
		Class:         Classify(msg),
		CorrelationID: msg.CorrelationID,
	}

	switch msg.Kind() {
	case embedding.KindCommand:
		tracked, err := tracker.Track(msg)
		if err != nil {
			result.AddError(fmt.Sprintf("%s: %v", field, err))
		} else {
			ev.CorrelationID = tracked.CorrelationID
		}
	case embedding.KindEvent:
		if p, ok := tracker.Resolve(msg); ok {
			ev.Resolves = Classify(p.Command)
		}
	}

	if step.Expect != "" && ev.Class != step.Expect {
		result.AddError(fmt.Sprintf("%s: expected %s, got %s", field, step.Expect, ev.Class))
	}
	if step.Resolves != "" && ev.Resolves != step.Resolves {
		got := ev.Resolves
		if got == "" {
			got = "no pending command"
		}
		result.AddError(fmt.Sprintf("%s: expected to resolve %s, got %s", field, step.Resolves, got))
	}

	r.log.Debug().
		Int64("seq", ev.Seq).
		Str("class", ev.Class).
		Str("correlation_id", ev.CorrelationID).
		Str("resolves", ev.Resolves).
		Msg("replayed message")

	result.Trace = append(result.Trace, ev)
}

// scenarioIDs hands out the scenario's fixed ids, then "<name>-<n>".
type scenarioIDs struct {
	mu    sync.Mutex
	name  string
	fixed []string
	n     int
}

func newScenarioIDs(name string, fixed []string) *scenarioIDs {
	return &scenarioIDs{name: name, fixed: fixed}
}

func (g *scenarioIDs) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.n++
	if g.n <= len(g.fixed) {
		return g.fixed[g.n-1]
	}
	return fmt.Sprintf("%s-%d", g.name, g.n)
}
