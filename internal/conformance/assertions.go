package conformance

import (
	"fmt"
	"strings"
)

// AssertionError describes a failed scenario assertion.
type AssertionError struct {
	Type     string
	Expected string
	Actual   string
	Trace    []TraceEvent
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "Assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s\n", e.Actual)

	fmt.Fprintf(&buf, "\nFull trace:\n")
	for _, ev := range e.Trace {
		fmt.Fprintf(&buf, "  [%d] %s", ev.Seq, ev.Class)
		if ev.CorrelationID != "" {
			fmt.Fprintf(&buf, " (%s)", ev.CorrelationID)
		}
		buf.WriteByte('\n')
	}
	return buf.String()
}

func evaluate(r *Result, a Assertion) error {
	switch a.Type {
	case AssertTraceOrder:
		return assertTraceOrder(r.Trace, a)
	case AssertTraceCount:
		return assertTraceCount(r.Trace, a)
	case AssertPending:
		if r.Pending != a.Count {
			return &AssertionError{
				Type:     AssertPending,
				Expected: fmt.Sprintf("%d unanswered commands", a.Count),
				Actual:   fmt.Sprintf("%d unanswered commands", r.Pending),
				Trace:    r.Trace,
			}
		}
		return nil
	}
	return fmt.Errorf("unknown assertion type %q", a.Type)
}

// assertTraceOrder checks that the classes occur in the given order. Other
// messages may come in between.
func assertTraceOrder(trace []TraceEvent, a Assertion) error {
	next := 0
	for _, ev := range trace {
		if next < len(a.Classes) && ev.Class == a.Classes[next] {
			next++
		}
	}
	if next == len(a.Classes) {
		return nil
	}
	return &AssertionError{
		Type:     AssertTraceOrder,
		Expected: fmt.Sprintf("classes in order: %v", a.Classes),
		Actual:   fmt.Sprintf("%s not found after %v", a.Classes[next], a.Classes[:next]),
		Trace:    trace,
	}
}

func assertTraceCount(trace []TraceEvent, a Assertion) error {
	count := 0
	for _, ev := range trace {
		if ev.Class == a.Class {
			count++
		}
	}
	if count != a.Count {
		return &AssertionError{
			Type:     AssertTraceCount,
			Expected: fmt.Sprintf("%d occurrences of %s", a.Count, a.Class),
			Actual:   fmt.Sprintf("%d occurrences", count),
			Trace:    trace,
		}
	}
	return nil
}
