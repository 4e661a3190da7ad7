// Package lint checks the consumer-side obligations of an afm.Execution
// that its types cannot express: required fields, unique local identifiers,
// resolvable references, known enum values and arithmetic operand counts.
//
// Check is pure and reports every issue it finds instead of stopping at
// the first.
package lint

import (
	"fmt"

	"github.com/roach88/afmkit/afm"
)

// Issue codes (E100-E199).
const (
	ErrRequired        = "E101" // required field missing
	ErrDuplicateID     = "E102" // localIdentifier used twice
	ErrUnresolvedRef   = "E103" // reference to an unknown attribute or measure
	ErrInvalidEnum     = "E104" // value outside its enumeration
	ErrOperandCount    = "E105" // wrong number of arithmetic operands
	ErrCyclicReference = "E106" // derived measures reference each other in a cycle
)

// Issue is one problem found in an execution.
type Issue struct {
	Code    string `json:"code"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (i Issue) Error() string {
	return fmt.Sprintf("[%s] %s: %s", i.Code, i.Field, i.Message)
}

// Check returns all issues of exec, or nil when there are none.
func Check(exec afm.Execution) []Issue {
	l := &linter{
		attributes: make(map[string]bool),
		measures:   make(map[string]bool),
	}

	l.checkRequired(exec)
	l.collectIdentifiers(exec.AFM)
	l.checkMeasures(exec.AFM)
	l.checkFilters("afm.filters", exec.AFM.Filters)
	l.checkNativeTotals(exec.AFM.NativeTotals)
	if exec.ResultSpec != nil {
		l.checkResultSpec(*exec.ResultSpec)
	}
	l.checkCycles(exec.AFM.Measures)

	return l.issues
}

// linter accumulates issues during traversal.
type linter struct {
	issues     []Issue
	attributes map[string]bool
	measures   map[string]bool
}

func (l *linter) add(code, field, format string, args ...any) {
	l.issues = append(l.issues, Issue{Code: code, Field: field, Message: fmt.Sprintf(format, args...)})
}

// collectIdentifiers indexes attribute and measure local identifiers, which
// share one namespace.
func (l *linter) collectIdentifiers(a afm.AFM) {
	seen := make(map[string]string)
	record := func(id, field string) bool {
		if id == "" {
			return false
		}
		if first, dup := seen[id]; dup {
			l.add(ErrDuplicateID, field, "localIdentifier %q already used by %s", id, first)
			return false
		}
		seen[id] = field
		return true
	}

	for i, attr := range a.Attributes {
		if record(attr.LocalIdentifier, fmt.Sprintf("afm.attributes[%d]", i)) {
			l.attributes[attr.LocalIdentifier] = true
		}
	}
	for i, m := range a.Measures {
		if record(m.LocalIdentifier, fmt.Sprintf("afm.measures[%d]", i)) {
			l.measures[m.LocalIdentifier] = true
		}
	}
}
