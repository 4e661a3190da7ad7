// Package schema checks raw execution and message documents against the
// embedded CUE schema before they are decoded.
package schema

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/errors"
	cuejson "cuelang.org/go/encoding/json"
)

// Issue codes (E200-E299).
const (
	ErrNotJSON         = "E201" // document is not valid JSON
	ErrSchemaViolation = "E202" // document does not match the schema
)

//go:embed afm.cue
var source string

// Issue is one schema problem found in a document.
type Issue struct {
	Code    string `json:"code"`
	Field   string `json:"field"`
	Message string `json:"message"`
	Line    int    `json:"line,omitempty"`
	Column  int    `json:"column,omitempty"`
}

// Error implements the error interface.
func (i Issue) Error() string {
	if i.Line > 0 {
		return fmt.Sprintf("[%s] line %d:%d: %s: %s", i.Code, i.Line, i.Column, i.Field, i.Message)
	}
	return fmt.Sprintf("[%s] %s: %s", i.Code, i.Field, i.Message)
}

// Checker holds the compiled schema. A cue.Context is not safe for
// concurrent use, so checks are serialized.
type Checker struct {
	mu        sync.Mutex
	ctx       *cue.Context
	execution cue.Value
	message   cue.Value
}

// New compiles the embedded schema.
func New() (*Checker, error) {
	ctx := cuecontext.New()
	v := ctx.CompileString(source, cue.Filename("afm.cue"))
	if err := v.Err(); err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return &Checker{
		ctx:       ctx,
		execution: v.LookupPath(cue.ParsePath("#Execution")),
		message:   v.LookupPath(cue.ParsePath("#Message")),
	}, nil
}

var defaultChecker = sync.OnceValues(New)

// CheckExecution checks an execution document using the default checker.
func CheckExecution(name string, data []byte) []Issue {
	c, err := defaultChecker()
	if err != nil {
		return []Issue{{Code: ErrSchemaViolation, Field: "schema", Message: err.Error()}}
	}
	return c.CheckExecution(name, data)
}

// CheckMessage checks a single embedding message using the default checker.
func CheckMessage(name string, data []byte) []Issue {
	c, err := defaultChecker()
	if err != nil {
		return []Issue{{Code: ErrSchemaViolation, Field: "schema", Message: err.Error()}}
	}
	return c.CheckMessage(name, data)
}

// CheckExecution reports every way data fails to be an execution.
func (c *Checker) CheckExecution(name string, data []byte) []Issue {
	return c.check(c.execution, name, data)
}

// CheckMessage reports every way data fails to be a command or event envelope.
func (c *Checker) CheckMessage(name string, data []byte) []Issue {
	return c.check(c.message, name, data)
}

func (c *Checker) check(def cue.Value, name string, data []byte) []Issue {
	c.mu.Lock()
	defer c.mu.Unlock()

	expr, err := cuejson.Extract(name, data)
	if err != nil {
		return []Issue{{Code: ErrNotJSON, Field: name, Message: err.Error()}}
	}
	doc := c.ctx.BuildExpr(expr)
	if err := doc.Err(); err != nil {
		return []Issue{{Code: ErrNotJSON, Field: name, Message: err.Error()}}
	}

	unified := def.Unify(doc)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return issuesFrom(name, err)
	}
	return nil
}

// issuesFrom flattens a CUE error into one issue per distinct path and
// message, positioned in the checked document rather than in the schema.
func issuesFrom(name string, err error) []Issue {
	var issues []Issue
	seen := make(map[string]bool)
	for _, e := range errors.Errors(err) {
		format, args := e.Msg()
		issue := Issue{
			Code:    ErrSchemaViolation,
			Field:   strings.Join(e.Path(), "."),
			Message: fmt.Sprintf(format, args...),
		}
		for _, pos := range errors.Positions(e) {
			if pos.Filename() == name {
				issue.Line = pos.Line()
				issue.Column = pos.Column()
				break
			}
		}
		key := issue.Field + "\x00" + issue.Message
		if seen[key] {
			continue
		}
		seen[key] = true
		issues = append(issues, issue)
	}
	return issues
}
