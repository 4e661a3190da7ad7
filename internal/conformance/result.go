package conformance

// TraceEvent is one replayed message.
type TraceEvent struct {
	Seq           int64  `json:"seq"`
	Kind          string `json:"kind"`
	Type          string `json:"type,omitempty"`
	Class         string `json:"class"`
	CorrelationID string `json:"correlationId,omitempty"`

	// Resolves is the class of the pending command this event answered.
	Resolves string `json:"resolves,omitempty"`
}

// Result is the outcome of a scenario run.
type Result struct {
	Pass   bool         `json:"pass"`
	Trace  []TraceEvent `json:"trace"`
	Errors []string     `json:"errors,omitempty"`

	// Pending is the number of commands still unanswered after the last message.
	Pending int `json:"pending"`
}

// NewResult returns a passing result with an empty trace.
func NewResult() *Result {
	return &Result{Pass: true, Trace: []TraceEvent{}}
}

// AddError records a failure.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}
