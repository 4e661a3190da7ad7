package embedding

// Command is a command without payload.
type Command[T ~string] struct {
	CommandType   T      `json:"commandType"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// NewCommand returns a command of type t.
func NewCommand[T ~string](t T, correlationID string) Command[T] {
	return Command[T]{CommandType: t, CorrelationID: correlationID}
}

// Kind implements Envelope. A command with an empty type is KindNone.
func (c Command[T]) Kind() Kind {
	if c.CommandType == "" {
		return KindNone
	}
	return KindCommand
}

// TypeName implements Envelope.
func (c Command[T]) TypeName() string { return string(c.CommandType) }

// Correlation implements Envelope.
func (c Command[T]) Correlation() string { return c.CorrelationID }

// CommandWithPayload is a command carrying payload P.
type CommandWithPayload[T ~string, P any] struct {
	CommandType   T      `json:"commandType"`
	CorrelationID string `json:"correlationId,omitempty"`
	Payload       P      `json:"payload"`
}

// NewCommandWithPayload returns a command of type t carrying payload.
func NewCommandWithPayload[T ~string, P any](t T, payload P, correlationID string) CommandWithPayload[T, P] {
	return CommandWithPayload[T, P]{CommandType: t, CorrelationID: correlationID, Payload: payload}
}

// Kind implements Envelope. A command with an empty type is KindNone.
func (c CommandWithPayload[T, P]) Kind() Kind {
	if c.CommandType == "" {
		return KindNone
	}
	return KindCommand
}

// TypeName implements Envelope.
func (c CommandWithPayload[T, P]) TypeName() string { return string(c.CommandType) }

// Correlation implements Envelope.
func (c CommandWithPayload[T, P]) Correlation() string { return c.CorrelationID }
