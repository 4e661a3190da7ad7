package embedding

import (
	"encoding/json"
	"reflect"
)

// Kind tells commands from events.
type Kind int

const (
	KindNone Kind = iota
	KindCommand
	KindEvent
)

func (k Kind) String() string {
	switch k {
	case KindCommand:
		return "command"
	case KindEvent:
		return "event"
	}
	return "none"
}

// Envelope is implemented by Message and by every typed command and event.
type Envelope interface {
	// Kind reports whether the envelope is a command, an event or neither.
	Kind() Kind
	// TypeName returns the commandType or eventType literal.
	TypeName() string
	// Correlation returns the correlationId, or "" when absent.
	Correlation() string
}

// Message is the untyped envelope record. A message with neither
// commandType nor eventType is empty and matches no predicate; when both are
// present commandType wins.
type Message struct {
	CommandType   string          `json:"commandType,omitempty"`
	EventType     string          `json:"eventType,omitempty"`
	CorrelationID string          `json:"correlationId,omitempty"`
	Payload       json.RawMessage `json:"payload,omitempty"`
}

// Kind implements Envelope.
func (m Message) Kind() Kind {
	switch {
	case m.CommandType != "":
		return KindCommand
	case m.EventType != "":
		return KindEvent
	}
	return KindNone
}

// TypeName implements Envelope.
func (m Message) TypeName() string {
	if m.CommandType != "" {
		return m.CommandType
	}
	return m.EventType
}

// Correlation implements Envelope.
func (m Message) Correlation() string { return m.CorrelationID }

// HasPayload reports whether the message carries a non-null payload.
func (m Message) HasPayload() bool {
	return len(m.Payload) > 0 && string(m.Payload) != "null"
}

// ObjectMeta identifies a saved insight or dashboard.
type ObjectMeta struct {
	Identifier string `json:"identifier"`
	URI        string `json:"uri"`
	Title      string `json:"title"`
}

// IsCommand reports whether e is a command whose commandType equals commandType.
func IsCommand(e Envelope, commandType string) bool {
	return !empty(e) && e.Kind() == KindCommand && e.TypeName() == commandType
}

// IsEvent reports whether e is an event whose eventType equals eventType.
func IsEvent(e Envelope, eventType string) bool {
	return !empty(e) && e.Kind() == KindEvent && e.TypeName() == eventType
}

// empty reports whether e is nil, a nil pointer or carries no type literal.
func empty(e Envelope) bool {
	if e == nil {
		return true
	}
	if v := reflect.ValueOf(e); v.Kind() == reflect.Pointer && v.IsNil() {
		return true
	}
	return e.Kind() == KindNone || e.TypeName() == ""
}
