package embedding

// Event is an event without payload.
type Event[T ~string] struct {
	EventType     T      `json:"eventType"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// NewEvent returns an event of type t.
func NewEvent[T ~string](t T, correlationID string) Event[T] {
	return Event[T]{EventType: t, CorrelationID: correlationID}
}

// Kind implements Envelope. An event with an empty type is KindNone.
func (e Event[T]) Kind() Kind {
	if e.EventType == "" {
		return KindNone
	}
	return KindEvent
}

// TypeName implements Envelope.
func (e Event[T]) TypeName() string { return string(e.EventType) }

// Correlation implements Envelope.
func (e Event[T]) Correlation() string { return e.CorrelationID }

// EventWithPayload is an event carrying payload P.
type EventWithPayload[T ~string, P any] struct {
	EventType     T      `json:"eventType"`
	CorrelationID string `json:"correlationId,omitempty"`
	Payload       P      `json:"payload"`
}

// NewEventWithPayload returns an event of type t carrying payload.
func NewEventWithPayload[T ~string, P any](t T, payload P, correlationID string) EventWithPayload[T, P] {
	return EventWithPayload[T, P]{EventType: t, CorrelationID: correlationID, Payload: payload}
}

// Kind implements Envelope. An event with an empty type is KindNone.
func (e EventWithPayload[T, P]) Kind() Kind {
	if e.EventType == "" {
		return KindNone
	}
	return KindEvent
}

// TypeName implements Envelope.
func (e EventWithPayload[T, P]) TypeName() string { return string(e.EventType) }

// Correlation implements Envelope.
func (e EventWithPayload[T, P]) Correlation() string { return e.CorrelationID }
