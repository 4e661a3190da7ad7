package embedding

// CommandFailedEventType is the eventType shared by every application's
// failure event.
const CommandFailedEventType = "appCommandFailed"

// CommandFailedPayload describes why a command failed. E is the error code
// enumeration of the application.
type CommandFailedPayload[E ~string] struct {
	ErrorCode    E      `json:"errorCode"`
	ErrorMessage string `json:"errorMessage"`
}

// CommandFailed is emitted when a command is malformed, invalid or sent
// while the application is in an incompatible state.
type CommandFailed[E ~string] = EventWithPayload[string, CommandFailedPayload[E]]

// NewCommandFailed returns a failure event with the given code and message.
func NewCommandFailed[E ~string](code E, message, correlationID string) CommandFailed[E] {
	return NewEventWithPayload(CommandFailedEventType, CommandFailedPayload[E]{
		ErrorCode:    code,
		ErrorMessage: message,
	}, correlationID)
}

// IsCommandFailed reports whether e is a failure event, whichever
// application emitted it.
func IsCommandFailed(e Envelope) bool {
	return IsEvent(e, CommandFailedEventType)
}
