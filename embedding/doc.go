// Package embedding defines the message envelopes exchanged with an embedded
// analytical application over a cross-frame messaging channel.
//
// Commands travel into the application:
//
//	{"commandType": "adSave", "correlationId": "c-1", "payload": {"title": "Revenue"}}
//
// Events travel out of it:
//
//	{"eventType": "adInsightSaved", "correlationId": "c-1", "payload": {...}}
//
// The application echoes a command's correlationId on the event the command
// produces. When a command cannot be carried out the application answers with
// the shared "appCommandFailed" event (CommandFailed).
//
// Message is the untyped form of any envelope; Decode produces it from raw
// bytes. Command, CommandWithPayload, Event and EventWithPayload are the typed
// forms built by the factories of the application packages (embedding/ad and
// embedding/kd). All of them implement Envelope, which is what the IsX
// predicates accept. Predicates check that the envelope is non-empty and that
// its commandType or eventType equals the expected literal; payloads are never
// inspected.
package embedding
