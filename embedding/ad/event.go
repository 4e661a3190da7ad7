package ad

import "github.com/roach88/afmkit/embedding"

// AvailableCommandsPayload is the payload of events that carry nothing but
// the commands valid to send next.
type AvailableCommandsPayload struct {
	AvailableCommands []CommandType `json:"availableCommands"`
}

// InsightPayload identifies an opened or saved insight.
type InsightPayload struct {
	Insight           embedding.ObjectMeta `json:"insight"`
	AvailableCommands []CommandType        `json:"availableCommands"`
}

// ExportFinishedPayload links to the exported file.
type ExportFinishedPayload struct {
	Link              string        `json:"link"`
	AvailableCommands []CommandType `json:"availableCommands"`
}

type (
	// NewInsightInitializedEvent is emitted when an empty insight is ready for editing.
	NewInsightInitializedEvent = embedding.EventWithPayload[EventType, AvailableCommandsPayload]
	// InsightOpenedEvent is emitted when an existing insight is loaded.
	InsightOpenedEvent = embedding.EventWithPayload[EventType, InsightPayload]
	// InsightSavedEvent answers Save and SaveAs.
	InsightSavedEvent = embedding.EventWithPayload[EventType, InsightPayload]
	// UndoFinishedEvent answers Undo.
	UndoFinishedEvent = embedding.EventWithPayload[EventType, AvailableCommandsPayload]
	// RedoFinishedEvent answers Redo.
	RedoFinishedEvent = embedding.EventWithPayload[EventType, AvailableCommandsPayload]
	// ExportFinishedEvent answers Export.
	ExportFinishedEvent = embedding.EventWithPayload[EventType, ExportFinishedPayload]
)

func available(commands []CommandType) []CommandType {
	if commands == nil {
		return []CommandType{}
	}
	return commands
}

// NewInsightInitialized returns an adNewInsightInitialized event.
func NewInsightInitialized(availableCommands []CommandType, correlationID string) NewInsightInitializedEvent {
	return embedding.NewEventWithPayload(EventNewInsightInitialized,
		AvailableCommandsPayload{AvailableCommands: available(availableCommands)}, correlationID)
}

// InsightOpened returns an adInsightOpened event.
func InsightOpened(insight embedding.ObjectMeta, availableCommands []CommandType, correlationID string) InsightOpenedEvent {
	return embedding.NewEventWithPayload(EventInsightOpened,
		InsightPayload{Insight: insight, AvailableCommands: available(availableCommands)}, correlationID)
}

// InsightSaved returns an adInsightSaved event.
func InsightSaved(insight embedding.ObjectMeta, availableCommands []CommandType, correlationID string) InsightSavedEvent {
	return embedding.NewEventWithPayload(EventInsightSaved,
		InsightPayload{Insight: insight, AvailableCommands: available(availableCommands)}, correlationID)
}

// UndoFinished returns an adUndoFinished event.
func UndoFinished(availableCommands []CommandType, correlationID string) UndoFinishedEvent {
	return embedding.NewEventWithPayload(EventUndoFinished,
		AvailableCommandsPayload{AvailableCommands: available(availableCommands)}, correlationID)
}

// RedoFinished returns an adRedoFinished event.
func RedoFinished(availableCommands []CommandType, correlationID string) RedoFinishedEvent {
	return embedding.NewEventWithPayload(EventRedoFinished,
		AvailableCommandsPayload{AvailableCommands: available(availableCommands)}, correlationID)
}

// ExportFinished returns an adExportFinished event.
func ExportFinished(link string, availableCommands []CommandType, correlationID string) ExportFinishedEvent {
	return embedding.NewEventWithPayload(EventExportFinished,
		ExportFinishedPayload{Link: link, AvailableCommands: available(availableCommands)}, correlationID)
}

// IsNewInsightInitializedEvent reports whether e is an adNewInsightInitialized event.
func IsNewInsightInitializedEvent(e embedding.Envelope) bool {
	return embedding.IsEvent(e, string(EventNewInsightInitialized))
}

// IsInsightOpenedEvent reports whether e is an adInsightOpened event.
func IsInsightOpenedEvent(e embedding.Envelope) bool {
	return embedding.IsEvent(e, string(EventInsightOpened))
}

// IsInsightSavedEvent reports whether e is an adInsightSaved event.
func IsInsightSavedEvent(e embedding.Envelope) bool {
	return embedding.IsEvent(e, string(EventInsightSaved))
}

// IsUndoFinishedEvent reports whether e is an adUndoFinished event.
func IsUndoFinishedEvent(e embedding.Envelope) bool {
	return embedding.IsEvent(e, string(EventUndoFinished))
}

// IsRedoFinishedEvent reports whether e is an adRedoFinished event.
func IsRedoFinishedEvent(e embedding.Envelope) bool {
	return embedding.IsEvent(e, string(EventRedoFinished))
}

// IsExportFinishedEvent reports whether e is an adExportFinished event.
func IsExportFinishedEvent(e embedding.Envelope) bool {
	return embedding.IsEvent(e, string(EventExportFinished))
}
