// Package ad holds the command and event envelopes of the embedded
// Analytical Designer.
//
// Commands:
//
//   - Save and SaveAs store the open insight under a title. Save fails when
//     the insight is empty or in error; SaveAs also creates a new insight
//     when the open one was saved before.
//   - Export downloads the insight data. It fails while the insight is not
//     yet saved or cannot be exported.
//   - Undo and Redo step through the edit history and fail when no step is
//     available.
//
// Every success event lists the commands that are valid to send next in
// availableCommands. Failures arrive as CommandFailed with one of the
// ErrorCode values.
package ad

import "github.com/roach88/afmkit/embedding"

// CommandType is an Analytical Designer command literal.
type CommandType string

const (
	CommandSave   CommandType = "adSave"
	CommandSaveAs CommandType = "adSaveAs"
	CommandExport CommandType = "adExport"
	CommandUndo   CommandType = "adUndo"
	CommandRedo   CommandType = "adRedo"
)

// EventType is an Analytical Designer event literal.
type EventType string

const (
	EventNewInsightInitialized EventType = "adNewInsightInitialized"
	EventInsightOpened         EventType = "adInsightOpened"
	EventInsightSaved          EventType = "adInsightSaved"
	EventUndoFinished          EventType = "adUndoFinished"
	EventRedoFinished          EventType = "adRedoFinished"
	EventExportFinished        EventType = "adExportFinished"
)

// ErrorCode is the error code carried by an Analytical Designer CommandFailed.
type ErrorCode string

const (
	ErrorInvalidCommand  ErrorCode = "adError:invalidCommand"
	ErrorInvalidArgument ErrorCode = "adError:invalidArgument"
	ErrorInvalidState    ErrorCode = "adError:invalidState"
	ErrorRuntime         ErrorCode = "adError:runtime"
)

// CommandFailed is the failure event of the Analytical Designer.
type CommandFailed = embedding.CommandFailed[ErrorCode]

// NewCommandFailed returns a failure event.
func NewCommandFailed(code ErrorCode, message, correlationID string) CommandFailed {
	return embedding.NewCommandFailed(code, message, correlationID)
}

var commandNames = map[CommandType]string{
	CommandSave:   "save",
	CommandSaveAs: "saveAs",
	CommandExport: "export",
	CommandUndo:   "undo",
	CommandRedo:   "redo",
}

var eventNames = map[EventType]string{
	EventNewInsightInitialized: "newInsightInitialized",
	EventInsightOpened:         "insightOpened",
	EventInsightSaved:          "insightSaved",
	EventUndoFinished:          "undoFinished",
	EventRedoFinished:          "redoFinished",
	EventExportFinished:        "exportFinished",
}

// Classify names the Analytical Designer variant of e, such as
// "ad.command.save" or "ad.event.insightSaved". It reports false for
// envelopes of other applications and for CommandFailed.
func Classify(e embedding.Envelope) (string, bool) {
	for t, name := range commandNames {
		if embedding.IsCommand(e, string(t)) {
			return "ad.command." + name, true
		}
	}
	for t, name := range eventNames {
		if embedding.IsEvent(e, string(t)) {
			return "ad.event." + name, true
		}
	}
	return "", false
}
