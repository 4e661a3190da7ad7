package ad

import "github.com/roach88/afmkit/embedding"

// SavePayload names the insight being saved.
type SavePayload struct {
	Title string `json:"title"`
}

// SaveCommand saves the open insight.
type SaveCommand = embedding.CommandWithPayload[CommandType, SavePayload]

// SaveAsCommand saves the open insight as a new one.
type SaveAsCommand = embedding.CommandWithPayload[CommandType, SavePayload]

// ExportFormat is the file format of an export.
type ExportFormat string

const (
	ExportXLSX ExportFormat = "xlsx"
	ExportCSV  ExportFormat = "csv"
	ExportRaw  ExportFormat = "raw"
)

// ExportConfig tunes an export. Unset fields take the application defaults.
type ExportConfig struct {
	Format               ExportFormat `json:"format,omitempty"`
	MergeHeaders         *bool        `json:"mergeHeaders,omitempty"`
	IncludeFilterContext *bool        `json:"includeFilterContext,omitempty"`
	Title                string       `json:"title,omitempty"`
}

// ExportPayload carries the export configuration.
type ExportPayload struct {
	Config ExportConfig `json:"config"`
}

// ExportCommand exports the open insight.
type ExportCommand = embedding.CommandWithPayload[CommandType, ExportPayload]

// UndoCommand reverts the last change.
type UndoCommand = embedding.Command[CommandType]

// RedoCommand reapplies the last reverted change.
type RedoCommand = embedding.Command[CommandType]

// SaveInsight returns a command saving the open insight under title.
func SaveInsight(title, correlationID string) SaveCommand {
	return embedding.NewCommandWithPayload(CommandSave, SavePayload{Title: title}, correlationID)
}

// SaveAsInsight returns a command saving the open insight as a new insight titled title.
func SaveAsInsight(title, correlationID string) SaveAsCommand {
	return embedding.NewCommandWithPayload(CommandSaveAs, SavePayload{Title: title}, correlationID)
}

// ExportInsight returns a command exporting the open insight.
func ExportInsight(config ExportConfig, correlationID string) ExportCommand {
	return embedding.NewCommandWithPayload(CommandExport, ExportPayload{Config: config}, correlationID)
}

// Undo returns an undo command.
func Undo(correlationID string) UndoCommand {
	return embedding.NewCommand(CommandUndo, correlationID)
}

// Redo returns a redo command.
func Redo(correlationID string) RedoCommand {
	return embedding.NewCommand(CommandRedo, correlationID)
}

// IsSaveCommand reports whether e is an adSave command.
func IsSaveCommand(e embedding.Envelope) bool {
	return embedding.IsCommand(e, string(CommandSave))
}

// IsSaveAsCommand reports whether e is an adSaveAs command.
func IsSaveAsCommand(e embedding.Envelope) bool {
	return embedding.IsCommand(e, string(CommandSaveAs))
}

// IsExportCommand reports whether e is an adExport command.
func IsExportCommand(e embedding.Envelope) bool {
	return embedding.IsCommand(e, string(CommandExport))
}

// IsUndoCommand reports whether e is an adUndo command.
func IsUndoCommand(e embedding.Envelope) bool {
	return embedding.IsCommand(e, string(CommandUndo))
}

// IsRedoCommand reports whether e is an adRedo command.
func IsRedoCommand(e embedding.Envelope) bool {
	return embedding.IsCommand(e, string(CommandRedo))
}
