package kd

import (
	"encoding/json"
	"fmt"

	"github.com/roach88/afmkit/embedding"
	"github.com/roach88/afmkit/internal/union"
)

// SavePayload names the dashboard being saved.
type SavePayload struct {
	Title string `json:"title"`
}

// AddWidgetPayload carries the widget to add.
type AddWidgetPayload struct {
	Widget Widget `json:"widget"`
}

// UnmarshalJSON implements json.Unmarshaler for AddWidgetPayload.
func (p *AddWidgetPayload) UnmarshalJSON(data []byte) error {
	var aux struct {
		Widget json.RawMessage `json:"widget"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return fmt.Errorf("addWidget payload: %w", err)
	}

	var w Widget
	if !union.Absent(aux.Widget) {
		var err error
		if w, err = UnmarshalWidget(aux.Widget); err != nil {
			return err
		}
	}

	*p = AddWidgetPayload{Widget: w}
	return nil
}

type (
	// SwitchToEditCommand enters edit mode.
	SwitchToEditCommand = embedding.Command[CommandType]
	// CancelEditCommand leaves edit mode, dropping unsaved changes.
	CancelEditCommand = embedding.Command[CommandType]
	// DeleteDashboardCommand deletes the open dashboard.
	DeleteDashboardCommand = embedding.Command[CommandType]
	// SaveCommand saves the dashboard under a title.
	SaveCommand = embedding.CommandWithPayload[CommandType, SavePayload]
	// AddWidgetCommand adds a KPI or insight widget.
	AddWidgetCommand = embedding.CommandWithPayload[CommandType, AddWidgetPayload]
	// AddFilterCommand adds an attribute filter for the user to configure.
	AddFilterCommand = embedding.Command[CommandType]
)

// SwitchToEdit returns a kdSwitchToEdit command.
func SwitchToEdit(correlationID string) SwitchToEditCommand {
	return embedding.NewCommand(CommandSwitchToEdit, correlationID)
}

// CancelEdit returns a kdCancelEdit command.
func CancelEdit(correlationID string) CancelEditCommand {
	return embedding.NewCommand(CommandCancelEdit, correlationID)
}

// DeleteDashboard returns a kdDeleteDashboard command.
func DeleteDashboard(correlationID string) DeleteDashboardCommand {
	return embedding.NewCommand(CommandDeleteDashboard, correlationID)
}

// Save returns a kdSave command saving the dashboard under title.
func Save(title, correlationID string) SaveCommand {
	return embedding.NewCommandWithPayload(CommandSave, SavePayload{Title: title}, correlationID)
}

// AddKpi returns a kdAddWidget command adding a KPI widget.
func AddKpi(correlationID string) AddWidgetCommand {
	return embedding.NewCommandWithPayload(CommandAddWidget, AddWidgetPayload{Widget: KpiWidget{}}, correlationID)
}

// AddInsight returns a kdAddWidget command adding the referenced insight.
func AddInsight(ref InsightRef, correlationID string) AddWidgetCommand {
	return embedding.NewCommandWithPayload(CommandAddWidget, AddWidgetPayload{Widget: InsightWidget{Ref: ref}}, correlationID)
}

// AddFilter returns a kdAddFilter command.
func AddFilter(correlationID string) AddFilterCommand {
	return embedding.NewCommand(CommandAddFilter, correlationID)
}

// IsSwitchToEditCommand reports whether e is a kdSwitchToEdit command.
func IsSwitchToEditCommand(e embedding.Envelope) bool {
	return embedding.IsCommand(e, string(CommandSwitchToEdit))
}

// IsCancelEditCommand reports whether e is a kdCancelEdit command.
func IsCancelEditCommand(e embedding.Envelope) bool {
	return embedding.IsCommand(e, string(CommandCancelEdit))
}

// IsDeleteDashboardCommand reports whether e is a kdDeleteDashboard command.
func IsDeleteDashboardCommand(e embedding.Envelope) bool {
	return embedding.IsCommand(e, string(CommandDeleteDashboard))
}

// IsSaveCommand reports whether e is a kdSave command.
func IsSaveCommand(e embedding.Envelope) bool {
	return embedding.IsCommand(e, string(CommandSave))
}

// IsAddWidgetCommand reports whether e is a kdAddWidget command, KPI or insight.
func IsAddWidgetCommand(e embedding.Envelope) bool {
	return embedding.IsCommand(e, string(CommandAddWidget))
}

// IsAddFilterCommand reports whether e is a kdAddFilter command.
func IsAddFilterCommand(e embedding.Envelope) bool {
	return embedding.IsCommand(e, string(CommandAddFilter))
}
