// Package kd holds the command and event envelopes of the embedded KPI
// Dashboards application.
//
// Editing commands (Save, CancelEdit, AddWidget, AddFilter) are valid only
// in edit mode, which SwitchToEdit enters. DeleteDashboard fails for a
// dashboard that was never saved. The application reports each rejected
// command with CommandFailed.
package kd

import "github.com/roach88/afmkit/embedding"

// CommandType is a KPI Dashboards command literal.
type CommandType string

const (
	CommandSwitchToEdit    CommandType = "kdSwitchToEdit"
	CommandDeleteDashboard CommandType = "kdDeleteDashboard"
	CommandCancelEdit      CommandType = "kdCancelEdit"
	CommandSave            CommandType = "kdSave"
	CommandAddWidget       CommandType = "kdAddWidget"
	CommandAddFilter       CommandType = "kdAddFilter"
)

// EventType is a KPI Dashboards event literal.
type EventType string

const (
	EventDashboardLoaded  EventType = "kdDashboardLoaded"
	EventSwitchedToEdit   EventType = "kdSwitchedToEdit"
	EventSwitchedToView   EventType = "kdSwitchedToView"
	EventDashboardSaved   EventType = "kdDashboardSaved"
	EventDashboardDeleted EventType = "kdDashboardDeleted"
	EventWidgetAdded      EventType = "kdWidgetAdded"
	EventFilterAdded      EventType = "kdFilterAdded"
)

// ErrorCode is the error code carried by a KPI Dashboards CommandFailed.
type ErrorCode string

const (
	ErrorInvalidCommand  ErrorCode = "kdError:invalidCommand"
	ErrorInvalidArgument ErrorCode = "kdError:invalidArgument"
	ErrorInvalidState    ErrorCode = "kdError:invalidState"
	ErrorRuntime         ErrorCode = "kdError:runtime"
)

// CommandFailed is the failure event of KPI Dashboards.
type CommandFailed = embedding.CommandFailed[ErrorCode]

// NewCommandFailed returns a failure event.
func NewCommandFailed(code ErrorCode, message, correlationID string) CommandFailed {
	return embedding.NewCommandFailed(code, message, correlationID)
}

var commandNames = map[CommandType]string{
	CommandSwitchToEdit:    "switchToEdit",
	CommandDeleteDashboard: "deleteDashboard",
	CommandCancelEdit:      "cancelEdit",
	CommandSave:            "save",
	CommandAddWidget:       "addWidget",
	CommandAddFilter:       "addFilter",
}

var eventNames = map[EventType]string{
	EventDashboardLoaded:  "dashboardLoaded",
	EventSwitchedToEdit:   "switchedToEdit",
	EventSwitchedToView:   "switchedToView",
	EventDashboardSaved:   "dashboardSaved",
	EventDashboardDeleted: "dashboardDeleted",
	EventWidgetAdded:      "widgetAdded",
	EventFilterAdded:      "filterAdded",
}

// Classify names the KPI Dashboards variant of e, such as "kd.command.save"
// or "kd.event.widgetAdded". It reports false for envelopes of other
// applications and for CommandFailed.
func Classify(e embedding.Envelope) (string, bool) {
	for t, name := range commandNames {
		if embedding.IsCommand(e, string(t)) {
			return "kd.command." + name, true
		}
	}
	for t, name := range eventNames {
		if embedding.IsEvent(e, string(t)) {
			return "kd.event." + name, true
		}
	}
	return "", false
}
