package kd

import "github.com/roach88/afmkit/embedding"

// AvailableCommandsPayload is the payload of events that carry nothing but
// the commands valid to send next.
type AvailableCommandsPayload struct {
	AvailableCommands []CommandType `json:"availableCommands"`
}

// DashboardLoadedPayload describes the dashboard shown after load. Dashboard
// is nil for a new, unsaved dashboard.
type DashboardLoadedPayload struct {
	Project           string                `json:"project"`
	Dashboard         *embedding.ObjectMeta `json:"dashboard,omitempty"`
	IsReadOnly        bool                  `json:"isReadOnly,omitempty"`
	AvailableCommands []CommandType         `json:"availableCommands"`
}

// DashboardPayload identifies a saved or deleted dashboard.
type DashboardPayload struct {
	Dashboard         embedding.ObjectMeta `json:"dashboard"`
	AvailableCommands []CommandType        `json:"availableCommands"`
}

type (
	// DashboardLoadedEvent is emitted once the dashboard is rendered.
	DashboardLoadedEvent = embedding.EventWithPayload[EventType, DashboardLoadedPayload]
	// SwitchedToEditEvent answers SwitchToEdit.
	SwitchedToEditEvent = embedding.EventWithPayload[EventType, AvailableCommandsPayload]
	// SwitchedToViewEvent answers CancelEdit and a successful Save.
	SwitchedToViewEvent = embedding.EventWithPayload[EventType, AvailableCommandsPayload]
	// DashboardSavedEvent answers Save.
	DashboardSavedEvent = embedding.EventWithPayload[EventType, DashboardPayload]
	// DashboardDeletedEvent answers DeleteDashboard.
	DashboardDeletedEvent = embedding.EventWithPayload[EventType, DashboardPayload]
	// WidgetAddedEvent answers AddWidget.
	WidgetAddedEvent = embedding.EventWithPayload[EventType, AvailableCommandsPayload]
	// FilterAddedEvent answers AddFilter.
	FilterAddedEvent = embedding.EventWithPayload[EventType, AvailableCommandsPayload]
)

func available(commands []CommandType) []CommandType {
	if commands == nil {
		return []CommandType{}
	}
	return commands
}

func availableOnly(t EventType, commands []CommandType, correlationID string) embedding.EventWithPayload[EventType, AvailableCommandsPayload] {
	return embedding.NewEventWithPayload(t, AvailableCommandsPayload{AvailableCommands: available(commands)}, correlationID)
}

// DashboardLoaded returns a kdDashboardLoaded event.
func DashboardLoaded(project string, dashboard *embedding.ObjectMeta, availableCommands []CommandType, correlationID string) DashboardLoadedEvent {
	return embedding.NewEventWithPayload(EventDashboardLoaded, DashboardLoadedPayload{
		Project:           project,
		Dashboard:         dashboard,
		AvailableCommands: available(availableCommands),
	}, correlationID)
}

// SwitchedToEdit returns a kdSwitchedToEdit event.
func SwitchedToEdit(availableCommands []CommandType, correlationID string) SwitchedToEditEvent {
	return availableOnly(EventSwitchedToEdit, availableCommands, correlationID)
}

// SwitchedToView returns a kdSwitchedToView event.
func SwitchedToView(availableCommands []CommandType, correlationID string) SwitchedToViewEvent {
	return availableOnly(EventSwitchedToView, availableCommands, correlationID)
}

// DashboardSaved returns a kdDashboardSaved event.
func DashboardSaved(dashboard embedding.ObjectMeta, availableCommands []CommandType, correlationID string) DashboardSavedEvent {
	return embedding.NewEventWithPayload(EventDashboardSaved,
		DashboardPayload{Dashboard: dashboard, AvailableCommands: available(availableCommands)}, correlationID)
}

// DashboardDeleted returns a kdDashboardDeleted event.
func DashboardDeleted(dashboard embedding.ObjectMeta, availableCommands []CommandType, correlationID string) DashboardDeletedEvent {
	return embedding.NewEventWithPayload(EventDashboardDeleted,
		DashboardPayload{Dashboard: dashboard, AvailableCommands: available(availableCommands)}, correlationID)
}

// WidgetAdded returns a kdWidgetAdded event.
func WidgetAdded(availableCommands []CommandType, correlationID string) WidgetAddedEvent {
	return availableOnly(EventWidgetAdded, availableCommands, correlationID)
}

// FilterAdded returns a kdFilterAdded event.
func FilterAdded(availableCommands []CommandType, correlationID string) FilterAddedEvent {
	return availableOnly(EventFilterAdded, availableCommands, correlationID)
}

// IsDashboardLoadedEvent reports whether e is a kdDashboardLoaded event.
func IsDashboardLoadedEvent(e embedding.Envelope) bool {
	return embedding.IsEvent(e, string(EventDashboardLoaded))
}

// IsSwitchedToEditEvent reports whether e is a kdSwitchedToEdit event.
func IsSwitchedToEditEvent(e embedding.Envelope) bool {
	return embedding.IsEvent(e, string(EventSwitchedToEdit))
}

// IsSwitchedToViewEvent reports whether e is a kdSwitchedToView event.
func IsSwitchedToViewEvent(e embedding.Envelope) bool {
	return embedding.IsEvent(e, string(EventSwitchedToView))
}

// IsDashboardSavedEvent reports whether e is a kdDashboardSaved event.
func IsDashboardSavedEvent(e embedding.Envelope) bool {
	return embedding.IsEvent(e, string(EventDashboardSaved))
}

// IsDashboardDeletedEvent reports whether e is a kdDashboardDeleted event.
func IsDashboardDeletedEvent(e embedding.Envelope) bool {
	return embedding.IsEvent(e, string(EventDashboardDeleted))
}

// IsWidgetAddedEvent reports whether e is a kdWidgetAdded event.
func IsWidgetAddedEvent(e embedding.Envelope) bool {
	return embedding.IsEvent(e, string(EventWidgetAdded))
}

// IsFilterAddedEvent reports whether e is a kdFilterAdded event.
func IsFilterAddedEvent(e embedding.Envelope) bool {
	return embedding.IsEvent(e, string(EventFilterAdded))
}
