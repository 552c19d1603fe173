package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventDialogOpened EventType = "DialogOpened"
	EventDialogClosed EventType = "DialogClosed"
	EventGroupSaved   EventType = "GroupSaved"
	EventError        EventType = "Error"
	EventConfigLoaded EventType = "ConfigLoaded"
	EventConfigSaved  EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// DialogOpenedEvent is emitted once the group dialog is shown
type DialogOpenedEvent struct {
	Mode Mode
}

func (e DialogOpenedEvent) Type() EventType { return EventDialogOpened }

// DialogClosedEvent is emitted when the group dialog goes away, saved or not
type DialogClosedEvent struct {
	Mode Mode
}

func (e DialogClosedEvent) Type() EventType { return EventDialogClosed }

// GroupSavedEvent is emitted once per successful save, after the dialog is hidden
type GroupSavedEvent struct {
	Mode   Mode
	Record *GroupRecord
}

func (e GroupSavedEvent) Type() EventType { return EventGroupSaved }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
