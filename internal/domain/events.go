package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventRowsLoaded          EventType = "RowsLoaded"
	EventRowDeleted          EventType = "RowDeleted"
	EventStatusChanged       EventType = "StatusChanged"
	EventBulkActionCompleted EventType = "BulkActionCompleted"
	EventNotificationPosted  EventType = "NotificationPosted"
	EventError               EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// RowsLoadedEvent is emitted when the list has been (re)fetched from the backend
type RowsLoadedEvent struct {
	Resource string
	Count    int
}

func (e RowsLoadedEvent) Type() EventType { return EventRowsLoaded }

// RowDeletedEvent is emitted after the backend confirmed a delete
type RowDeletedEvent struct {
	Resource string
	ID       string
}

func (e RowDeletedEvent) Type() EventType { return EventRowDeleted }

// StatusChangedEvent is emitted when a status toggle settles
type StatusChangedEvent struct {
	Resource string
	ID       string
	Status   string
	Reverted bool // true when the backend rejected the change
}

func (e StatusChangedEvent) Type() EventType { return EventStatusChanged }

// BulkActionCompletedEvent is emitted when a bulk action finishes
type BulkActionCompletedEvent struct {
	Resource string
	Action   string
	IDs      []string
	Success  bool
}

func (e BulkActionCompletedEvent) Type() EventType { return EventBulkActionCompleted }

// NotificationPostedEvent mirrors every notification shown to the user
type NotificationPostedEvent struct {
	Notification Notification
}

func (e NotificationPostedEvent) Type() EventType { return EventNotificationPosted }

// ErrorEvent is emitted when a backend call fails
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
