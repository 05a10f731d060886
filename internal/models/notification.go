package models

// Event notification types published on the event-changes topic.
const (
	EventCreated = "event.created"
	EventUpdated = "event.updated"
	EventDeleted = "event.deleted"
)

// EventNotification describes a committed change to an event.
type EventNotification struct {
	NotificationID string `json:"notification_id"` // Unique identifier of this notification
	Type           string `json:"type"`            // One of EventCreated, EventUpdated, EventDeleted
	EventID        int64  `json:"event_id"`        // Changed event
	HostID         int64  `json:"host_id"`         // Owner of the changed event
	Timestamp      int64  `json:"timestamp"`       // Unix seconds when the change was committed
}
