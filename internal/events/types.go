package events

import "time"

// EventType indicates what kind of change occurred
type EventType string

const (
	EventDatabaseChanged EventType = "db_changed"
	EventPing            EventType = "ping"
	EventPong            EventType = "pong"
)

// Event represents a database change notification
type Event struct {
	Type       EventType
	Timestamp  time.Time // When the event occurred
	SequenceID int64     // Monotonically increasing sequence number for ordering
}

// Message wraps events and control messages for the wire protocol
type Message struct {
	Type  string // "event", "ping", "pong"
	Event *Event `json:",omitempty"`
}
