package events

import (
	"slices"
	"time"
)

// ProtocolVersion is bumped whenever the wire format changes
const ProtocolVersion = 2

// EventType indicates what kind of change occurred
type EventType string

const (
	EventDocumentChanged EventType = "doc_changed"
	EventPing            EventType = "ping"
	EventPong            EventType = "pong"
)

// Event represents a store change notification
type Event struct {
	Type       EventType
	Collection string    // For filtering - which collection was modified, "" = several
	DocumentID string    `json:",omitempty"` // Set when exactly one document changed
	Timestamp  time.Time // When the event occurred
	SequenceID int64     // Monotonically increasing sequence number for ordering
}

// SubscribeMessage is sent by clients to subscribe to specific collections
type SubscribeMessage struct {
	Collections []string // empty = all collections
}

// Wants reports whether a subscriber should receive an event for collection.
// Events without a collection touch several collections and go to everyone.
func (s SubscribeMessage) Wants(collection string) bool {
	if collection == "" || len(s.Collections) == 0 {
		return true
	}
	return slices.Contains(s.Collections, collection)
}

// Message wraps events and control messages for wire protocol
type Message struct {
	Version   int               `json:",omitempty"`
	Type      string            // "event", "subscribe", "ping", "pong"
	Event     *Event            `json:",omitempty"`
	Subscribe *SubscribeMessage `json:",omitempty"`
}
