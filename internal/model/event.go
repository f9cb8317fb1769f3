package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Document collections that emit change events.
const (
	CollectionUsers    = "users"
	CollectionBookings = "bookings"
	CollectionReviews  = "reviews"
	CollectionMessages = "messages"
)

// Change kinds.
const (
	KindCreated = "created"
	KindUpdated = "updated"
)

// ChangeEvent is a document-store change notification.
//
// Updates carry Before and After snapshots, creates carry only After.
type ChangeEvent struct {
	ID         uuid.UUID       `json:"id"`
	Collection string          `json:"collection"`
	Kind       string          `json:"kind"`
	DocumentID string          `json:"document_id"`
	ParentID   string          `json:"parent_id,omitempty"` // owning document for sub-collections, e.g. the conversation of a message
	Before     json.RawMessage `json:"before,omitempty"`
	After      json.RawMessage `json:"after"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// Topic returns the routing key of the event, e.g. "bookings.updated".
func (e ChangeEvent) Topic() string {
	return e.Collection + "." + e.Kind
}
