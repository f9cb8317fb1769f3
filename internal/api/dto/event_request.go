package dto

import "encoding/json"

// EventRequest is a document change submitted over HTTP.
type EventRequest struct {
	Collection string          `json:"collection" validate:"required,oneof=users bookings reviews messages"`
	Kind       string          `json:"kind" validate:"required,oneof=created updated"`
	DocumentID string          `json:"document_id" validate:"required"`
	ParentID   string          `json:"parent_id"`
	Before     json.RawMessage `json:"before"`
	After      json.RawMessage `json:"after" validate:"required"`
}
