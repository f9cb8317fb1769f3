package model

import (
	"time"

	"github.com/google/uuid"
)

// Notification types written to the push payload and the inbox.
const (
	TypeMessage          = "message"
	TypeBookingConfirmed = "booking_confirmed"
	TypeBookingDeclined  = "booking_declined"
	TypeBookingCancelled = "booking_cancelled"
	TypeBookingActive    = "booking_active"
	TypeBookingCompleted = "booking_completed"
	TypeBookingActivated = "booking_activated"
	TypeBookingClosed    = "booking_closed"
	TypeReviewReceived   = "review_received"
	TypeTokenValidation  = "token_validation"
)

// Notification is a single inbox record. The same fields make up the push payload.
type Notification struct {
	ID             uuid.UUID `json:"id"`                        // inbox record id
	UserID         string    `json:"user_id"`                   // inbox owner
	BookingID      string    `json:"booking_id,omitempty"`      // correlation id, optional
	ReviewID       string    `json:"review_id,omitempty"`       // correlation id, optional
	ConversationID string    `json:"conversation_id,omitempty"` // correlation id, optional
	SenderID       string    `json:"sender_id,omitempty"`       // chat sender, messages only
	SenderName     string    `json:"sender_name,omitempty"`     // chat sender display name, messages only
	Title          string    `json:"title"`
	Body           string    `json:"body"`
	Type           string    `json:"type"`
	EquipmentTitle string    `json:"equipment_title"`
	IsRead         bool      `json:"is_read"`
	CreatedAt      time.Time `json:"created_at"` // assigned by the store
}

// Data returns the string-only push data payload for n.
//
// type, equipmentTitle and clickAction are always present; correlation ids are
// added only when set.
func (n Notification) Data(clickAction string) map[string]string {
	data := map[string]string{
		"type":           n.Type,
		"equipmentTitle": n.EquipmentTitle,
		"clickAction":    clickAction,
	}

	optional := map[string]string{
		"bookingId":      n.BookingID,
		"reviewId":       n.ReviewID,
		"conversationId": n.ConversationID,
		"senderId":       n.SenderID,
		"senderName":     n.SenderName,
	}
	for k, v := range optional {
		if v != "" {
			data[k] = v
		}
	}

	return data
}
