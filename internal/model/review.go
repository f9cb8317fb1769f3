package model

import "time"

// Reviewer roles.
const (
	ReviewerRenter = "renter"
	ReviewerOwner  = "owner"
)

// Review is immutable once created.
type Review struct {
	ID           string    `json:"id"`
	BookingID    string    `json:"booking_id"`
	ReviewerID   string    `json:"reviewer_id"`
	ReviewerType string    `json:"reviewer_type"`         // "renter" or "owner"
	ReviewedID   string    `json:"reviewed_id,omitempty"` // falls back to the booking party when empty
	Rating       int       `json:"rating"`
	CreatedAt    time.Time `json:"created_at"`
}

// ReviewedRole returns the role of the party the review is about.
func (r Review) ReviewedRole() string {
	if r.ReviewerType == ReviewerRenter {
		return ReviewerOwner
	}

	return ReviewerRenter
}
