package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Booking statuses.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusDeclined  = "declined"
	StatusCancelled = "cancelled"
	StatusClosed    = "closed"
)

// clockLayout is the 12-hour clock used by the legacy start_time field, e.g. "2:30 PM".
const clockLayout = "3:04 PM"

// ErrNoSchedule is returned when a booking has neither an absolute start nor a date and time.
var ErrNoSchedule = errors.New("booking has no scheduled start")

// Booking is a reservation of equipment for a time window.
type Booking struct {
	ID             string     `json:"id"`
	RenterID       string     `json:"renter_id"`
	OwnerID        string     `json:"owner_id"`
	EquipmentTitle string     `json:"equipment_title"` // denormalized at creation, never changes
	Status         string     `json:"status"`
	DeclineReason  string     `json:"decline_reason,omitempty"`
	StartAt        *time.Time `json:"start_at,omitempty"`   // absolute start, preferred
	StartDate      *time.Time `json:"start_date,omitempty"` // legacy calendar date
	StartTime      string     `json:"start_time,omitempty"` // legacy "H:MM AM/PM"
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	ActivatedAt    *time.Time `json:"activated_at,omitempty"`
	ClosedAt       *time.Time `json:"closed_at,omitempty"`
}

// ScheduledStart returns the instant the rental begins.
//
// StartAt wins when present. Otherwise the calendar date of StartDate is combined
// with the parsed StartTime in loc. A malformed StartTime is an error, never a guess.
func (b Booking) ScheduledStart(loc *time.Location) (time.Time, error) {
	if b.StartAt != nil {
		return *b.StartAt, nil
	}

	if b.StartDate == nil || strings.TrimSpace(b.StartTime) == "" {
		return time.Time{}, ErrNoSchedule
	}

	hour, minute, err := ParseClock(b.StartTime)
	if err != nil {
		return time.Time{}, err
	}

	y, m, d := b.StartDate.Date()

	return time.Date(y, m, d, hour, minute, 0, 0, loc), nil
}

// ParseClock parses a 12-hour clock string such as "2:30 PM" into a 24-hour hour and minute.
// 12 AM is hour 0 and 12 PM is hour 12.
func ParseClock(s string) (hour, minute int, err error) {
	v := strings.TrimSpace(s)

	t, err := time.Parse(clockLayout, v)
	if err != nil {
		return 0, 0, fmt.Errorf("parse start time %q: %w", s, err)
	}

	// time.Parse accepts hour 0 for a 12-hour clock.
	h, err := strconv.Atoi(v[:strings.IndexByte(v, ':')])
	if err != nil || h < 1 || h > 12 {
		return 0, 0, fmt.Errorf("parse start time %q: hour out of range", s)
	}

	return t.Hour(), t.Minute(), nil
}
