package booking

import (
	"context"
	"fmt"

	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/rental-notifier/internal/model"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/booking/mock.go -package=mocks

type dispatcher interface {
	Dispatch(ctx context.Context, userID string, n model.Notification)
}

type audience int

const (
	toRenter audience = 1 << iota
	toOwner
)

type transition struct {
	audience audience
	title    string
	typ      string
	body     func(b model.Booking) string
}

var transitions = map[string]transition{
	model.StatusConfirmed: {
		audience: toRenter,
		title:    "Booking Confirmed!",
		typ:      model.TypeBookingConfirmed,
		body: func(b model.Booking) string {
			return fmt.Sprintf("Your booking for %s has been confirmed.", b.EquipmentTitle)
		},
	},
	model.StatusDeclined: {
		audience: toRenter,
		title:    "Booking Declined",
		typ:      model.TypeBookingDeclined,
		body: func(b model.Booking) string {
			body := fmt.Sprintf("Your booking request for %s was declined.", b.EquipmentTitle)
			if b.DeclineReason != "" {
				body += " Reason: " + b.DeclineReason
			}
			return body
		},
	},
	model.StatusCancelled: {
		audience: toOwner,
		title:    "Booking Cancelled",
		typ:      model.TypeBookingCancelled,
		body: func(b model.Booking) string {
			return fmt.Sprintf("The booking for your %s has been cancelled.", b.EquipmentTitle)
		},
	},
	model.StatusActive: {
		audience: toRenter,
		title:    "Booking Started! 🏄",
		typ:      model.TypeBookingActive,
		body: func(b model.Booking) string {
			return fmt.Sprintf("Your rental of %s is now active. Enjoy!", b.EquipmentTitle)
		},
	},
	model.StatusCompleted: {
		audience: toRenter | toOwner,
		title:    "Booking Completed",
		typ:      model.TypeBookingCompleted,
		body: func(b model.Booking) string {
			return fmt.Sprintf("The rental of %s is complete. Please leave a review!", b.EquipmentTitle)
		},
	},
}

// Service reacts to booking status transitions.
type Service struct {
	dispatcher dispatcher
}

// NewService creates a booking lifecycle handler.
func NewService(d dispatcher) *Service {
	return &Service{dispatcher: d}
}

// HandleBookingUpdate notifies the parties affected by a status change.
// Unchanged or unrecognised statuses are ignored.
func (s *Service) HandleBookingUpdate(ctx context.Context, before, after model.Booking) {
	if before.Status == after.Status {
		return
	}

	t, ok := transitions[after.Status]
	if !ok {
		zlog.Logger.Debug().Str("booking_id", after.ID).Str("status", after.Status).Msg("status has no notification")
		return
	}

	n := model.Notification{
		BookingID:      after.ID,
		Title:          t.title,
		Body:           t.body(after),
		Type:           t.typ,
		EquipmentTitle: after.EquipmentTitle,
	}

	if t.audience&toRenter != 0 {
		s.dispatcher.Dispatch(ctx, after.RenterID, n)
	}

	if t.audience&toOwner != 0 {
		s.dispatcher.Dispatch(ctx, after.OwnerID, n)
	}

	zlog.Logger.Info().
		Str("booking_id", after.ID).
		Str("from", before.Status).
		Str("to", after.Status).
		Msg("booking transition notified")
}
