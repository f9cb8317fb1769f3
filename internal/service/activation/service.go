package activation

import (
	"context"
	"fmt"
	"time"

	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/rental-notifier/internal/model"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/activation/mock.go -package=mocks

type bookingRepository interface {
	ListByStatus(ctx context.Context, status string) ([]model.Booking, error)
	Activate(ctx context.Context, id string, at time.Time) error
}

type dispatcher interface {
	Dispatch(ctx context.Context, userID string, n model.Notification)
}

// Service moves confirmed bookings whose start time has passed into the active state.
type Service struct {
	bookings   bookingRepository
	dispatcher dispatcher
	loc        *time.Location // zone of legacy date + clock starts
	now        func() time.Time
}

// NewService creates an auto-activation sweeper.
func NewService(bookings bookingRepository, d dispatcher, loc *time.Location) *Service {
	if loc == nil {
		loc = time.UTC
	}

	return &Service{
		bookings:   bookings,
		dispatcher: d,
		loc:        loc,
		now:        time.Now,
	}
}

// Sweep activates every due confirmed booking and returns how many were activated.
//
// Bookings are processed one by one; a failure on one booking is logged and does
// not stop the others.
func (s *Service) Sweep(ctx context.Context) (int, error) {
	bookings, err := s.bookings.ListByStatus(ctx, model.StatusConfirmed)
	if err != nil {
		return 0, fmt.Errorf("list confirmed bookings: %w", err)
	}

	now := s.now()
	activated := 0

	for _, b := range bookings {
		if ctx.Err() != nil {
			break
		}

		if s.activate(ctx, b, now) {
			activated++
		}
	}

	zlog.Logger.Info().Msgf("activation sweep done: %d of %d confirmed bookings activated", activated, len(bookings))

	return activated, nil
}

func (s *Service) activate(ctx context.Context, b model.Booking, now time.Time) bool {
	start, err := b.ScheduledStart(s.loc)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("booking_id", b.ID).Msg("cannot determine booking start")
		return false
	}

	if now.Before(start) {
		return false
	}

	if err := s.bookings.Activate(ctx, b.ID, now.UTC()); err != nil {
		zlog.Logger.Error().Err(err).Str("booking_id", b.ID).Msg("failed to activate booking")
		return false
	}

	s.dispatcher.Dispatch(ctx, b.RenterID, model.Notification{
		BookingID:      b.ID,
		Title:          "Booking Started! 🏄",
		Body:           fmt.Sprintf("Your rental of %s is now active. Enjoy!", b.EquipmentTitle),
		Type:           model.TypeBookingActivated,
		EquipmentTitle: b.EquipmentTitle,
	})

	return true
}
