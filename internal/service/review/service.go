package review

import (
	"context"
	"fmt"
	"time"

	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/rental-notifier/internal/model"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/review/mock.go -package=mocks

const (
	fallbackReviewerName  = "Someone"
	fallbackEquipmentName = "your rental"
)

type userRepository interface {
	GetByID(ctx context.Context, id string) (model.User, error)
}

type bookingRepository interface {
	GetByID(ctx context.Context, id string) (model.Booking, error)
	CloseIfReviewed(ctx context.Context, id string, at time.Time) (bool, error)
}

type dispatcher interface {
	Dispatch(ctx context.Context, userID string, n model.Notification)
}

// Service notifies reviewed parties and closes bookings once both sides have reviewed.
type Service struct {
	users      userRepository
	bookings   bookingRepository
	dispatcher dispatcher
	now        func() time.Time
}

// NewService creates a review completion tracker.
func NewService(users userRepository, bookings bookingRepository, d dispatcher) *Service {
	return &Service{
		users:      users,
		bookings:   bookings,
		dispatcher: d,
		now:        time.Now,
	}
}

// HandleReviewCreated notifies the reviewed party, then checks whether the booking can be closed.
//
// The per-review notification is always attempted before the completeness check so
// a failing check never suppresses it.
func (s *Service) HandleReviewCreated(ctx context.Context, r model.Review) error {
	reviewerName := fallbackReviewerName
	if u, err := s.users.GetByID(ctx, r.ReviewerID); err != nil {
		zlog.Logger.Warn().Err(err).Str("reviewer_id", r.ReviewerID).Msg("reviewer not found, using fallback name")
	} else if u.DisplayName != "" {
		reviewerName = u.DisplayName
	}

	equipment := fallbackEquipmentName
	b, bookingErr := s.bookings.GetByID(ctx, r.BookingID)
	if bookingErr != nil {
		zlog.Logger.Warn().Err(bookingErr).Str("booking_id", r.BookingID).Msg("booking not found, using fallback title")
	} else if b.EquipmentTitle != "" {
		equipment = b.EquipmentTitle
	}

	reviewedID := r.ReviewedID
	if reviewedID == "" && bookingErr == nil {
		reviewedID = partyID(b, r.ReviewedRole())
	}

	if reviewedID != "" {
		s.dispatcher.Dispatch(ctx, reviewedID, model.Notification{
			BookingID:      r.BookingID,
			ReviewID:       r.ID,
			Title:          "New Review ⭐",
			Body:           fmt.Sprintf("%s left you a %d-star review for %s.", reviewerName, r.Rating, equipment),
			Type:           model.TypeReviewReceived,
			EquipmentTitle: b.EquipmentTitle,
		})
	} else {
		zlog.Logger.Warn().Str("review_id", r.ID).Msg("reviewed party unknown, skipping review notification")
	}

	closed, err := s.bookings.CloseIfReviewed(ctx, r.BookingID, s.now().UTC())
	if err != nil {
		return fmt.Errorf("check booking completion: %w", err)
	}

	if !closed {
		return nil
	}

	zlog.Logger.Info().Str("booking_id", r.BookingID).Msg("both reviews in, booking closed")

	if bookingErr != nil {
		if b, err = s.bookings.GetByID(ctx, r.BookingID); err != nil {
			return fmt.Errorf("load closed booking: %w", err)
		}
	}

	n := model.Notification{
		BookingID:      r.BookingID,
		Title:          "Booking Closed",
		Body:           fmt.Sprintf("Both reviews are in for %s. This booking is now closed.", equipment),
		Type:           model.TypeBookingClosed,
		EquipmentTitle: b.EquipmentTitle,
	}

	s.dispatcher.Dispatch(ctx, b.RenterID, n)
	s.dispatcher.Dispatch(ctx, b.OwnerID, n)

	return nil
}

func partyID(b model.Booking, role string) string {
	if role == model.ReviewerOwner {
		return b.OwnerID
	}

	return b.RenterID
}
