package review

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mocks "github.com/aliskhannn/rental-notifier/internal/mocks/service/review"
	"github.com/aliskhannn/rental-notifier/internal/model"
	"github.com/aliskhannn/rental-notifier/internal/repository/booking"
	"github.com/aliskhannn/rental-notifier/internal/repository/user"
)

var fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestService(ctrl *gomock.Controller) (*Service, *mocks.MockuserRepository, *mocks.MockbookingRepository, *mocks.Mockdispatcher) {
	users := mocks.NewMockuserRepository(ctrl)
	bookings := mocks.NewMockbookingRepository(ctrl)
	d := mocks.NewMockdispatcher(ctrl)

	s := NewService(users, bookings, d)
	s.now = func() time.Time { return fixedNow }

	return s, users, bookings, d
}

func kayak() model.Booking {
	return model.Booking{
		ID:             "b1",
		RenterID:       "renter",
		OwnerID:        "owner",
		EquipmentTitle: "Kayak",
		Status:         model.StatusCompleted,
	}
}

func TestService_HandleReviewCreated_OneSided(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, users, bookings, d := newTestService(ctrl)

	r := model.Review{ID: "r1", BookingID: "b1", ReviewerID: "renter", ReviewerType: model.ReviewerRenter, Rating: 5}

	users.EXPECT().GetByID(gomock.Any(), "renter").Return(model.User{ID: "renter", DisplayName: "Alice"}, nil)
	bookings.EXPECT().GetByID(gomock.Any(), "b1").Return(kayak(), nil)

	gomock.InOrder(
		d.EXPECT().Dispatch(gomock.Any(), "owner", model.Notification{
			BookingID:      "b1",
			ReviewID:       "r1",
			Title:          "New Review ⭐",
			Body:           "Alice left you a 5-star review for Kayak.",
			Type:           model.TypeReviewReceived,
			EquipmentTitle: "Kayak",
		}),
		bookings.EXPECT().CloseIfReviewed(gomock.Any(), "b1", fixedNow).Return(false, nil),
	)

	require.NoError(t, s.HandleReviewCreated(context.Background(), r))
}

func TestService_HandleReviewCreated_SecondReviewCloses(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, users, bookings, d := newTestService(ctrl)

	r := model.Review{ID: "r2", BookingID: "b1", ReviewerID: "owner", ReviewerType: model.ReviewerOwner, Rating: 4}

	users.EXPECT().GetByID(gomock.Any(), "owner").Return(model.User{ID: "owner", DisplayName: "Bob"}, nil)
	bookings.EXPECT().GetByID(gomock.Any(), "b1").Return(kayak(), nil)

	var closedTo []string

	gomock.InOrder(
		d.EXPECT().Dispatch(gomock.Any(), "renter", gomock.Any()).Do(
			func(_ context.Context, _ string, n model.Notification) {
				assert.Equal(t, model.TypeReviewReceived, n.Type)
				assert.Equal(t, "Bob left you a 4-star review for Kayak.", n.Body)
			},
		),
		bookings.EXPECT().CloseIfReviewed(gomock.Any(), "b1", fixedNow).Return(true, nil),
		d.EXPECT().Dispatch(gomock.Any(), gomock.Any(), gomock.Any()).Do(
			func(_ context.Context, userID string, n model.Notification) {
				assert.Equal(t, model.TypeBookingClosed, n.Type)
				assert.Equal(t, "Booking Closed", n.Title)
				closedTo = append(closedTo, userID)
			},
		).Times(2),
	)

	require.NoError(t, s.HandleReviewCreated(context.Background(), r))
	assert.ElementsMatch(t, []string{"renter", "owner"}, closedTo)
}

func TestService_HandleReviewCreated_Fallbacks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, users, bookings, d := newTestService(ctrl)

	r := model.Review{
		ID:           "r1",
		BookingID:    "b1",
		ReviewerID:   "renter",
		ReviewerType: model.ReviewerRenter,
		ReviewedID:   "owner",
		Rating:       3,
	}

	users.EXPECT().GetByID(gomock.Any(), "renter").Return(model.User{}, user.ErrUserNotFound)
	bookings.EXPECT().GetByID(gomock.Any(), "b1").Return(model.Booking{}, booking.ErrBookingNotFound)

	d.EXPECT().Dispatch(gomock.Any(), "owner", gomock.Any()).Do(
		func(_ context.Context, _ string, n model.Notification) {
			assert.Equal(t, "Someone left you a 3-star review for your rental.", n.Body)
			assert.Empty(t, n.EquipmentTitle)
		},
	)
	bookings.EXPECT().CloseIfReviewed(gomock.Any(), "b1", fixedNow).Return(false, nil)

	require.NoError(t, s.HandleReviewCreated(context.Background(), r))
}

func TestService_HandleReviewCreated_CheckFailsAfterNotify(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, users, bookings, d := newTestService(ctrl)

	r := model.Review{ID: "r1", BookingID: "b1", ReviewerID: "renter", ReviewerType: model.ReviewerRenter, Rating: 5}
	dbErr := errors.New("deadlock detected")

	users.EXPECT().GetByID(gomock.Any(), "renter").Return(model.User{DisplayName: "Alice"}, nil)
	bookings.EXPECT().GetByID(gomock.Any(), "b1").Return(kayak(), nil)

	gomock.InOrder(
		d.EXPECT().Dispatch(gomock.Any(), "owner", gomock.Any()).Times(1),
		bookings.EXPECT().CloseIfReviewed(gomock.Any(), "b1", fixedNow).Return(false, dbErr),
	)

	err := s.HandleReviewCreated(context.Background(), r)
	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
}

func TestService_HandleReviewCreated_ClosedAfterLookupFailed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, users, bookings, d := newTestService(ctrl)

	r := model.Review{ID: "r2", BookingID: "b1", ReviewerID: "owner", ReviewerType: model.ReviewerOwner, ReviewedID: "renter", Rating: 5}

	users.EXPECT().GetByID(gomock.Any(), "owner").Return(model.User{DisplayName: "Bob"}, nil)

	gomock.InOrder(
		bookings.EXPECT().GetByID(gomock.Any(), "b1").Return(model.Booking{}, errors.New("timeout")),
		d.EXPECT().Dispatch(gomock.Any(), "renter", gomock.Any()),
		bookings.EXPECT().CloseIfReviewed(gomock.Any(), "b1", fixedNow).Return(true, nil),
		bookings.EXPECT().GetByID(gomock.Any(), "b1").Return(kayak(), nil),
		d.EXPECT().Dispatch(gomock.Any(), "renter", gomock.Any()),
		d.EXPECT().Dispatch(gomock.Any(), "owner", gomock.Any()),
	)

	require.NoError(t, s.HandleReviewCreated(context.Background(), r))
}
