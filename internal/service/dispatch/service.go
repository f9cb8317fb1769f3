package dispatch

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/rental-notifier/internal/model"
	"github.com/aliskhannn/rental-notifier/internal/repository/user"
	"github.com/aliskhannn/rental-notifier/pkg/fcm"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/dispatch/mock.go -package=mocks

type userRepository interface {
	GetByID(ctx context.Context, id string) (model.User, error)
}

type inboxRepository interface {
	Append(ctx context.Context, userID string, n model.Notification) (uuid.UUID, error)
}

type pushSender interface {
	Send(ctx context.Context, msg fcm.Message) error
}

// Service is the single point of contact with the push transport and the inbox.
//
// Push is best effort; the inbox record is always written.
type Service struct {
	users       userRepository
	inbox       inboxRepository
	sender      pushSender
	clickAction string
	strategy    retry.Strategy
}

// NewService creates a dispatcher. strategy governs retries of the inbox write only.
func NewService(
	users userRepository,
	inbox inboxRepository,
	sender pushSender,
	clickAction string,
	strategy retry.Strategy,
) *Service {
	if strategy.Attempts < 1 {
		strategy.Attempts = 1
	}

	return &Service{
		users:       users,
		inbox:       inbox,
		sender:      sender,
		clickAction: clickAction,
		strategy:    strategy,
	}
}

// Dispatch pushes n to the user's device, if any, and records it in the user's inbox.
// It never fails from the caller's point of view.
func (s *Service) Dispatch(ctx context.Context, userID string, n model.Notification) {
	n.UserID = userID
	n.IsRead = false

	s.push(ctx, userID, n)
	s.record(ctx, userID, n)
}

func (s *Service) push(ctx context.Context, userID string, n model.Notification) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			zlog.Logger.Warn().Str("user_id", userID).Str("type", n.Type).Msg("user not found, skipping push")
			return
		}

		zlog.Logger.Error().Err(err).Str("user_id", userID).Msg("failed to load user, skipping push")
		return
	}

	token := u.Token()
	if token == "" {
		zlog.Logger.Info().Str("user_id", userID).Str("type", n.Type).Msg("no push token, skipping push")
		return
	}

	err = s.sender.Send(ctx, fcm.Message{
		Token: token,
		Title: n.Title,
		Body:  n.Body,
		Data:  n.Data(s.clickAction),
	})
	if err != nil {
		zlog.Logger.Warn().Err(err).Str("user_id", userID).Str("type", n.Type).Msg("failed to send push notification")
		return
	}

	zlog.Logger.Info().Str("user_id", userID).Str("type", n.Type).Msg("push notification sent")
}

func (s *Service) record(ctx context.Context, userID string, n model.Notification) {
	var id uuid.UUID

	err := retry.Do(func() error {
		var err error
		id, err = s.inbox.Append(ctx, userID, n)
		return err
	}, s.strategy)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("user_id", userID).Str("type", n.Type).Msg("failed to record notification in inbox")
		return
	}

	zlog.Logger.Debug().Str("user_id", userID).Str("notification_id", id.String()).Msg("notification recorded")
}
