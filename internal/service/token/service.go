package token

import (
	"context"
	"errors"
	"fmt"

	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/rental-notifier/internal/model"
	"github.com/aliskhannn/rental-notifier/pkg/fcm"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/token/mock.go -package=mocks

type pushSender interface {
	Send(ctx context.Context, msg fcm.Message) error
}

type userRepository interface {
	ClearToken(ctx context.Context, id, token string) (bool, error)
}

// Service keeps a user's push channel valid.
type Service struct {
	sender pushSender
	users  userRepository
}

// NewService creates a token guard.
func NewService(sender pushSender, users userRepository) *Service {
	return &Service{sender: sender, users: users}
}

// HandleUserUpdate probes a freshly changed token and clears it when FCM reports it unregistered.
//
// Only ErrUnregistered clears a token; any other send failure leaves it untouched.
func (s *Service) HandleUserUpdate(ctx context.Context, before, after model.User) error {
	newToken := after.Token()
	if newToken == "" || newToken == before.Token() {
		return nil
	}

	err := s.sender.Send(ctx, fcm.Message{
		Token: newToken,
		Data:  map[string]string{"type": model.TypeTokenValidation},
	})
	if err == nil {
		zlog.Logger.Debug().Str("user_id", after.ID).Msg("push token validated")
		return nil
	}

	if !errors.Is(err, fcm.ErrUnregistered) {
		zlog.Logger.Warn().Err(err).Str("user_id", after.ID).Msg("token probe failed, keeping token")
		return nil
	}

	cleared, err := s.users.ClearToken(ctx, after.ID, newToken)
	if err != nil {
		return fmt.Errorf("clear token: %w", err)
	}

	if cleared {
		zlog.Logger.Info().Str("user_id", after.ID).Msg("unregistered push token cleared")
	} else {
		zlog.Logger.Info().Str("user_id", after.ID).Msg("push token changed again before clear, nothing to do")
	}

	return nil
}
