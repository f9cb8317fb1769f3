package message

import (
	"context"

	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/rental-notifier/internal/model"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/message/mock.go -package=mocks

const fallbackEquipmentTitle = "New Message"

type conversationRepository interface {
	GetEquipmentTitle(ctx context.Context, id string) (string, error)
}

type dispatcher interface {
	Dispatch(ctx context.Context, userID string, n model.Notification)
}

// Service turns new chat messages into notifications for the receiver.
type Service struct {
	conversations conversationRepository
	dispatcher    dispatcher
}

// NewService creates a message notifier.
func NewService(conversations conversationRepository, d dispatcher) *Service {
	return &Service{conversations: conversations, dispatcher: d}
}

// HandleMessageCreated notifies the receiver of a new message in a conversation.
func (s *Service) HandleMessageCreated(ctx context.Context, conversationID string, m model.Message) {
	if m.SenderID == m.ReceiverID {
		zlog.Logger.Debug().Str("conversation_id", conversationID).Msg("sender is receiver, skipping")
		return
	}

	title, err := s.conversations.GetEquipmentTitle(ctx, conversationID)
	if err != nil {
		zlog.Logger.Warn().Err(err).Str("conversation_id", conversationID).Msg("failed to load conversation")
	}
	if title == "" {
		title = fallbackEquipmentTitle
	}

	s.dispatcher.Dispatch(ctx, m.ReceiverID, model.Notification{
		ConversationID: conversationID,
		SenderID:       m.SenderID,
		SenderName:     m.SenderName,
		Title:          m.SenderName,
		Body:           m.Text,
		Type:           model.TypeMessage,
		EquipmentTitle: title,
	})
}
