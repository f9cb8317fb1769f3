package model

// Message is a chat message inside a conversation.
type Message struct {
	ID         string `json:"id"`
	SenderID   string `json:"sender_id"`
	SenderName string `json:"sender_name"`
	ReceiverID string `json:"receiver_id"`
	Text       string `json:"message"`
}
