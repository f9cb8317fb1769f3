package notification

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/aliskhannn/rental-notifier/internal/model"
)

// Repository provides methods to interact with the notifications (inbox) table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new notification repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// Append inserts an unread inbox record for the user and returns its ID.
// The creation time is assigned by the database.
func (r *Repository) Append(ctx context.Context, userID string, n model.Notification) (uuid.UUID, error) {
	query := `
		INSERT INTO notifications (
		    user_id, booking_id, review_id, conversation_id, sender_id, sender_name,
		    title, body, type, equipment_title, is_read
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, false)
		RETURNING id;
    `

	var id uuid.UUID
	err := r.db.QueryRowContext(
		ctx, query,
		userID, n.BookingID, n.ReviewID, n.ConversationID, n.SenderID, n.SenderName,
		n.Title, n.Body, n.Type, n.EquipmentTitle,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to append notification: %w", err)
	}

	return id, nil
}

// ListByUser retrieves the newest notifications of a user, newest first.
func (r *Repository) ListByUser(ctx context.Context, userID string, limit int) ([]model.Notification, error) {
	query := `
		SELECT id, user_id, booking_id, review_id, conversation_id, sender_id, sender_name,
		       title, body, type, equipment_title, is_read, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2;
    `

	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	notifications := make([]model.Notification, 0, limit)
	for rows.Next() {
		var n model.Notification
		if err := rows.Scan(
			&n.ID, &n.UserID, &n.BookingID, &n.ReviewID, &n.ConversationID, &n.SenderID, &n.SenderName,
			&n.Title, &n.Body, &n.Type, &n.EquipmentTitle, &n.IsRead, &n.CreatedAt,
		); err != nil {
			return nil, err
		}

		notifications = append(notifications, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate notifications: %w", err)
	}

	return notifications, nil
}
