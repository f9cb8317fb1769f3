package conversation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/wb-go/wbf/dbpg"
)

var ErrConversationNotFound = errors.New("conversation not found")

// Repository provides methods to interact with conversations table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new conversation repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// GetEquipmentTitle retrieves the equipment title a conversation is about.
func (r *Repository) GetEquipmentTitle(ctx context.Context, id string) (string, error) {
	query := `
		SELECT equipment_title
		FROM conversations
		WHERE id = $1;
    `

	var title string
	err := r.db.QueryRowContext(ctx, query, id).Scan(&title)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrConversationNotFound
		}

		return "", fmt.Errorf("failed to get conversation: %w", err)
	}

	return title, nil
}
