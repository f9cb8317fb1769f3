package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/wb-go/wbf/dbpg"

	"github.com/aliskhannn/rental-notifier/internal/model"
)

var ErrUserNotFound = errors.New("user not found")

// Repository provides methods to interact with users table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new user repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// GetByID retrieves a user by its ID.
func (r *Repository) GetByID(ctx context.Context, id string) (model.User, error) {
	query := `
		SELECT id, display_name, fcm_token
		FROM users
		WHERE id = $1;
    `

	var (
		u     model.User
		token sql.NullString
	)

	err := r.db.QueryRowContext(ctx, query, id).Scan(&u.ID, &u.DisplayName, &token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, ErrUserNotFound
		}

		return model.User{}, fmt.Errorf("failed to get user: %w", err)
	}

	if token.Valid {
		u.FCMToken = &token.String
	}

	return u, nil
}

// ClearToken removes the push token of a user, provided it is still the given token.
//
// A token rotated since the probe was sent is left alone. Returns false when nothing was cleared.
func (r *Repository) ClearToken(ctx context.Context, id, token string) (bool, error) {
	query := `
		UPDATE users
		SET fcm_token = NULL
		WHERE id = $1 AND fcm_token = $2;
    `

	res, err := r.db.ExecContext(ctx, query, id, token)
	if err != nil {
		return false, fmt.Errorf("failed to clear user token: %w", err)
	}

	rows, _ := res.RowsAffected()

	return rows > 0, nil
}
