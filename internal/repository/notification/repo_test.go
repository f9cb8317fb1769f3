package notification

import (
	"context"
	"errors"
	"os"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"

	"github.com/aliskhannn/rental-notifier/internal/model"
)

func setupMockDB(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open mock db: %v", err)
	}

	wrappedDB := &dbpg.DB{Master: db}
	repo := NewRepository(wrappedDB)

	return repo, mock
}

func TestAppend(t *testing.T) {
	repo, mock := setupMockDB(t)

	id := uuid.New()
	n := model.Notification{
		BookingID:      "b1",
		Title:          "Booking Confirmed!",
		Body:           "Your booking for Longboard has been confirmed.",
		Type:           model.TypeBookingConfirmed,
		EquipmentTitle: "Longboard",
	}

	mock.ExpectQuery(regexp.QuoteMeta(`
		INSERT INTO notifications (
		    user_id, booking_id, review_id, conversation_id, sender_id, sender_name,
		    title, body, type, equipment_title, is_read
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, false)
		RETURNING id;
    `)).
		WithArgs("r1", "b1", "", "", "", "", n.Title, n.Body, n.Type, n.EquipmentTitle).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(id.String()))

	got, err := repo.Append(context.Background(), "r1", n)
	assert.NoError(t, err)
	assert.Equal(t, id, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppend_UnknownUser(t *testing.T) {
	repo, mock := setupMockDB(t)

	id := uuid.New()

	// Only the insert runs; users is never consulted.
	mock.ExpectQuery(`INSERT INTO notifications`).
		WithArgs("ghost", "", "", "c1", "alice", "Alice", "Alice", "hi", model.TypeMessage, "New Message").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(id.String()))

	got, err := repo.Append(context.Background(), "ghost", model.Notification{
		ConversationID: "c1",
		SenderID:       "alice",
		SenderName:     "Alice",
		Title:          "Alice",
		Body:           "hi",
		Type:           model.TypeMessage,
		EquipmentTitle: "New Message",
	})
	require.NoError(t, err)
	assert.Equal(t, id, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSchema_InboxNotTiedToUsers(t *testing.T) {
	raw, err := os.ReadFile("../../../migrations/001_init.up.sql")
	require.NoError(t, err)

	schema := string(raw)
	start := strings.Index(schema, "CREATE TABLE IF NOT EXISTS notifications")
	require.NotEqual(t, -1, start)

	table := schema[start:]
	table = table[:strings.Index(table, ");")]

	assert.Contains(t, table, "user_id")
	assert.NotContains(t, table, "REFERENCES")
}

func TestAppend_Error(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery(`INSERT INTO notifications`).WillReturnError(errors.New("disk full"))

	got, err := repo.Append(context.Background(), "r1", model.Notification{Title: "t", Body: "b", Type: model.TypeMessage})
	assert.Error(t, err)
	assert.Equal(t, uuid.Nil, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListByUser(t *testing.T) {
	repo, mock := setupMockDB(t)

	now := time.Now().UTC()
	cols := []string{
		"id", "user_id", "booking_id", "review_id", "conversation_id", "sender_id", "sender_name",
		"title", "body", "type", "equipment_title", "is_read", "created_at",
	}

	rows := sqlmock.NewRows(cols).
		AddRow(uuid.NewString(), "r1", "b1", "", "", "", "", "Booking Started! 🏄", "body", model.TypeBookingActivated, "Longboard", false, now).
		AddRow(uuid.NewString(), "r1", "", "", "c1", "o1", "Olga", "Olga", "hi", model.TypeMessage, "Longboard", true, now.Add(-time.Minute))

	mock.ExpectQuery(`WHERE user_id = \$1\s+ORDER BY created_at DESC\s+LIMIT \$2`).
		WithArgs("r1", 20).
		WillReturnRows(rows)

	list, err := repo.ListByUser(context.Background(), "r1", 20)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.False(t, list[0].IsRead)
	assert.Equal(t, "c1", list[1].ConversationID)
	assert.NoError(t, mock.ExpectationsWereMet())

	mock.ExpectQuery(`FROM notifications`).
		WithArgs("nobody", 20).
		WillReturnRows(sqlmock.NewRows(cols))

	list, err = repo.ListByUser(context.Background(), "nobody", 20)
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.NoError(t, mock.ExpectationsWereMet())
}
