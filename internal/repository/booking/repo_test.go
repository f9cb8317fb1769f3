package booking

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
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

var columns = []string{
	"id", "renter_id", "owner_id", "equipment_title", "status", "decline_reason",
	"start_at", "start_date", "start_time", "created_at", "updated_at", "activated_at", "closed_at",
}

func TestGetByID(t *testing.T) {
	repo, mock := setupMockDB(t)

	created := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	startDate := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`FROM bookings\s+WHERE id = \$1`).
		WithArgs("b1").
		WillReturnRows(sqlmock.NewRows(columns).AddRow(
			"b1", "r1", "o1", "Longboard", model.StatusConfirmed, "",
			nil, startDate, "2:30 PM", created, created, nil, nil,
		))

	b, err := repo.GetByID(context.Background(), "b1")
	require.NoError(t, err)
	assert.Equal(t, "Longboard", b.EquipmentTitle)
	assert.Nil(t, b.StartAt)
	require.NotNil(t, b.StartDate)
	assert.True(t, b.StartDate.Equal(startDate))
	assert.Equal(t, "2:30 PM", b.StartTime)
	assert.NoError(t, mock.ExpectationsWereMet())

	mock.ExpectQuery(`FROM bookings\s+WHERE id = \$1`).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err = repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListByStatus(t *testing.T) {
	repo, mock := setupMockDB(t)

	now := time.Now().UTC()
	startAt := now.Add(-time.Hour)

	rows := sqlmock.NewRows(columns).
		AddRow("b1", "r1", "o1", "Longboard", model.StatusConfirmed, "", startAt, nil, "", now, now, nil, nil).
		AddRow("b2", "r2", "o2", "Kayak", model.StatusConfirmed, "", nil, nil, "", now, now, nil, nil)

	mock.ExpectQuery(`WHERE status = \$1\s+ORDER BY created_at`).
		WithArgs(model.StatusConfirmed).
		WillReturnRows(rows)

	list, err := repo.ListByStatus(context.Background(), model.StatusConfirmed)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.NotNil(t, list[0].StartAt)
	assert.True(t, list[0].StartAt.Equal(startAt))
	assert.Nil(t, list[1].StartAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestActivate(t *testing.T) {
	repo, mock := setupMockDB(t)

	at := time.Date(2024, 1, 5, 15, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta(`
		UPDATE bookings
		SET status = 'active', activated_at = $2, updated_at = $2
		WHERE id = $1 AND status = 'confirmed';
    `)

	mock.ExpectExec(query).WithArgs("b1", at).WillReturnResult(sqlmock.NewResult(0, 1))
	assert.NoError(t, repo.Activate(context.Background(), "b1", at))

	mock.ExpectExec(query).WithArgs("b1", at).WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.Activate(context.Background(), "b1", at), ErrBookingNotConfirmed)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCloseIfReviewed_BothReviewsCloses(t *testing.T) {
	repo, mock := setupMockDB(t)

	at := time.Date(2024, 1, 9, 10, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(`FOR UPDATE`).WithArgs("b1").
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow(model.StatusCompleted))
	mock.ExpectQuery(`FROM reviews\s+WHERE booking_id = \$1`).WithArgs("b1").
		WillReturnRows(sqlmock.NewRows([]string{"renter", "owner"}).AddRow(1, 1))
	mock.ExpectExec(`SET status = 'closed', closed_at = \$2, updated_at = \$2`).WithArgs("b1", at).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	closed, err := repo.CloseIfReviewed(context.Background(), "b1", at)
	require.NoError(t, err)
	assert.True(t, closed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCloseIfReviewed_OneSideOnly(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`FOR UPDATE`).WithArgs("b1").
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow(model.StatusCompleted))
	mock.ExpectQuery(`FROM reviews`).WithArgs("b1").
		WillReturnRows(sqlmock.NewRows([]string{"renter", "owner"}).AddRow(2, 0))
	mock.ExpectCommit()

	closed, err := repo.CloseIfReviewed(context.Background(), "b1", time.Now())
	require.NoError(t, err)
	assert.False(t, closed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCloseIfReviewed_AlreadyClosed(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`FOR UPDATE`).WithArgs("b1").
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow(model.StatusClosed))
	mock.ExpectQuery(`FROM reviews`).WithArgs("b1").
		WillReturnRows(sqlmock.NewRows([]string{"renter", "owner"}).AddRow(1, 2))
	mock.ExpectCommit()

	closed, err := repo.CloseIfReviewed(context.Background(), "b1", time.Now())
	require.NoError(t, err)
	assert.False(t, closed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCloseIfReviewed_Errors(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`FOR UPDATE`).WithArgs("missing").WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	_, err := repo.CloseIfReviewed(context.Background(), "missing", time.Now())
	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())

	mock.ExpectBegin()
	mock.ExpectQuery(`FOR UPDATE`).WithArgs("b1").
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow(model.StatusCompleted))
	mock.ExpectQuery(`FROM reviews`).WithArgs("b1").WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	_, err = repo.CloseIfReviewed(context.Background(), "b1", time.Now())
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
