package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"

	"github.com/aliskhannn/rental-notifier/internal/model"
)

var (
	ErrBookingNotFound     = errors.New("booking not found")
	ErrBookingNotConfirmed = errors.New("booking is not confirmed")
)

const bookingColumns = `id, renter_id, owner_id, equipment_title, status, decline_reason,
		       start_at, start_date, start_time, created_at, updated_at, activated_at, closed_at`

// Repository provides methods to interact with bookings table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new booking repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (model.Booking, error) {
	var (
		b                     model.Booking
		startAt, startDate    sql.NullTime
		activatedAt, closedAt sql.NullTime
	)

	err := row.Scan(
		&b.ID, &b.RenterID, &b.OwnerID, &b.EquipmentTitle, &b.Status, &b.DeclineReason,
		&startAt, &startDate, &b.StartTime, &b.CreatedAt, &b.UpdatedAt, &activatedAt, &closedAt,
	)
	if err != nil {
		return model.Booking{}, err
	}

	b.StartAt = nullTime(startAt)
	b.StartDate = nullTime(startDate)
	b.ActivatedAt = nullTime(activatedAt)
	b.ClosedAt = nullTime(closedAt)

	return b, nil
}

func nullTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}

	return &t.Time
}

// GetByID retrieves a booking by its ID.
func (r *Repository) GetByID(ctx context.Context, id string) (model.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE id = $1;
    `

	b, err := scanBooking(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Booking{}, ErrBookingNotFound
		}

		return model.Booking{}, fmt.Errorf("failed to get booking: %w", err)
	}

	return b, nil
}

// ListByStatus retrieves all bookings with the given status ordered by creation time.
func (r *Repository) ListByStatus(ctx context.Context, status string) ([]model.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE status = $1
		ORDER BY created_at;
    `

	rows, err := r.db.QueryContext(ctx, query, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer rows.Close()

	var bookings []model.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}

		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate bookings: %w", err)
	}

	return bookings, nil
}

// Activate moves a confirmed booking to active and stamps activation and update time.
//
// Bookings that left the confirmed state in the meantime are reported as ErrBookingNotConfirmed.
func (r *Repository) Activate(ctx context.Context, id string, at time.Time) error {
	query := `
		UPDATE bookings
		SET status = 'active', activated_at = $2, updated_at = $2
		WHERE id = $1 AND status = 'confirmed';
    `

	res, err := r.db.ExecContext(ctx, query, id, at)
	if err != nil {
		return fmt.Errorf("failed to activate booking: %w", err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrBookingNotConfirmed
	}

	return nil
}

// CloseIfReviewed closes a booking once both the renter and the owner have reviewed it.
//
// The booking row is locked for the duration of the check so two reviews landing at
// the same time cannot both miss the close. It reports true only for the call that
// performed the transition.
func (r *Repository) CloseIfReviewed(ctx context.Context, id string, at time.Time) (bool, error) {
	tx, err := r.db.Master.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var status string
	err = tx.QueryRowContext(ctx, `
		SELECT status
		FROM bookings
		WHERE id = $1
		FOR UPDATE;
    `, id).Scan(&status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, ErrBookingNotFound
		}

		return false, fmt.Errorf("failed to lock booking: %w", err)
	}

	var renterReviews, ownerReviews int
	err = tx.QueryRowContext(ctx, `
		SELECT COUNT(*) FILTER (WHERE reviewer_type = 'renter'),
		       COUNT(*) FILTER (WHERE reviewer_type = 'owner')
		FROM reviews
		WHERE booking_id = $1;
    `, id).Scan(&renterReviews, &ownerReviews)
	if err != nil {
		return false, fmt.Errorf("failed to count reviews: %w", err)
	}

	if renterReviews == 0 || ownerReviews == 0 || status == model.StatusClosed {
		return false, tx.Commit()
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE bookings
		SET status = 'closed', closed_at = $2, updated_at = $2
		WHERE id = $1;
    `, id, at)
	if err != nil {
		return false, fmt.Errorf("failed to close booking: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit booking close: %w", err)
	}

	return true, nil
}
