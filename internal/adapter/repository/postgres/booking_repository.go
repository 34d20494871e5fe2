package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/srgjo27/hotel_booking/internal/core/domain"
)

type BookingRepository struct {
	q         querier
	forUpdate bool
}

func (r *BookingRepository) InsertBooking(ctx context.Context, booking *domain.Booking) error {
	query := `
	INSERT INTO bookings (id, guest_id, room_id, check_in, check_out, total_price, status, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.q.ExecContext(ctx, query,
		booking.ID,
		booking.GuestID,
		booking.RoomID,
		booking.CheckIn,
		booking.CheckOut,
		booking.TotalPrice,
		booking.Status,
		booking.CreatedAt,
	)

	return err
}

func (r *BookingRepository) UpdateBookingStatus(ctx context.Context, bookingID uuid.UUID, status domain.BookingStatus) error {
	res, err := r.q.ExecContext(ctx, `UPDATE bookings SET status = $1 WHERE id = $2`, status, bookingID)
	if err != nil {
		return err
	}

	return affectedOne(res, domain.ErrBookingNotFound)
}

func (r *BookingRepository) FindBookingByID(ctx context.Context, bookingID uuid.UUID) (*domain.Booking, error) {
	// Only the booking row is locked; the room is locked by its own lookup.
	query := `
	SELECT b.id, b.guest_id, b.room_id, r.room_number, b.check_in, b.check_out, b.total_price, b.status, b.created_at
	FROM bookings b
	JOIN rooms r ON r.id = b.room_id
	WHERE b.id = $1`
	if r.forUpdate {
		query += ` FOR UPDATE OF b`
	}

	b, err := scanBooking(r.q.QueryRowContext(ctx, query, bookingID))
	if err != nil {
		return nil, notFound(err, domain.ErrBookingNotFound)
	}

	return b, nil
}

func (r *BookingRepository) ListBookings(ctx context.Context, guestID *uuid.UUID) ([]domain.Booking, error) {
	query := `
	SELECT b.id, b.guest_id, b.room_id, r.room_number, b.check_in, b.check_out, b.total_price, b.status, b.created_at
	FROM bookings b
	JOIN rooms r ON r.id = b.room_id`
	var args []any
	if guestID != nil {
		query += ` WHERE b.guest_id = $1`
		args = append(args, *guestID)
	}
	query += ` ORDER BY b.created_at, b.id`

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	bookings := make([]domain.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *b)
	}

	return bookings, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanBooking(row scanner) (*domain.Booking, error) {
	var (
		b      domain.Booking
		status string
	)
	err := row.Scan(
		&b.ID,
		&b.GuestID,
		&b.RoomID,
		&b.RoomNumber,
		&b.CheckIn,
		&b.CheckOut,
		&b.TotalPrice,
		&status,
		&b.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if b.Status, err = bookingStatus(status); err != nil {
		return nil, err
	}

	normalize(&b)
	return &b, nil
}

// normalize drops the session time zone lib/pq attaches to DATE columns.
func normalize(b *domain.Booking) {
	b.CheckIn = domain.DateOnly(b.CheckIn)
	b.CheckOut = domain.DateOnly(b.CheckOut)
	b.CreatedAt = b.CreatedAt.UTC()
}
