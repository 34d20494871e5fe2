package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/srgjo27/hotel_booking/internal/core/domain"
)

type RoomRepository struct {
	q         querier
	forUpdate bool
}

func (r *RoomRepository) FindRoomByNumber(ctx context.Context, number string) (*domain.Room, error) {
	query := `
	SELECT id, room_number, room_type, price, status
	FROM rooms
	WHERE room_number = $1` + lockClause(r.forUpdate)

	var (
		room   domain.Room
		status string
	)
	err := r.q.QueryRowContext(ctx, query, number).Scan(
		&room.ID,
		&room.Number,
		&room.Type,
		&room.Price,
		&status,
	)
	if err != nil {
		return nil, notFound(err, domain.ErrRoomNotFound)
	}

	if room.Status, err = roomStatus(status); err != nil {
		return nil, err
	}

	return &room, nil
}

func (r *RoomRepository) UpdateRoomStatus(ctx context.Context, roomID uuid.UUID, status domain.RoomStatus) error {
	res, err := r.q.ExecContext(ctx, `UPDATE rooms SET status = $1 WHERE id = $2`, status, roomID)
	if err != nil {
		return err
	}

	return affectedOne(res, domain.ErrRoomNotFound)
}

func (r *RoomRepository) InsertRoom(ctx context.Context, room *domain.Room) error {
	query := `
	INSERT INTO rooms (id, room_number, room_type, price, status)
	VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.q.ExecContext(ctx, query, room.ID, room.Number, room.Type, room.Price, room.Status)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", domain.ErrRoomExists, room.Number)
		}
		return err
	}

	return nil
}

func (r *RoomRepository) ListRooms(ctx context.Context, status *domain.RoomStatus) ([]domain.Room, error) {
	query := `SELECT id, room_number, room_type, price, status FROM rooms`
	var args []any
	if status != nil {
		query += ` WHERE status = $1`
		args = append(args, *status)
	}
	query += ` ORDER BY room_number`

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	rooms := make([]domain.Room, 0)
	for rows.Next() {
		var (
			room   domain.Room
			status string
			err    error
		)
		if err = rows.Scan(&room.ID, &room.Number, &room.Type, &room.Price, &status); err != nil {
			return nil, err
		}
		if room.Status, err = roomStatus(status); err != nil {
			return nil, err
		}
		rooms = append(rooms, room)
	}

	return rooms, rows.Err()
}

func (r *RoomRepository) ListRoomsGroupedByStatus(ctx context.Context) ([]domain.OccupancyEntry, error) {
	rows, err := r.q.QueryContext(ctx, `SELECT status, COUNT(*) FROM rooms GROUP BY status`)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var out []domain.OccupancyEntry
	for rows.Next() {
		var (
			e      domain.OccupancyEntry
			status string
			err    error
		)
		if err = rows.Scan(&status, &e.Count); err != nil {
			return nil, err
		}
		if e.Status, err = roomStatus(status); err != nil {
			return nil, err
		}
		out = append(out, e)
	}

	return out, rows.Err()
}
