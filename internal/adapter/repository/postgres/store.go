// Package postgres persists hotel records in PostgreSQL through database/sql
// and lib/pq. Tables: rooms, bookings, payments, users.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/srgjo27/hotel_booking/internal/core/domain"
	"github.com/srgjo27/hotel_booking/internal/core/ports"
)

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Rooms() ports.RoomRepository       { return &RoomRepository{q: s.db} }
func (s *Store) Bookings() ports.BookingRepository { return &BookingRepository{q: s.db} }
func (s *Store) Payments() ports.PaymentRepository { return &PaymentRepository{q: s.db} }
func (s *Store) Users() ports.UserRepository       { return &UserRepository{q: s.db} }

// WithinTx runs fn in a single transaction. Reads of rooms and bookings made
// through tx take row locks that are held until commit or rollback.
func (s *Store) WithinTx(ctx context.Context, fn func(tx ports.Repositories) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer tx.Rollback()

	if err := fn(&txRepos{tx: tx}); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

type txRepos struct {
	tx *sql.Tx
}

func (t *txRepos) Rooms() ports.RoomRepository {
	return &RoomRepository{q: t.tx, forUpdate: true}
}

func (t *txRepos) Bookings() ports.BookingRepository {
	return &BookingRepository{q: t.tx, forUpdate: true}
}

func (t *txRepos) Payments() ports.PaymentRepository { return &PaymentRepository{q: t.tx} }
func (t *txRepos) Users() ports.UserRepository       { return &UserRepository{q: t.tx} }

const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

func notFound(err, sentinel error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return sentinel
	}
	return err
}

// errCorruptRow marks a stored value that no domain type accepts.
var errCorruptRow = errors.New("corrupt row")

func roomStatus(raw string) (domain.RoomStatus, error) {
	st, err := domain.ParseRoomStatus(raw)
	if err != nil {
		return "", fmt.Errorf("%w: room status %q", errCorruptRow, raw)
	}
	return st, nil
}

func bookingStatus(raw string) (domain.BookingStatus, error) {
	st, err := domain.ParseBookingStatus(raw)
	if err != nil {
		return "", fmt.Errorf("%w: booking status %q", errCorruptRow, raw)
	}
	return st, nil
}

func lockClause(forUpdate bool) string {
	if forUpdate {
		return " FOR UPDATE"
	}
	return ""
}

// affectedOne maps an UPDATE that touched no row to sentinel.
func affectedOne(res sql.Result, sentinel error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sentinel
	}
	return nil
}

var _ ports.Store = (*Store)(nil)
