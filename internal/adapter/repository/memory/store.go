// Package memory keeps the hotel's records in process memory. Transactions
// are serialised and work on a private copy that replaces the live data only
// on commit, so a failed transaction leaves nothing behind.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/srgjo27/hotel_booking/internal/core/domain"
	"github.com/srgjo27/hotel_booking/internal/core/ports"
)

type state struct {
	rooms    map[uuid.UUID]domain.Room
	bookings map[uuid.UUID]domain.Booking
	payments map[uuid.UUID]domain.Payment
	users    map[uuid.UUID]domain.User
}

func newState() *state {
	return &state{
		rooms:    make(map[uuid.UUID]domain.Room),
		bookings: make(map[uuid.UUID]domain.Booking),
		payments: make(map[uuid.UUID]domain.Payment),
		users:    make(map[uuid.UUID]domain.User),
	}
}

func (s *state) clone() *state {
	c := &state{
		rooms:    make(map[uuid.UUID]domain.Room, len(s.rooms)),
		bookings: make(map[uuid.UUID]domain.Booking, len(s.bookings)),
		payments: make(map[uuid.UUID]domain.Payment, len(s.payments)),
		users:    make(map[uuid.UUID]domain.User, len(s.users)),
	}
	for k, v := range s.rooms {
		c.rooms[k] = v
	}
	for k, v := range s.bookings {
		c.bookings[k] = v
	}
	for k, v := range s.payments {
		c.payments[k] = v
	}
	for k, v := range s.users {
		c.users[k] = v
	}
	return c
}

// access runs fn against a consistent view of the data.
type access func(ctx context.Context, fn func(st *state) error) error

type Store struct {
	mu   sync.Mutex
	data *state
}

func NewStore() *Store {
	return &Store{data: newState()}
}

func (s *Store) direct(ctx context.Context, fn func(st *state) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.data)
}

func (s *Store) Rooms() ports.RoomRepository       { return &RoomRepository{with: s.direct} }
func (s *Store) Bookings() ports.BookingRepository { return &BookingRepository{with: s.direct} }
func (s *Store) Payments() ports.PaymentRepository { return &PaymentRepository{with: s.direct} }
func (s *Store) Users() ports.UserRepository       { return &UserRepository{with: s.direct} }

// WithinTx must not be re-entered from fn through the Store itself; fn
// works only through the tx it is given.
func (s *Store) WithinTx(ctx context.Context, fn func(tx ports.Repositories) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	staged := s.data.clone()
	tx := &txRepos{with: func(ctx context.Context, f func(st *state) error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		return f(staged)
	}}

	if err := fn(tx); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.data = staged
	return nil
}

// PaymentsForBooking lists the payments recorded against a booking.
func (s *Store) PaymentsForBooking(bookingID uuid.UUID) []domain.Payment {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.Payment
	for _, p := range s.data.payments {
		if p.BookingID == bookingID {
			out = append(out, p)
		}
	}
	return out
}

type txRepos struct {
	with access
}

func (t *txRepos) Rooms() ports.RoomRepository       { return &RoomRepository{with: t.with} }
func (t *txRepos) Bookings() ports.BookingRepository { return &BookingRepository{with: t.with} }
func (t *txRepos) Payments() ports.PaymentRepository { return &PaymentRepository{with: t.with} }
func (t *txRepos) Users() ports.UserRepository       { return &UserRepository{with: t.with} }
