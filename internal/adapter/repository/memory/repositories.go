package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/srgjo27/hotel_booking/internal/core/domain"
)

type RoomRepository struct {
	with access
}

func (r *RoomRepository) FindRoomByNumber(ctx context.Context, number string) (*domain.Room, error) {
	var out *domain.Room
	err := r.with(ctx, func(st *state) error {
		for _, room := range st.rooms {
			if room.Number == number {
				room := room
				out = &room
				return nil
			}
		}
		return domain.ErrRoomNotFound
	})
	return out, err
}

func (r *RoomRepository) UpdateRoomStatus(ctx context.Context, roomID uuid.UUID, status domain.RoomStatus) error {
	return r.with(ctx, func(st *state) error {
		room, ok := st.rooms[roomID]
		if !ok {
			return domain.ErrRoomNotFound
		}
		room.Status = status
		st.rooms[roomID] = room
		return nil
	})
}

func (r *RoomRepository) InsertRoom(ctx context.Context, room *domain.Room) error {
	return r.with(ctx, func(st *state) error {
		for _, existing := range st.rooms {
			if existing.Number == room.Number {
				return fmt.Errorf("%w: %s", domain.ErrRoomExists, room.Number)
			}
		}
		st.rooms[room.ID] = *room
		return nil
	})
}

func (r *RoomRepository) ListRooms(ctx context.Context, status *domain.RoomStatus) ([]domain.Room, error) {
	rooms := make([]domain.Room, 0)
	err := r.with(ctx, func(st *state) error {
		for _, room := range st.rooms {
			if status == nil || room.Status == *status {
				rooms = append(rooms, room)
			}
		}
		return nil
	})
	sort.Slice(rooms, func(i, j int) bool { return rooms[i].Number < rooms[j].Number })
	return rooms, err
}

func (r *RoomRepository) ListRoomsGroupedByStatus(ctx context.Context) ([]domain.OccupancyEntry, error) {
	counts := make(map[domain.RoomStatus]int)
	err := r.with(ctx, func(st *state) error {
		for _, room := range st.rooms {
			counts[room.Status]++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := make([]domain.OccupancyEntry, 0, len(counts))
	for status, n := range counts {
		out = append(out, domain.OccupancyEntry{Status: status, Count: n})
	}
	return out, nil
}

type BookingRepository struct {
	with access
}

func (r *BookingRepository) InsertBooking(ctx context.Context, booking *domain.Booking) error {
	return r.with(ctx, func(st *state) error {
		if _, ok := st.rooms[booking.RoomID]; !ok {
			return domain.ErrRoomNotFound
		}
		if _, dup := st.bookings[booking.ID]; dup {
			return fmt.Errorf("booking %s already exists", booking.ID)
		}
		st.bookings[booking.ID] = *booking
		return nil
	})
}

func (r *BookingRepository) UpdateBookingStatus(ctx context.Context, bookingID uuid.UUID, status domain.BookingStatus) error {
	return r.with(ctx, func(st *state) error {
		b, ok := st.bookings[bookingID]
		if !ok {
			return domain.ErrBookingNotFound
		}
		b.Status = status
		st.bookings[bookingID] = b
		return nil
	})
}

func (r *BookingRepository) FindBookingByID(ctx context.Context, bookingID uuid.UUID) (*domain.Booking, error) {
	var out *domain.Booking
	err := r.with(ctx, func(st *state) error {
		b, ok := st.bookings[bookingID]
		if !ok {
			return domain.ErrBookingNotFound
		}
		if room, ok := st.rooms[b.RoomID]; ok {
			b.RoomNumber = room.Number
		}
		out = &b
		return nil
	})
	return out, err
}

func (r *BookingRepository) ListBookings(ctx context.Context, guestID *uuid.UUID) ([]domain.Booking, error) {
	bookings := make([]domain.Booking, 0)
	err := r.with(ctx, func(st *state) error {
		for _, b := range st.bookings {
			if guestID != nil && b.GuestID != *guestID {
				continue
			}
			if room, ok := st.rooms[b.RoomID]; ok {
				b.RoomNumber = room.Number
			}
			bookings = append(bookings, b)
		}
		return nil
	})
	sort.Slice(bookings, func(i, j int) bool {
		if bookings[i].CreatedAt.Equal(bookings[j].CreatedAt) {
			return bookings[i].ID.String() < bookings[j].ID.String()
		}
		return bookings[i].CreatedAt.Before(bookings[j].CreatedAt)
	})
	return bookings, err
}

type PaymentRepository struct {
	with access
}

func (r *PaymentRepository) InsertPayment(ctx context.Context, payment *domain.Payment) error {
	return r.with(ctx, func(st *state) error {
		if _, ok := st.bookings[payment.BookingID]; !ok {
			return domain.ErrBookingNotFound
		}
		st.payments[payment.ID] = *payment
		return nil
	})
}

func (r *PaymentRepository) ListPaymentsGroupedByMonth(ctx context.Context) ([]domain.RevenueEntry, error) {
	sums := make(map[string]decimal.Decimal)
	err := r.with(ctx, func(st *state) error {
		for _, p := range st.payments {
			month := p.PaidAt.UTC().Format("2006-01")
			sums[month] = sums[month].Add(p.Amount)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := make([]domain.RevenueEntry, 0, len(sums))
	for month, total := range sums {
		out = append(out, domain.RevenueEntry{Month: month, Total: total})
	}
	return out, nil
}

type UserRepository struct {
	with access
}

func (r *UserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	var out *domain.User
	err := r.with(ctx, func(st *state) error {
		for _, u := range st.users {
			if u.Username == username {
				u := u
				out = &u
				return nil
			}
		}
		return domain.ErrUserNotFound
	})
	return out, err
}

func (r *UserRepository) InsertUser(ctx context.Context, user *domain.User) error {
	return r.with(ctx, func(st *state) error {
		for _, u := range st.users {
			if u.Username == user.Username {
				return fmt.Errorf("%w: %s", domain.ErrUserExists, user.Username)
			}
		}
		st.users[user.ID] = *user
		return nil
	})
}

func (r *UserRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	users := make([]domain.User, 0)
	err := r.with(ctx, func(st *state) error {
		for _, u := range st.users {
			users = append(users, u)
		}
		return nil
	})
	sort.Slice(users, func(i, j int) bool { return users[i].Username < users[j].Username })
	return users, err
}
