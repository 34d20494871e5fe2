package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/srgjo27/hotel_booking/internal/core/domain"
)

type RoomRepository interface {
	// FindRoomByNumber returns domain.ErrRoomNotFound when no room matches.
	// Inside Store.WithinTx the row stays locked until the transaction ends.
	FindRoomByNumber(ctx context.Context, number string) (*domain.Room, error)
	UpdateRoomStatus(ctx context.Context, roomID uuid.UUID, status domain.RoomStatus) error
	InsertRoom(ctx context.Context, room *domain.Room) error
	// ListRooms returns every room, or only those in status when it is non-nil.
	ListRooms(ctx context.Context, status *domain.RoomStatus) ([]domain.Room, error)
	ListRoomsGroupedByStatus(ctx context.Context) ([]domain.OccupancyEntry, error)
}

type BookingRepository interface {
	InsertBooking(ctx context.Context, booking *domain.Booking) error
	UpdateBookingStatus(ctx context.Context, bookingID uuid.UUID, status domain.BookingStatus) error
	// FindBookingByID returns domain.ErrBookingNotFound when no booking matches.
	FindBookingByID(ctx context.Context, bookingID uuid.UUID) (*domain.Booking, error)
	// ListBookings returns all bookings, or only the guest's when guestID is non-nil.
	ListBookings(ctx context.Context, guestID *uuid.UUID) ([]domain.Booking, error)
}

type PaymentRepository interface {
	InsertPayment(ctx context.Context, payment *domain.Payment) error
	ListPaymentsGroupedByMonth(ctx context.Context) ([]domain.RevenueEntry, error)
}

type UserRepository interface {
	// FindUserByUsername returns domain.ErrUserNotFound when no user matches.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
	InsertUser(ctx context.Context, user *domain.User) error
	ListUsers(ctx context.Context) ([]domain.User, error)
}

type Repositories interface {
	Rooms() RoomRepository
	Bookings() BookingRepository
	Payments() PaymentRepository
	Users() UserRepository
}

// Store is the persistence collaborator. Writes made through the
// Repositories handed to fn commit together when fn returns nil and are
// discarded otherwise.
type Store interface {
	Repositories
	WithinTx(ctx context.Context, fn func(tx Repositories) error) error
}
