package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/srgjo27/hotel_booking/internal/core/domain"
	"github.com/srgjo27/hotel_booking/internal/core/ports"
)

const defaultStoreTimeout = 5 * time.Second

type CreateBookingRequest struct {
	GuestID       uuid.UUID
	RoomNumber    string
	CheckIn       time.Time
	CheckOut      time.Time
	PaymentMethod string
}

type AddRoomRequest struct {
	Number string
	Type   string
	Price  decimal.Decimal
	Status string
}

type ReservationService struct {
	store     ports.Store
	locker    ports.RoomLocker
	publisher ports.EventPublisher
	now       func() time.Time
	timeout   time.Duration
}

type Option func(*ReservationService)

func WithClock(now func() time.Time) Option {
	return func(s *ReservationService) { s.now = now }
}

// WithStoreTimeout bounds every operation's use of the store.
func WithStoreTimeout(d time.Duration) Option {
	return func(s *ReservationService) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// NewReservationService wires the engine. locker and publisher may be nil.
func NewReservationService(store ports.Store, locker ports.RoomLocker, publisher ports.EventPublisher, opts ...Option) *ReservationService {
	s := &ReservationService{
		store:     store,
		locker:    locker,
		publisher: publisher,
		now:       time.Now,
		timeout:   defaultStoreTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateBooking reserves an available room, records its single payment and
// marks the room Booked, all in one transaction.
func (s *ReservationService) CreateBooking(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	if req.GuestID == uuid.Nil {
		return nil, fmt.Errorf("%w: guest id is required", domain.ErrUserNotFound)
	}

	method, err := domain.ParsePaymentMethod(req.PaymentMethod)
	if err != nil {
		return nil, err
	}

	roomNumber := strings.TrimSpace(req.RoomNumber)
	if roomNumber == "" {
		return nil, fmt.Errorf("%w: room number is required", domain.ErrRoomNotFound)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	unlock, err := s.lockRoom(ctx, roomNumber)
	if err != nil {
		return nil, err
	}
	defer unlock()

	now := s.now().UTC()
	booking := &domain.Booking{
		ID:         uuid.New(),
		GuestID:    req.GuestID,
		RoomNumber: roomNumber,
		CheckIn:    domain.DateOnly(req.CheckIn),
		CheckOut:   domain.DateOnly(req.CheckOut),
		Status:     domain.BookingBooked,
		CreatedAt:  now,
	}

	err = s.store.WithinTx(ctx, func(tx ports.Repositories) error {
		room, err := tx.Rooms().FindRoomByNumber(ctx, roomNumber)
		if err != nil {
			return domain.StoreError("find room", err)
		}

		if !room.IsAvailable() {
			return fmt.Errorf("%w: room %s is %s", domain.ErrRoomUnavailable, room.Number, room.Status)
		}

		total, err := domain.ComputeTotal(room.Price, booking.CheckIn, booking.CheckOut)
		if err != nil {
			return err
		}

		booking.RoomID = room.ID
		booking.TotalPrice = total

		if err := tx.Bookings().InsertBooking(ctx, booking); err != nil {
			return domain.StoreError("insert booking", err)
		}

		payment := &domain.Payment{
			ID:        uuid.New(),
			BookingID: booking.ID,
			Amount:    total,
			PaidAt:    now,
			Method:    method,
		}
		if err := tx.Payments().InsertPayment(ctx, payment); err != nil {
			return domain.StoreError("insert payment", err)
		}

		if err := tx.Rooms().UpdateRoomStatus(ctx, room.ID, domain.RoomBooked); err != nil {
			return domain.StoreError("update room status", err)
		}

		return nil
	})
	if err != nil {
		return nil, domain.StoreError("create booking", err)
	}

	log.Printf("Booking %s created: room %s, %s to %s, total %s", booking.ID, roomNumber,
		booking.CheckIn.Format(domain.DateLayout), booking.CheckOut.Format(domain.DateLayout), booking.TotalPrice.StringFixed(2))

	event := domain.NewBookingEvent(domain.EventBookingCreated, booking, domain.RoomBooked, now)
	event.PaymentMethod = method
	s.publish(ctx, event)

	return booking, nil
}

// CheckInOut applies action to the booking and its room together.
func (s *ReservationService) CheckInOut(ctx context.Context, bookingID uuid.UUID, action domain.Action) (*domain.Booking, error) {
	return s.transition(ctx, bookingID, action, nil)
}

func (s *ReservationService) CancelBooking(ctx context.Context, bookingID uuid.UUID) (*domain.Booking, error) {
	return s.transition(ctx, bookingID, domain.ActionCancel, nil)
}

// CancelBookingAsGuest cancels a booking only if it belongs to guestID.
func (s *ReservationService) CancelBookingAsGuest(ctx context.Context, guestID, bookingID uuid.UUID) (*domain.Booking, error) {
	return s.transition(ctx, bookingID, domain.ActionCancel, func(b *domain.Booking) error {
		if b.GuestID != guestID {
			return fmt.Errorf("%w: booking %s belongs to another guest", domain.ErrForbidden, b.ID)
		}
		return nil
	})
}

func (s *ReservationService) transition(ctx context.Context, bookingID uuid.UUID, action domain.Action, guard func(*domain.Booking) error) (*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var (
		booking    *domain.Booking
		roomStatus domain.RoomStatus
	)

	err := s.store.WithinTx(ctx, func(tx ports.Repositories) error {
		b, err := tx.Bookings().FindBookingByID(ctx, bookingID)
		if err != nil {
			return domain.StoreError("find booking", err)
		}

		if guard != nil {
			if err := guard(b); err != nil {
				return err
			}
		}

		next, rs, err := domain.Transition(b.Status, action)
		if err != nil {
			return fmt.Errorf("booking %s: %w", b.ID, err)
		}

		if err := tx.Bookings().UpdateBookingStatus(ctx, b.ID, next); err != nil {
			return domain.StoreError("update booking status", err)
		}
		if err := tx.Rooms().UpdateRoomStatus(ctx, b.RoomID, rs); err != nil {
			return domain.StoreError("update room status", err)
		}

		b.Status = next
		booking, roomStatus = b, rs
		return nil
	})
	if err != nil {
		return nil, domain.StoreError(string(action), err)
	}

	log.Printf("Booking %s is now %s, room %s is %s", booking.ID, booking.Status, booking.RoomNumber, roomStatus)
	s.publish(ctx, domain.NewBookingEvent(domain.EventBookingStatusChanged, booking, roomStatus, s.now()))

	return booking, nil
}

// ListBookings returns the guest's own bookings, or every booking when
// guestID is nil.
func (s *ReservationService) ListBookings(ctx context.Context, guestID *uuid.UUID) ([]domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	bookings, err := s.store.Bookings().ListBookings(ctx, guestID)
	if err != nil {
		return nil, domain.StoreError("list bookings", err)
	}
	return bookings, nil
}

func (s *ReservationService) ListRooms(ctx context.Context) ([]domain.Room, error) {
	return s.listRooms(ctx, nil)
}

func (s *ReservationService) ListAvailableRooms(ctx context.Context) ([]domain.Room, error) {
	status := domain.RoomAvailable
	return s.listRooms(ctx, &status)
}

func (s *ReservationService) listRooms(ctx context.Context, status *domain.RoomStatus) ([]domain.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	rooms, err := s.store.Rooms().ListRooms(ctx, status)
	if err != nil {
		return nil, domain.StoreError("list rooms", err)
	}
	return rooms, nil
}

// AddRoom adds a room to the inventory. New rooms enter service either
// Available or under Maintenance; Booked and Occupied are reachable only
// through bookings.
func (s *ReservationService) AddRoom(ctx context.Context, req AddRoomRequest) (*domain.Room, error) {
	number := strings.TrimSpace(req.Number)
	if number == "" {
		return nil, fmt.Errorf("%w: room number is required", domain.ErrInvalidRoom)
	}

	if !req.Price.IsPositive() {
		return nil, domain.ErrInvalidRate
	}

	status := domain.RoomAvailable
	if strings.TrimSpace(req.Status) != "" {
		st, err := domain.ParseRoomStatus(req.Status)
		if err != nil {
			return nil, err
		}
		status = st
	}
	if status != domain.RoomAvailable && status != domain.RoomMaintenance {
		return nil, fmt.Errorf("%w: a new room cannot start as %s", domain.ErrInvalidRoomStatus, status)
	}

	roomType := strings.TrimSpace(req.Type)
	if roomType == "" {
		roomType = "Standard"
	}

	room := &domain.Room{
		ID:     uuid.New(),
		Number: number,
		Type:   roomType,
		Price:  req.Price.Round(2),
		Status: status,
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.store.Rooms().InsertRoom(ctx, room); err != nil {
		return nil, domain.StoreError("insert room", err)
	}

	return room, nil
}

// SetRoomStatus takes a room out of service or returns it. Only Available and
// Maintenance are accepted, and only for a room in one of those two states;
// Booked and Occupied rooms follow their booking.
func (s *ReservationService) SetRoomStatus(ctx context.Context, number, status string) (*domain.Room, error) {
	target, err := domain.ParseRoomStatus(status)
	if err != nil {
		return nil, err
	}
	if target != domain.RoomAvailable && target != domain.RoomMaintenance {
		return nil, fmt.Errorf("%w: %s is set by bookings", domain.ErrInvalidRoomStatus, target)
	}

	number = strings.TrimSpace(number)

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var room *domain.Room
	err = s.store.WithinTx(ctx, func(tx ports.Repositories) error {
		r, err := tx.Rooms().FindRoomByNumber(ctx, number)
		if err != nil {
			return domain.StoreError("find room", err)
		}

		if r.Status != domain.RoomAvailable && r.Status != domain.RoomMaintenance {
			return fmt.Errorf("%w: room %s is %s", domain.ErrRoomUnavailable, r.Number, r.Status)
		}

		if r.Status != target {
			if err := tx.Rooms().UpdateRoomStatus(ctx, r.ID, target); err != nil {
				return domain.StoreError("update room status", err)
			}
			r.Status = target
		}

		room = r
		return nil
	})
	if err != nil {
		return nil, domain.StoreError("set room status", err)
	}

	log.Printf("Room %s is now %s", room.Number, room.Status)
	return room, nil
}

func (s *ReservationService) lockRoom(ctx context.Context, roomNumber string) (func(), error) {
	if s.locker == nil {
		return func() {}, nil
	}

	unlock, err := s.locker.Lock(ctx, roomNumber)
	if err != nil {
		if errors.Is(err, ports.ErrLockNotAcquired) {
			return nil, fmt.Errorf("%w: room %s is being reserved by another request", domain.ErrRoomUnavailable, roomNumber)
		}
		return nil, domain.StoreError("lock room", err)
	}
	return unlock, nil
}

func (s *ReservationService) publish(ctx context.Context, event domain.BookingEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.Printf("Failed to publish %s for booking %s: %v", event.Type, event.BookingID, err)
	}
}
