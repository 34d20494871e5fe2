package services_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/srgjo27/hotel_booking/internal/adapter/lock"
	"github.com/srgjo27/hotel_booking/internal/adapter/repository/memory"
	"github.com/srgjo27/hotel_booking/internal/core/domain"
	"github.com/srgjo27/hotel_booking/internal/core/ports"
	"github.com/srgjo27/hotel_booking/internal/core/ports/mocks"
	"github.com/srgjo27/hotel_booking/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func day(s string) time.Time {
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func newHotel(t *testing.T) *memory.Store {
	t.Helper()
	store := memory.NewStore()
	for _, r := range []domain.Room{
		{ID: uuid.New(), Number: "101", Type: "Standard", Price: decimal.RequireFromString("100.00"), Status: domain.RoomAvailable},
		{ID: uuid.New(), Number: "102", Type: "Deluxe", Price: decimal.RequireFromString("150.00"), Status: domain.RoomAvailable},
		{ID: uuid.New(), Number: "201", Type: "Suite", Price: decimal.RequireFromString("250.00"), Status: domain.RoomMaintenance},
	} {
		r := r
		require.NoError(t, store.Rooms().InsertRoom(context.Background(), &r))
	}
	return store
}

func roomStatus(t *testing.T, store *memory.Store, number string) domain.RoomStatus {
	t.Helper()
	room, err := store.Rooms().FindRoomByNumber(context.Background(), number)
	require.NoError(t, err)
	return room.Status
}

func book(t *testing.T, svc *services.ReservationService, guest uuid.UUID, room string) *domain.Booking {
	t.Helper()
	b, err := svc.CreateBooking(context.Background(), services.CreateBookingRequest{
		GuestID:       guest,
		RoomNumber:    room,
		CheckIn:       day("2024-01-10"),
		CheckOut:      day("2024-01-12"),
		PaymentMethod: "Cash",
	})
	require.NoError(t, err)
	return b
}

func TestCreateBooking_Success(t *testing.T) {
	store := newHotel(t)
	publisher := mocks.NewEventPublisher(t)
	publisher.On("Publish", mock.Anything, mock.MatchedBy(func(e domain.BookingEvent) bool {
		return e.Type == domain.EventBookingCreated && e.PaymentMethod == domain.PaymentCreditCard && e.RoomStatus == domain.RoomBooked
	})).Return(nil).Once()

	svc := services.NewReservationService(store, nil, publisher, services.WithClock(clock))
	guest := uuid.New()

	b, err := svc.CreateBooking(context.Background(), services.CreateBookingRequest{
		GuestID:       guest,
		RoomNumber:    "101",
		CheckIn:       day("2024-01-10"),
		CheckOut:      day("2024-01-12"),
		PaymentMethod: "Credit Card",
	})

	require.NoError(t, err)
	assert.Equal(t, "200.00", b.TotalPrice.StringFixed(2))
	assert.Equal(t, domain.BookingBooked, b.Status)
	assert.Equal(t, guest, b.GuestID)
	assert.Equal(t, fixedNow, b.CreatedAt)
	assert.Equal(t, domain.RoomBooked, roomStatus(t, store, "101"))

	payments := store.PaymentsForBooking(b.ID)
	require.Len(t, payments, 1)
	assert.True(t, payments[0].Amount.Equal(b.TotalPrice))
	assert.Equal(t, domain.PaymentCreditCard, payments[0].Method)
	assert.Equal(t, fixedNow, payments[0].PaidAt)
}

func TestCreateBooking_Failures(t *testing.T) {
	tests := []struct {
		name    string
		req     services.CreateBookingRequest
		wantErr error
	}{
		{
			name:    "unknown room",
			req:     services.CreateBookingRequest{RoomNumber: "999", CheckIn: day("2024-01-10"), CheckOut: day("2024-01-12"), PaymentMethod: "Cash"},
			wantErr: domain.ErrRoomNotFound,
		},
		{
			name:    "room under maintenance",
			req:     services.CreateBookingRequest{RoomNumber: "201", CheckIn: day("2024-01-10"), CheckOut: day("2024-01-12"), PaymentMethod: "Cash"},
			wantErr: domain.ErrRoomUnavailable,
		},
		{
			name:    "check-out equals check-in",
			req:     services.CreateBookingRequest{RoomNumber: "101", CheckIn: day("2024-01-10"), CheckOut: day("2024-01-10"), PaymentMethod: "Cash"},
			wantErr: domain.ErrInvalidDateRange,
		},
		{
			name:    "check-out before check-in",
			req:     services.CreateBookingRequest{RoomNumber: "101", CheckIn: day("2024-01-12"), CheckOut: day("2024-01-10"), PaymentMethod: "Cash"},
			wantErr: domain.ErrInvalidDateRange,
		},
		{
			name:    "unsupported payment method",
			req:     services.CreateBookingRequest{RoomNumber: "101", CheckIn: day("2024-01-10"), CheckOut: day("2024-01-12"), PaymentMethod: "Bitcoin"},
			wantErr: domain.ErrInvalidPaymentMethod,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newHotel(t)
			svc := services.NewReservationService(store, nil, nil, services.WithClock(clock))
			tt.req.GuestID = uuid.New()

			b, err := svc.CreateBooking(context.Background(), tt.req)

			assert.Nil(t, b)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.NotErrorIs(t, err, domain.ErrStore)

			bookings, err := store.Bookings().ListBookings(context.Background(), nil)
			require.NoError(t, err)
			assert.Empty(t, bookings)

			revenue, err := store.Payments().ListPaymentsGroupedByMonth(context.Background())
			require.NoError(t, err)
			assert.Empty(t, revenue)
		})
	}
}

func TestCreateBooking_SecondBookingOfSameRoomFails(t *testing.T) {
	store := newHotel(t)
	svc := services.NewReservationService(store, nil, nil)

	book(t, svc, uuid.New(), "101")

	_, err := svc.CreateBooking(context.Background(), services.CreateBookingRequest{
		GuestID: uuid.New(), RoomNumber: "101",
		CheckIn: day("2024-02-01"), CheckOut: day("2024-02-03"), PaymentMethod: "Cash",
	})
	assert.ErrorIs(t, err, domain.ErrRoomUnavailable)
}

func TestCreateBooking_ConcurrentRequestsForSameRoom(t *testing.T) {
	tests := []struct {
		name   string
		locker ports.RoomLocker
	}{
		{name: "store only", locker: nil},
		{name: "local locker", locker: lock.NewLocalLocker(time.Second)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raceForRoom(t, tt.locker)
		})
	}
}

func raceForRoom(t *testing.T, locker ports.RoomLocker) {
	t.Helper()
	store := newHotel(t)
	svc := services.NewReservationService(store, locker, nil)

	const callers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		rejected  int
	)

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.CreateBooking(context.Background(), services.CreateBookingRequest{
				GuestID: uuid.New(), RoomNumber: "101",
				CheckIn: day("2024-01-10"), CheckOut: day("2024-01-12"), PaymentMethod: "Cash",
			})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, domain.ErrRoomUnavailable):
				rejected++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, callers-1, rejected)

	bookings, err := store.Bookings().ListBookings(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, bookings, 1)
}

func TestCreateBooking_LockHeldElsewhere(t *testing.T) {
	store := mocks.NewStore(t)
	locker := mocks.NewRoomLocker(t)
	locker.On("Lock", mock.Anything, "101").Return(nil, ports.ErrLockNotAcquired)

	svc := services.NewReservationService(store, locker, nil)

	_, err := svc.CreateBooking(context.Background(), services.CreateBookingRequest{
		GuestID: uuid.New(), RoomNumber: "101",
		CheckIn: day("2024-01-10"), CheckOut: day("2024-01-12"), PaymentMethod: "Cash",
	})

	assert.ErrorIs(t, err, domain.ErrRoomUnavailable)
	store.AssertNotCalled(t, "WithinTx", mock.Anything, mock.Anything)
}

func TestCreateBooking_ReleasesLock(t *testing.T) {
	store := newHotel(t)
	locker := mocks.NewRoomLocker(t)
	released := 0
	locker.On("Lock", mock.Anything, "101").Return(func() { released++ }, nil).Twice()

	svc := services.NewReservationService(store, locker, nil)

	book(t, svc, uuid.New(), "101")
	_, err := svc.CreateBooking(context.Background(), services.CreateBookingRequest{
		GuestID: uuid.New(), RoomNumber: "101",
		CheckIn: day("2024-01-10"), CheckOut: day("2024-01-12"), PaymentMethod: "Cash",
	})

	assert.ErrorIs(t, err, domain.ErrRoomUnavailable)
	assert.Equal(t, 2, released)
}

func TestCreateBooking_StoreFailureRollsBack(t *testing.T) {
	store := mocks.NewStore(t)
	rooms := mocks.NewRoomRepository(t)
	bookings := mocks.NewBookingRepository(t)
	payments := mocks.NewPaymentRepository(t)
	dbDown := errors.New("connection reset")

	room := &domain.Room{ID: uuid.New(), Number: "101", Price: decimal.NewFromInt(100), Status: domain.RoomAvailable}

	store.On("WithinTx", mock.Anything, mock.Anything).Return(
		func(ctx context.Context, fn func(ports.Repositories) error) error { return fn(store) },
	)
	store.On("Rooms").Return(rooms)
	store.On("Bookings").Return(bookings)
	store.On("Payments").Return(payments)
	rooms.On("FindRoomByNumber", mock.Anything, "101").Return(room, nil)
	bookings.On("InsertBooking", mock.Anything, mock.AnythingOfType("*domain.Booking")).Return(nil)
	payments.On("InsertPayment", mock.Anything, mock.AnythingOfType("*domain.Payment")).Return(dbDown)

	svc := services.NewReservationService(store, nil, nil)

	b, err := svc.CreateBooking(context.Background(), services.CreateBookingRequest{
		GuestID: uuid.New(), RoomNumber: "101",
		CheckIn: day("2024-01-10"), CheckOut: day("2024-01-12"), PaymentMethod: "Cash",
	})

	assert.Nil(t, b)
	assert.ErrorIs(t, err, domain.ErrStore)
	assert.ErrorIs(t, err, dbDown)
	rooms.AssertNotCalled(t, "UpdateRoomStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateBooking_PublishFailureDoesNotFailBooking(t *testing.T) {
	store := newHotel(t)
	publisher := mocks.NewEventPublisher(t)
	publisher.On("Publish", mock.Anything, mock.Anything).Return(errors.New("broker down"))

	svc := services.NewReservationService(store, nil, publisher)

	b := book(t, svc, uuid.New(), "102")
	assert.Equal(t, "300.00", b.TotalPrice.StringFixed(2))
}

func TestCheckInOut_Lifecycle(t *testing.T) {
	store := newHotel(t)
	publisher := mocks.NewEventPublisher(t)
	publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)

	svc := services.NewReservationService(store, nil, publisher)
	b := book(t, svc, uuid.New(), "101")

	in, err := svc.CheckInOut(context.Background(), b.ID, domain.ActionCheckIn)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingCheckedIn, in.Status)
	assert.Equal(t, domain.RoomOccupied, roomStatus(t, store, "101"))

	out, err := svc.CheckInOut(context.Background(), b.ID, domain.ActionCheckOut)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingCheckedOut, out.Status)
	assert.Equal(t, domain.RoomAvailable, roomStatus(t, store, "101"))

	publisher.AssertNumberOfCalls(t, "Publish", 3)
}

func TestCheckInOut_RejectsIllegalTransitions(t *testing.T) {
	store := newHotel(t)
	svc := services.NewReservationService(store, nil, nil)

	b := book(t, svc, uuid.New(), "101")

	_, err := svc.CheckInOut(context.Background(), b.ID, domain.ActionCheckOut)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.Equal(t, domain.RoomBooked, roomStatus(t, store, "101"))

	_, err = svc.CheckInOut(context.Background(), b.ID, domain.ActionCheckIn)
	require.NoError(t, err)

	_, err = svc.CancelBooking(context.Background(), b.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.Equal(t, domain.RoomOccupied, roomStatus(t, store, "101"))

	_, err = svc.CheckInOut(context.Background(), b.ID, domain.ActionCheckIn)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestCheckInOut_UnknownBooking(t *testing.T) {
	svc := services.NewReservationService(newHotel(t), nil, nil)

	_, err := svc.CheckInOut(context.Background(), uuid.New(), domain.ActionCheckIn)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)

	_, err = svc.CancelBooking(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestCancelBooking_FreesRoom(t *testing.T) {
	store := newHotel(t)
	svc := services.NewReservationService(store, nil, nil)
	b := book(t, svc, uuid.New(), "101")

	cancelled, err := svc.CancelBooking(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingCancelled, cancelled.Status)
	assert.Equal(t, domain.RoomAvailable, roomStatus(t, store, "101"))

	_, err = svc.CancelBooking(context.Background(), b.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	again := book(t, svc, uuid.New(), "101")
	assert.NotEqual(t, b.ID, again.ID)
}

func TestCancelBookingAsGuest(t *testing.T) {
	store := newHotel(t)
	svc := services.NewReservationService(store, nil, nil)
	owner, stranger := uuid.New(), uuid.New()
	b := book(t, svc, owner, "101")

	_, err := svc.CancelBookingAsGuest(context.Background(), stranger, b.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Equal(t, domain.RoomBooked, roomStatus(t, store, "101"))

	got, err := svc.CancelBookingAsGuest(context.Background(), owner, b.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingCancelled, got.Status)
}

func TestTransition_StoreFailure(t *testing.T) {
	store := mocks.NewStore(t)
	bookings := mocks.NewBookingRepository(t)
	rooms := mocks.NewRoomRepository(t)
	b := &domain.Booking{ID: uuid.New(), RoomID: uuid.New(), Status: domain.BookingBooked}

	store.On("WithinTx", mock.Anything, mock.Anything).Return(
		func(ctx context.Context, fn func(ports.Repositories) error) error { return fn(store) },
	)
	store.On("Bookings").Return(bookings)
	store.On("Rooms").Return(rooms)
	bookings.On("FindBookingByID", mock.Anything, b.ID).Return(b, nil)
	bookings.On("UpdateBookingStatus", mock.Anything, b.ID, domain.BookingCheckedIn).Return(nil)
	rooms.On("UpdateRoomStatus", mock.Anything, b.RoomID, domain.RoomOccupied).Return(errors.New("deadlock detected"))

	svc := services.NewReservationService(store, nil, nil)

	_, err := svc.CheckInOut(context.Background(), b.ID, domain.ActionCheckIn)
	assert.ErrorIs(t, err, domain.ErrStore)
}

func TestListBookings(t *testing.T) {
	store := newHotel(t)
	svc := services.NewReservationService(store, nil, nil)
	alice, bob := uuid.New(), uuid.New()
	book(t, svc, alice, "101")
	book(t, svc, bob, "102")

	mine, err := svc.ListBookings(context.Background(), &alice)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "101", mine[0].RoomNumber)

	all, err := svc.ListBookings(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestListRooms(t *testing.T) {
	store := newHotel(t)
	svc := services.NewReservationService(store, nil, nil)
	book(t, svc, uuid.New(), "101")

	all, err := svc.ListRooms(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 3)

	free, err := svc.ListAvailableRooms(context.Background())
	require.NoError(t, err)
	require.Len(t, free, 1)
	assert.Equal(t, "102", free[0].Number)
}

func TestAddRoom(t *testing.T) {
	tests := []struct {
		name       string
		req        services.AddRoomRequest
		wantErr    error
		wantStatus domain.RoomStatus
		wantType   string
	}{
		{name: "defaults", req: services.AddRoomRequest{Number: "301", Price: decimal.RequireFromString("120.456")}, wantStatus: domain.RoomAvailable, wantType: "Standard"},
		{name: "maintenance", req: services.AddRoomRequest{Number: "302", Type: "Suite", Price: decimal.NewFromInt(300), Status: "maintenance"}, wantStatus: domain.RoomMaintenance, wantType: "Suite"},
		{name: "duplicate number", req: services.AddRoomRequest{Number: "101", Price: decimal.NewFromInt(90)}, wantErr: domain.ErrRoomExists},
		{name: "missing number", req: services.AddRoomRequest{Price: decimal.NewFromInt(90)}, wantErr: domain.ErrInvalidRoom},
		{name: "zero price", req: services.AddRoomRequest{Number: "303"}, wantErr: domain.ErrInvalidRate},
		{name: "cannot start booked", req: services.AddRoomRequest{Number: "304", Price: decimal.NewFromInt(90), Status: "Booked"}, wantErr: domain.ErrInvalidRoomStatus},
		{name: "unknown status", req: services.AddRoomRequest{Number: "305", Price: decimal.NewFromInt(90), Status: "Haunted"}, wantErr: domain.ErrInvalidRoomStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := services.NewReservationService(newHotel(t), nil, nil)

			room, err := svc.AddRoom(context.Background(), tt.req)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, room)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, room.Status)
			assert.Equal(t, tt.wantType, room.Type)
			assert.True(t, room.Price.Equal(tt.req.Price.Round(2)))
		})
	}
}

func TestSetRoomStatus(t *testing.T) {
	store := newHotel(t)
	svc := services.NewReservationService(store, nil, nil)
	ctx := context.Background()

	room, err := svc.SetRoomStatus(ctx, "201", "Available")
	require.NoError(t, err)
	assert.Equal(t, domain.RoomAvailable, room.Status)
	assert.Equal(t, domain.RoomAvailable, roomStatus(t, store, "201"))

	book(t, svc, uuid.New(), "201")

	room, err = svc.SetRoomStatus(ctx, "102", "maintenance")
	require.NoError(t, err)
	assert.Equal(t, domain.RoomMaintenance, room.Status)

	room, err = svc.SetRoomStatus(ctx, "102", "Maintenance")
	require.NoError(t, err)
	assert.Equal(t, domain.RoomMaintenance, room.Status)

	_, err = svc.CreateBooking(ctx, services.CreateBookingRequest{
		GuestID: uuid.New(), RoomNumber: "102",
		CheckIn: day("2024-01-10"), CheckOut: day("2024-01-11"), PaymentMethod: "Cash",
	})
	assert.ErrorIs(t, err, domain.ErrRoomUnavailable)
}

func TestSetRoomStatus_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		number  string
		status  string
		wantErr error
	}{
		{name: "booked room", number: "101", status: "Maintenance", wantErr: domain.ErrRoomUnavailable},
		{name: "status owned by bookings", number: "102", status: "Occupied", wantErr: domain.ErrInvalidRoomStatus},
		{name: "unknown status", number: "102", status: "Dirty", wantErr: domain.ErrInvalidRoomStatus},
		{name: "unknown room", number: "999", status: "Available", wantErr: domain.ErrRoomNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newHotel(t)
			svc := services.NewReservationService(store, nil, nil)
			book(t, svc, uuid.New(), "101")

			room, err := svc.SetRoomStatus(context.Background(), tt.number, tt.status)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, room)
			assert.Equal(t, domain.RoomBooked, roomStatus(t, store, "101"))
			assert.Equal(t, domain.RoomAvailable, roomStatus(t, store, "102"))
		})
	}
}
