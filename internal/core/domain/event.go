package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type EventType string

const (
	EventBookingCreated       EventType = "booking.created"
	EventBookingStatusChanged EventType = "booking.status_changed"
)

// BookingEvent carries enough of a booking for downstream consumers to log
// or notify without reading the store.
type BookingEvent struct {
	Type          EventType       `json:"type"`
	BookingID     uuid.UUID       `json:"booking_id"`
	GuestID       uuid.UUID       `json:"guest_id"`
	RoomNumber    string          `json:"room_number"`
	Status        BookingStatus   `json:"status"`
	RoomStatus    RoomStatus      `json:"room_status"`
	CheckIn       string          `json:"check_in"`
	CheckOut      string          `json:"check_out"`
	TotalPrice    decimal.Decimal `json:"total_price"`
	PaymentMethod PaymentMethod   `json:"payment_method,omitempty"`
	OccurredAt    time.Time       `json:"occurred_at"`
}

func NewBookingEvent(typ EventType, b *Booking, roomStatus RoomStatus, at time.Time) BookingEvent {
	return BookingEvent{
		Type:       typ,
		BookingID:  b.ID,
		GuestID:    b.GuestID,
		RoomNumber: b.RoomNumber,
		Status:     b.Status,
		RoomStatus: roomStatus,
		CheckIn:    b.CheckIn.Format(DateLayout),
		CheckOut:   b.CheckOut.Format(DateLayout),
		TotalPrice: b.TotalPrice,
		OccurredAt: at.UTC(),
	}
}
