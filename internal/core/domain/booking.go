package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingBooked     BookingStatus = "Booked"
	BookingCheckedIn  BookingStatus = "Checked In"
	BookingCheckedOut BookingStatus = "Checked Out"
	BookingCancelled  BookingStatus = "Cancelled"
)

func ParseBookingStatus(s string) (BookingStatus, error) {
	switch BookingStatus(strings.TrimSpace(s)) {
	case BookingBooked:
		return BookingBooked, nil
	case BookingCheckedIn:
		return BookingCheckedIn, nil
	case BookingCheckedOut:
		return BookingCheckedOut, nil
	case BookingCancelled:
		return BookingCancelled, nil
	}
	return "", fmt.Errorf("unknown booking status %q", s)
}

// IsTerminal reports whether no further transition is permitted.
func (s BookingStatus) IsTerminal() bool {
	return s == BookingCheckedOut || s == BookingCancelled
}

type Booking struct {
	ID         uuid.UUID
	GuestID    uuid.UUID
	RoomID     uuid.UUID
	RoomNumber string
	CheckIn    time.Time
	CheckOut   time.Time
	TotalPrice decimal.Decimal
	Status     BookingStatus
	CreatedAt  time.Time
}
