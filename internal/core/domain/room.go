package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RoomStatus string

const (
	RoomAvailable   RoomStatus = "Available"
	RoomBooked      RoomStatus = "Booked"
	RoomOccupied    RoomStatus = "Occupied"
	RoomMaintenance RoomStatus = "Maintenance"
)

// RoomStatuses lists every room status in report order.
var RoomStatuses = []RoomStatus{RoomAvailable, RoomBooked, RoomOccupied, RoomMaintenance}

func ParseRoomStatus(s string) (RoomStatus, error) {
	for _, st := range RoomStatuses {
		if strings.EqualFold(strings.TrimSpace(s), string(st)) {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidRoomStatus, s)
}

type Room struct {
	ID     uuid.UUID
	Number string
	Type   string
	Price  decimal.Decimal
	Status RoomStatus
}

func (r *Room) IsAvailable() bool {
	return r.Status == RoomAvailable
}
