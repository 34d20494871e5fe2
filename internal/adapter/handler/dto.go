package handler

import (
	"time"

	"github.com/google/uuid"
	"github.com/srgjo27/hotel_booking/internal/core/domain"
)

type bookingResponse struct {
	ID         uuid.UUID            `json:"id"`
	GuestID    uuid.UUID            `json:"guest_id"`
	RoomNumber string               `json:"room_number"`
	CheckIn    string               `json:"check_in"`
	CheckOut   string               `json:"check_out"`
	TotalPrice string               `json:"total_price"`
	Status     domain.BookingStatus `json:"status"`
	CreatedAt  time.Time            `json:"created_at"`
}

func toBookingResponse(b *domain.Booking) bookingResponse {
	return bookingResponse{
		ID:         b.ID,
		GuestID:    b.GuestID,
		RoomNumber: b.RoomNumber,
		CheckIn:    b.CheckIn.Format(domain.DateLayout),
		CheckOut:   b.CheckOut.Format(domain.DateLayout),
		TotalPrice: b.TotalPrice.StringFixed(2),
		Status:     b.Status,
		CreatedAt:  b.CreatedAt,
	}
}

type roomResponse struct {
	ID     uuid.UUID         `json:"id"`
	Number string            `json:"number"`
	Type   string            `json:"type"`
	Price  string            `json:"price"`
	Status domain.RoomStatus `json:"status"`
}

func toRoomResponse(r *domain.Room) roomResponse {
	return roomResponse{ID: r.ID, Number: r.Number, Type: r.Type, Price: r.Price.StringFixed(2), Status: r.Status}
}

type userResponse struct {
	ID       uuid.UUID   `json:"id"`
	Username string      `json:"username"`
	Role     domain.Role `json:"role"`
	FullName string      `json:"full_name"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{ID: u.ID, Username: u.Username, Role: u.Role, FullName: u.FullName}
}

type revenueResponse struct {
	Month string `json:"month"`
	Total string `json:"total"`
}
