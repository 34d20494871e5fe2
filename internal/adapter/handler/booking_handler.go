package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/srgjo27/hotel_booking/internal/core/domain"
	"github.com/srgjo27/hotel_booking/internal/core/services"
)

type BookingHandler struct {
	svc *services.ReservationService
}

func NewBookingHandler(svc *services.ReservationService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

type createBookingRequest struct {
	RoomNumber    string `json:"room_number"`
	CheckIn       string `json:"check_in"`
	CheckOut      string `json:"check_out"`
	PaymentMethod string `json:"payment_method"`
}

// CreateBooking books a room for the calling guest.
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	claims, _ := callerFrom(r.Context())

	var req createBookingRequest
	if err := decodeJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid json body")
		return
	}

	checkIn, err := domain.ParseDate(req.CheckIn)
	if err != nil {
		writeError(w, r, err)
		return
	}
	checkOut, err := domain.ParseDate(req.CheckOut)
	if err != nil {
		writeError(w, r, err)
		return
	}

	booking, err := h.svc.CreateBooking(r.Context(), services.CreateBookingRequest{
		GuestID:       claims.UserID,
		RoomNumber:    req.RoomNumber,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toBookingResponse(booking))
}

// ListBookings shows guests their own bookings and staff every booking.
func (h *BookingHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	claims, _ := callerFrom(r.Context())

	var guestID *uuid.UUID
	if domain.Role(claims.Role) == domain.RoleGuest {
		guestID = &claims.UserID
	}

	bookings, err := h.svc.ListBookings(r.Context(), guestID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	out := make([]bookingResponse, 0, len(bookings))
	for i := range bookings {
		out = append(out, toBookingResponse(&bookings[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *BookingHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, domain.ActionCheckIn)
}

func (h *BookingHandler) CheckOut(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, domain.ActionCheckOut)
}

// Cancel lets guests cancel only their own bookings.
func (h *BookingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, domain.ActionCancel)
}

type statusRequest struct {
	Action string `json:"action"`
}

// UpdateStatus applies an action named by its desk label, e.g. "Check In".
// Guests may only cancel.
func (h *BookingHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid json body")
		return
	}

	action, err := domain.ParseAction(req.Action)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	claims, _ := callerFrom(r.Context())
	if action != domain.ActionCancel && domain.Role(claims.Role) == domain.RoleGuest {
		writeError(w, r, domain.ErrForbidden)
		return
	}

	h.apply(w, r, action)
}

func (h *BookingHandler) apply(w http.ResponseWriter, r *http.Request, action domain.Action) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, r, domain.ErrBookingNotFound)
		return
	}

	claims, _ := callerFrom(r.Context())

	var booking *domain.Booking
	switch {
	case action == domain.ActionCancel && domain.Role(claims.Role) == domain.RoleGuest:
		booking, err = h.svc.CancelBookingAsGuest(r.Context(), claims.UserID, id)
	case action == domain.ActionCancel:
		booking, err = h.svc.CancelBooking(r.Context(), id)
	default:
		booking, err = h.svc.CheckInOut(r.Context(), id, action)
	}
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toBookingResponse(booking))
}
