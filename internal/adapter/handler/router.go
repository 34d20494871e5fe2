package handler

import (
	"net/http"

	"github.com/srgjo27/hotel_booking/internal/core/domain"
	"github.com/srgjo27/hotel_booking/internal/core/services"
	"github.com/srgjo27/hotel_booking/internal/platform/auth"
)

type Deps struct {
	Reservations *services.ReservationService
	Reports      *services.ReportService
	Accounts     *services.AccountService
	Tokens       *auth.TokenIssuer
}

// NewRouter registers every route. Role gates follow the hotel's desks:
// guests book and cancel their own stays, staff run check-in and check-out,
// admins manage rooms, users and reports.
func NewRouter(d Deps) http.Handler {
	bookings := NewBookingHandler(d.Reservations)
	rooms := NewRoomHandler(d.Reservations)
	reports := NewReportHandler(d.Reports)
	accounts := NewAccountHandler(d.Accounts)

	authn := RequireAuth(d.Tokens)
	gate := func(h http.HandlerFunc, roles ...domain.Role) http.Handler {
		return authn(RequireRole(roles...)(h))
	}

	anyone := []domain.Role{domain.RoleAdmin, domain.RoleStaff, domain.RoleGuest}
	desk := []domain.Role{domain.RoleAdmin, domain.RoleStaff}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	mux.HandleFunc("POST /v1/auth/login", accounts.Login)

	mux.Handle("GET /v1/rooms", gate(rooms.ListRooms, anyone...))
	mux.Handle("GET /v1/rooms/available", gate(rooms.ListAvailableRooms, anyone...))
	mux.Handle("POST /v1/rooms", gate(rooms.AddRoom, domain.RoleAdmin))
	mux.Handle("POST /v1/rooms/{number}/status", gate(rooms.SetStatus, domain.RoleAdmin))

	mux.Handle("POST /v1/bookings", gate(bookings.CreateBooking, domain.RoleGuest))
	mux.Handle("GET /v1/bookings", gate(bookings.ListBookings, anyone...))
	mux.Handle("POST /v1/bookings/{id}/check-in", gate(bookings.CheckIn, desk...))
	mux.Handle("POST /v1/bookings/{id}/check-out", gate(bookings.CheckOut, desk...))
	mux.Handle("POST /v1/bookings/{id}/cancel", gate(bookings.Cancel, anyone...))
	mux.Handle("POST /v1/bookings/{id}/status", gate(bookings.UpdateStatus, anyone...))

	mux.Handle("GET /v1/reports/occupancy", gate(reports.Occupancy, domain.RoleAdmin))
	mux.Handle("GET /v1/reports/revenue", gate(reports.Revenue, domain.RoleAdmin))

	mux.Handle("GET /v1/users", gate(accounts.ListUsers, domain.RoleAdmin))
	mux.Handle("POST /v1/users", gate(accounts.CreateUser, domain.RoleAdmin))

	return logRequests(mux)
}
