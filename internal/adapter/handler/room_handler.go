package handler

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"
	"github.com/srgjo27/hotel_booking/internal/core/domain"
	"github.com/srgjo27/hotel_booking/internal/core/services"
)

type RoomHandler struct {
	svc *services.ReservationService
}

func NewRoomHandler(svc *services.ReservationService) *RoomHandler {
	return &RoomHandler{svc: svc}
}

type addRoomRequest struct {
	Number string          `json:"number"`
	Type   string          `json:"type"`
	Price  decimal.Decimal `json:"price"`
	Status string          `json:"status"`
}

func (h *RoomHandler) ListRooms(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.svc.ListRooms)
}

func (h *RoomHandler) ListAvailableRooms(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.svc.ListAvailableRooms)
}

func (h *RoomHandler) list(w http.ResponseWriter, r *http.Request, fetch func(context.Context) ([]domain.Room, error)) {
	rooms, err := fetch(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	out := make([]roomResponse, 0, len(rooms))
	for i := range rooms {
		out = append(out, toRoomResponse(&rooms[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *RoomHandler) AddRoom(w http.ResponseWriter, r *http.Request) {
	var req addRoomRequest
	if err := decodeJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid json body")
		return
	}

	room, err := h.svc.AddRoom(r.Context(), services.AddRoomRequest{
		Number: req.Number,
		Type:   req.Type,
		Price:  req.Price,
		Status: req.Status,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toRoomResponse(room))
}

type roomStatusRequest struct {
	Status string `json:"status"`
}

// SetStatus moves a room between Available and Maintenance.
func (h *RoomHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	var req roomStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid json body")
		return
	}

	room, err := h.svc.SetRoomStatus(r.Context(), r.PathValue("number"), req.Status)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toRoomResponse(room))
}
