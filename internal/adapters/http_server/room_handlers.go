package httpserver

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Navya-Das/HotelReservation/internal/adapters/observability"
	"github.com/Navya-Das/HotelReservation/internal/domain"
)

func (h *Handlers) listRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.Rooms.List(r.Context())
	if err != nil {
		h.renderError(w, http.StatusInternalServerError, "Could not load rooms.")
		return
	}
	data := map[string]any{"Title": "Rooms", "Rooms": rooms}
	if msg := h.popFlash(w, r); msg != "" {
		data["Flash"] = msg
	}
	h.render(w, http.StatusOK, "room-list", data)
}

func (h *Handlers) roomDetails(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "roomID")
	if !ok {
		h.renderError(w, http.StatusBadRequest, "Invalid room id")
		return
	}
	room, err := h.Rooms.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.renderError(w, http.StatusNotFound, fmt.Sprintf("Invalid room id: %d", id))
			return
		}
		h.renderError(w, http.StatusInternalServerError, "Could not load room.")
		return
	}
	data := map[string]any{"Title": "Room " + room.Number, "Room": room}
	if hotel, err := h.Hotels.Get(r.Context(), room.HotelID); err == nil {
		data["Hotel"] = hotel
	}
	h.render(w, http.StatusOK, "room-details", data)
}

func (h *Handlers) newRoomForm(w http.ResponseWriter, r *http.Request) {
	hotels, err := h.Hotels.List(r.Context())
	if err != nil {
		h.renderError(w, http.StatusInternalServerError, "Could not load hotels.")
		return
	}
	h.render(w, http.StatusOK, "room-form", map[string]any{
		"Title": "Add room", "Room": domain.Room{}, "Hotels": hotels,
		"Errors": map[string]string{},
	})
}

func (h *Handlers) createRoom(w http.ResponseWriter, r *http.Request) {
	room, errs := decodeRoomForm(r)

	reRender := func(status int, errs map[string]string, msg string) {
		hotels, err := h.Hotels.List(r.Context())
		if err != nil {
			h.renderError(w, http.StatusInternalServerError, "Could not load hotels.")
			return
		}
		data := map[string]any{
			"Title": "Add room", "Room": room, "Hotels": hotels, "Errors": errs,
		}
		if msg != "" {
			data["Error"] = msg
		}
		h.render(w, status, "room-form", data)
	}

	if len(errs) > 0 {
		observability.ObserveFormRejection("room", "validation")
		reRender(http.StatusUnprocessableEntity, errs, "")
		return
	}

	if _, err := h.Rooms.Save(r.Context(), room); err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicate):
			observability.ObserveFormRejection("room", "duplicate")
			reRender(http.StatusConflict, map[string]string{}, "Please enter unique details.")
		case errors.Is(err, domain.ErrNotFound):
			// The chosen hotel disappeared between form load and submit.
			observability.ObserveFormRejection("room", "validation")
			reRender(http.StatusUnprocessableEntity, map[string]string{"hotel_id": "Choose an existing hotel"}, "")
		default:
			h.renderError(w, http.StatusInternalServerError, "Could not save room.")
		}
		return
	}
	h.redirectWithFlash(w, r, "/rooms", "Room added successfully")
}
