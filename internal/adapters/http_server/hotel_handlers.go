package httpserver

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Navya-Das/HotelReservation/internal/adapters/observability"
	"github.com/Navya-Das/HotelReservation/internal/domain"
)

func (h *Handlers) listHotels(w http.ResponseWriter, r *http.Request) {
	hotels, err := h.Hotels.List(r.Context())
	if err != nil {
		h.renderError(w, http.StatusInternalServerError, "Could not load hotels.")
		return
	}
	data := map[string]any{"Title": "Hotels", "Hotels": hotels}
	if msg := h.popFlash(w, r); msg != "" {
		data["Flash"] = msg
	}
	h.render(w, http.StatusOK, "hotel-list", data)
}

func (h *Handlers) newHotelForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, "hotel-form", map[string]any{
		"Title":  "Add hotel",
		"Hotel":  domain.Hotel{},
		"Errors": map[string]string{},
	})
}

func (h *Handlers) createHotel(w http.ResponseWriter, r *http.Request) {
	hotel := decodeHotelForm(r)
	if errs := validateHotel(hotel); len(errs) > 0 {
		observability.ObserveFormRejection("hotel", "validation")
		h.render(w, http.StatusUnprocessableEntity, "hotel-form", map[string]any{
			"Title": "Add hotel", "Hotel": hotel, "Errors": errs,
		})
		return
	}

	if _, err := h.Hotels.Save(r.Context(), hotel); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			observability.ObserveFormRejection("hotel", "duplicate")
			h.render(w, http.StatusConflict, "hotel-form", map[string]any{
				"Title": "Add hotel", "Hotel": hotel,
				"Errors": map[string]string{}, "Error": "Enter unique data.",
			})
			return
		}
		h.renderError(w, http.StatusInternalServerError, "Could not save hotel.")
		return
	}
	h.redirectWithFlash(w, r, "/hotels", "Hotel added successfully")
}

func (h *Handlers) editHotelForm(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "hotelID")
	if !ok {
		h.renderError(w, http.StatusBadRequest, "Invalid hotel id")
		return
	}
	hotel, err := h.Hotels.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.renderError(w, http.StatusNotFound, fmt.Sprintf("Invalid hotel id: %d", id))
			return
		}
		h.renderError(w, http.StatusInternalServerError, "Could not load hotel.")
		return
	}
	h.render(w, http.StatusOK, "hotel-form", map[string]any{
		"Title": "Edit hotel", "Hotel": hotel, "Errors": map[string]string{},
	})
}

func (h *Handlers) updateHotel(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "hotelID")
	if !ok {
		h.renderError(w, http.StatusBadRequest, "Invalid hotel id")
		return
	}

	hotel := decodeHotelForm(r)
	// The path decides which row is written; any id in the form body is
	// ignored so a tampered form cannot retarget the update.
	hotel.ID = id

	if errs := validateHotel(hotel); len(errs) > 0 {
		observability.ObserveFormRejection("hotel", "validation")
		h.render(w, http.StatusUnprocessableEntity, "hotel-form", map[string]any{
			"Title": "Edit hotel", "Hotel": hotel, "Errors": errs,
		})
		return
	}

	if _, err := h.Hotels.Save(r.Context(), hotel); err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicate):
			observability.ObserveFormRejection("hotel", "duplicate")
			h.render(w, http.StatusConflict, "hotel-form", map[string]any{
				"Title": "Edit hotel", "Hotel": hotel,
				"Errors": map[string]string{}, "Error": "Enter unique data.",
			})
		case errors.Is(err, domain.ErrNotFound):
			h.renderError(w, http.StatusNotFound, fmt.Sprintf("Invalid hotel id: %d", id))
		default:
			h.renderError(w, http.StatusInternalServerError, "Could not save hotel.")
		}
		return
	}
	h.redirectWithFlash(w, r, "/hotels", "Hotel updated successfully")
}

func (h *Handlers) deleteHotel(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "hotelID")
	if !ok {
		h.renderError(w, http.StatusBadRequest, "Invalid hotel id")
		return
	}
	// No existence check: deleting a missing id is a no-op and still
	// reports success.
	if err := h.Hotels.Delete(r.Context(), id); err != nil {
		h.renderError(w, http.StatusInternalServerError, "Could not delete hotel.")
		return
	}
	h.redirectWithFlash(w, r, "/hotels", "Hotel deleted successfully")
}

func (h *Handlers) hotelDetails(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "hotelID")
	if !ok {
		h.renderError(w, http.StatusBadRequest, "Invalid hotel id")
		return
	}
	hotel, err := h.Hotels.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.renderError(w, http.StatusNotFound, fmt.Sprintf("Invalid hotel id: %d", id))
			return
		}
		h.renderError(w, http.StatusInternalServerError, "Could not load hotel.")
		return
	}
	h.render(w, http.StatusOK, "hotel-details", map[string]any{
		"Title": hotel.Name, "Hotel": hotel,
	})
}

func (h *Handlers) listHotelRooms(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "hotelID")
	if !ok {
		h.renderError(w, http.StatusBadRequest, "Invalid hotel id")
		return
	}
	hotel, err := h.Hotels.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.renderError(w, http.StatusNotFound, fmt.Sprintf("Invalid hotel id: %d", id))
			return
		}
		h.renderError(w, http.StatusInternalServerError, "Could not load hotel.")
		return
	}
	rooms, err := h.Rooms.ListByHotel(r.Context(), id)
	if err != nil {
		h.renderError(w, http.StatusInternalServerError, "Could not load rooms.")
		return
	}
	h.render(w, http.StatusOK, "room-list", map[string]any{
		"Title": "Rooms at " + hotel.Name, "Hotel": hotel, "Rooms": rooms,
	})
}

func (h *Handlers) hotelRoomDetails(w http.ResponseWriter, r *http.Request) {
	hotelID, ok := pathID(r, "hotelID")
	if !ok {
		h.renderError(w, http.StatusBadRequest, "Invalid hotel id")
		return
	}
	roomID, ok := pathID(r, "roomID")
	if !ok {
		h.renderError(w, http.StatusBadRequest, "Invalid room id")
		return
	}

	room, err := h.Rooms.Get(r.Context(), roomID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.renderError(w, http.StatusNotFound, fmt.Sprintf("Invalid room id: %d", roomID))
			return
		}
		h.renderError(w, http.StatusInternalServerError, "Could not load room.")
		return
	}
	if room.HotelID != hotelID {
		// Deliberately distinct from not-found.
		h.renderError(w, http.StatusNotFound, domain.ErrNotOwned.Error())
		return
	}

	hotel, err := h.Hotels.Get(r.Context(), hotelID)
	if err != nil {
		h.renderError(w, http.StatusInternalServerError, "Could not load hotel.")
		return
	}
	h.render(w, http.StatusOK, "room-details", map[string]any{
		"Title": "Room " + room.Number, "Room": room, "Hotel": hotel,
	})
}
