package httpserver

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/Navya-Das/HotelReservation/internal/domain"
)

// Explicit form decoding at the boundary: each form has a decode step that
// reads the posted fields and a validate step returning per-field messages.

func decodeHotelForm(r *http.Request) domain.Hotel {
	return domain.Hotel{
		Name:    strings.TrimSpace(r.PostFormValue("name")),
		Address: strings.TrimSpace(r.PostFormValue("address")),
		City:    strings.TrimSpace(r.PostFormValue("city")),
		Phone:   strings.TrimSpace(r.PostFormValue("phone")),
	}
}

func validateHotel(h domain.Hotel) map[string]string {
	errs := map[string]string{}
	if h.Name == "" {
		errs["name"] = "Name is required"
	}
	if h.Address == "" {
		errs["address"] = "Address is required"
	}
	return errs
}

// decodeRoomForm decodes and validates in one pass; hotel_id and price need
// parsing, so their parse failures land in the same error map.
func decodeRoomForm(r *http.Request) (domain.Room, map[string]string) {
	errs := map[string]string{}
	rm := domain.Room{
		Number: strings.TrimSpace(r.PostFormValue("number")),
		Type:   strings.TrimSpace(r.PostFormValue("type")),
	}

	if raw := strings.TrimSpace(r.PostFormValue("hotel_id")); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			errs["hotel_id"] = "Choose a hotel"
		} else {
			rm.HotelID = id
		}
	} else {
		errs["hotel_id"] = "Choose a hotel"
	}

	if rm.Number == "" {
		errs["number"] = "Room number is required"
	}
	if rm.Type == "" {
		errs["type"] = "Room type is required"
	}

	if raw := strings.TrimSpace(r.PostFormValue("price")); raw != "" {
		p, err := strconv.ParseFloat(raw, 64)
		switch {
		case err != nil:
			errs["price"] = "Price must be a number"
		case p < 0:
			errs["price"] = "Price must not be negative"
		default:
			rm.Price = p
		}
	} else {
		errs["price"] = "Price is required"
	}

	return rm, errs
}
