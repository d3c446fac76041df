package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

type Server struct{ mux *chi.Mux }

func New() *Server {
	m := chi.NewRouter()

	// Middlewares before any routes are added.
	m.Use(chimw.RealIP)
	m.Use(chimw.RequestID)
	m.Use(chimw.Recoverer)
	m.Use(Timeout(15 * time.Second))
	m.Use(Metrics)
	m.Use(Logger(log.Logger))

	return &Server{mux: m}
}

func (s *Server) Mux() http.Handler { return s.mux }

// Mount attaches any extra handler (e.g., /metrics) to the router.
func (s *Server) Mount(path string, h http.Handler) {
	s.mux.Handle(path, h)
}

// MountHandlers wires the full route table. Form POSTs additionally pass
// through the per-client submit limiter.
func (s *Server) MountHandlers(h *Handlers, limit func(http.Handler) http.Handler) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })

	s.mux.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/hotels", http.StatusSeeOther)
	})

	s.mux.Route("/hotels", func(r chi.Router) {
		r.Get("/", h.listHotels)
		r.Get("/new", h.newHotelForm)
		r.With(limit).Post("/", h.createHotel)
		r.Get("/edit/{hotelID}", h.editHotelForm)
		r.With(limit).Post("/edit/{hotelID}", h.updateHotel)
		r.Get("/delete/{hotelID}", h.deleteHotel)
		r.Get("/{hotelID}", h.hotelDetails)
		r.Get("/{hotelID}/rooms", h.listHotelRooms)
		r.Get("/{hotelID}/rooms/{roomID}", h.hotelRoomDetails)
	})

	s.mux.Route("/rooms", func(r chi.Router) {
		r.Get("/", h.listRooms)
		r.Get("/new", h.newRoomForm)
		r.With(limit).Post("/", h.createRoom)
		r.Get("/{roomID}", h.roomDetails)
	})
}
