package httpserver

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/Navya-Das/HotelReservation/internal/adapters/flash"
	"github.com/Navya-Das/HotelReservation/internal/adapters/view"
	"github.com/Navya-Das/HotelReservation/internal/app"
	"github.com/Navya-Das/HotelReservation/internal/domain"
)

type Handlers struct {
	Hotels   *app.HotelService
	Rooms    *app.RoomService
	Views    *view.Renderer
	Flash    domain.FlashStore
	FlashTTL time.Duration
}

func (h *Handlers) render(w http.ResponseWriter, status int, name string, data map[string]any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := h.Views.Render(w, name, data); err != nil {
		log.Error().Err(err).Str("view", name).Msg("render failed")
	}
}

// renderError is the shared boundary for not-found and ownership faults:
// the generic error view, no tailored page.
func (h *Handlers) renderError(w http.ResponseWriter, status int, msg string) {
	h.render(w, status, "error", map[string]any{
		"Title":   "Error",
		"Message": msg,
	})
}

func (h *Handlers) redirectWithFlash(w http.ResponseWriter, r *http.Request, url, msg string) {
	token := flash.NewToken()
	if err := h.Flash.Put(r.Context(), token, msg); err != nil {
		// The redirect still happens; the banner is best-effort.
		log.Warn().Err(err).Msg("flash put failed")
	} else {
		flash.SetCookie(w, token, h.FlashTTL)
	}
	http.Redirect(w, r, url, http.StatusSeeOther)
}

// popFlash consumes the pending flash message, if any. The cookie is cleared
// either way; the stored value is gone after the first read.
func (h *Handlers) popFlash(w http.ResponseWriter, r *http.Request) string {
	c, err := r.Cookie(flash.CookieName)
	if err != nil || c.Value == "" {
		return ""
	}
	flash.ClearCookie(w)
	msg, ok, err := h.Flash.Pop(r.Context(), c.Value)
	if err != nil {
		log.Warn().Err(err).Msg("flash pop failed")
		return ""
	}
	if !ok {
		return ""
	}
	return msg
}

func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	return id, err == nil && id > 0
}
