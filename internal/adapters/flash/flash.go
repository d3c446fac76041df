// Package flash stores one-time messages in Redis for the redirect-then-read
// pattern: a mutation writes the message under a random token, sets the token
// as a short-lived cookie, and the next page load consumes message and cookie.
package flash

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/Navya-Das/HotelReservation/internal/adapters/observability"
)

const CookieName = "flash"

type Store struct {
	c   *redis.Client
	ttl time.Duration
}

func New(addr, pass string, db int, ttl time.Duration) *Store {
	return &Store{
		c:   redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db}),
		ttl: ttl,
	}
}

func (s *Store) Put(ctx context.Context, token, msg string) error {
	observability.ObserveFlash("put")
	return s.c.Set(ctx, "flash:"+token, msg, s.ttl).Err()
}

// Pop reads and deletes in one round trip; a token can be redeemed once.
func (s *Store) Pop(ctx context.Context, token string) (string, bool, error) {
	v, err := s.c.GetDel(ctx, "flash:"+token).Result()
	if err == redis.Nil {
		observability.ObserveFlash("miss")
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	observability.ObserveFlash("pop")
	return v, true, nil
}

// NewToken returns an opaque token suitable for the flash cookie.
func NewToken() string { return uuid.NewString() }

// SetCookie attaches msg's token to the response being redirected.
func SetCookie(w http.ResponseWriter, token string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearCookie removes the flash cookie once the message is consumed.
func ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
