package domain

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned by lookups when no row matches.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned when a write violates a unique constraint.
	ErrDuplicate = errors.New("duplicate value")
	// ErrNotOwned is returned when a room is addressed through a hotel
	// it does not belong to.
	ErrNotOwned = errors.New("room does not belong to hotel")
)

type HotelRepository interface {
	// Write paths
	Save(ctx context.Context, h Hotel) (int64, error) // insert when h.ID==0, else update
	Delete(ctx context.Context, id int64) error       // no-op on missing id

	// Read paths
	List(ctx context.Context) ([]Hotel, error)
	Get(ctx context.Context, id int64) (Hotel, error)
}

type RoomRepository interface {
	Save(ctx context.Context, r Room) (int64, error)

	List(ctx context.Context) ([]Room, error)
	Get(ctx context.Context, id int64) (Room, error)
	ListByHotel(ctx context.Context, hotelID int64) ([]Room, error)
}

// FlashStore holds one-time messages across a redirect. Pop reads and
// discards in one step; a message is observable exactly once.
type FlashStore interface {
	Put(ctx context.Context, token, msg string) error
	Pop(ctx context.Context, token string) (string, bool, error)
}
