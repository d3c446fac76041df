package app

import (
	"context"

	"github.com/Navya-Das/HotelReservation/internal/domain"
)

// RoomService wraps the room repository with the same contract as
// HotelService: ErrNotFound on absent lookups, ErrDuplicate on unique
// violations, save-or-update keyed on the id.
type RoomService struct {
	repo domain.RoomRepository
}

func NewRoomService(r domain.RoomRepository) *RoomService {
	return &RoomService{repo: r}
}

func (s *RoomService) List(ctx context.Context) ([]domain.Room, error) {
	return s.repo.List(ctx)
}

func (s *RoomService) Get(ctx context.Context, id int64) (domain.Room, error) {
	return s.repo.Get(ctx, id)
}

func (s *RoomService) Save(ctx context.Context, r domain.Room) (int64, error) {
	return s.repo.Save(ctx, r)
}

func (s *RoomService) ListByHotel(ctx context.Context, hotelID int64) ([]domain.Room, error) {
	return s.repo.ListByHotel(ctx, hotelID)
}
