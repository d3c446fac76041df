package app

import (
	"context"

	"github.com/Navya-Das/HotelReservation/internal/domain"
)

// HotelService wraps the hotel repository. Lookups report absence with
// domain.ErrNotFound; callers decide how absence surfaces at the boundary.
type HotelService struct {
	repo domain.HotelRepository
}

func NewHotelService(r domain.HotelRepository) *HotelService {
	return &HotelService{repo: r}
}

func (s *HotelService) List(ctx context.Context) ([]domain.Hotel, error) {
	return s.repo.List(ctx)
}

func (s *HotelService) Get(ctx context.Context, id int64) (domain.Hotel, error) {
	return s.repo.Get(ctx, id)
}

// Save inserts when h.ID is zero and updates otherwise, returning the row id.
// Unique-constraint faults come back as domain.ErrDuplicate, unchanged.
func (s *HotelService) Save(ctx context.Context, h domain.Hotel) (int64, error) {
	return s.repo.Save(ctx, h)
}

// Delete removes the hotel and, through the store's cascade, its rooms.
// Deleting an id that does not exist is a no-op.
func (s *HotelService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
