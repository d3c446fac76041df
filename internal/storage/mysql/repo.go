package mysql

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"

	"github.com/Navya-Das/HotelReservation/internal/domain"
)

// MySQL error numbers the repositories translate into domain sentinels.
const (
	erDupEntry     = 1062 // ER_DUP_ENTRY
	erNoReferenced = 1452 // ER_NO_REFERENCED_ROW_2
)

// mapErr converts driver faults to domain sentinels. A foreign-key failure on
// room.hotel_id means the referenced hotel does not exist, so it reads as
// ErrNotFound for the parent.
func mapErr(err error) error {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		switch me.Number {
		case erDupEntry:
			return domain.ErrDuplicate
		case erNoReferenced:
			return domain.ErrNotFound
		}
	}
	return err
}

type HotelRepo struct{ db *sql.DB }

func NewHotelRepo(db *sql.DB) *HotelRepo { return &HotelRepo{db: db} }

func (r *HotelRepo) Save(ctx context.Context, h domain.Hotel) (int64, error) {
	if h.ID == 0 {
		res, err := r.db.ExecContext(ctx, insertHotelSQL, h.Name, h.Address, h.City, h.Phone)
		if err != nil {
			return 0, mapErr(err)
		}
		return res.LastInsertId()
	}

	res, err := r.db.ExecContext(ctx, updateHotelSQL, h.Name, h.Address, h.City, h.Phone, h.ID)
	if err != nil {
		return 0, mapErr(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	if n == 0 {
		// Zero affected rows is either a missing id or an update that changed
		// nothing; only the former is an error.
		var one int
		if err := r.db.QueryRowContext(ctx, hotelExistsSQL, h.ID).Scan(&one); err != nil {
			if err == sql.ErrNoRows {
				return 0, domain.ErrNotFound
			}
			return 0, err
		}
	}
	return h.ID, nil
}

func (r *HotelRepo) Delete(ctx context.Context, id int64) error {
	// Rooms go with the hotel via ON DELETE CASCADE. Missing ids delete
	// zero rows, which is fine.
	_, err := r.db.ExecContext(ctx, deleteHotelSQL, id)
	return err
}

func (r *HotelRepo) List(ctx context.Context) ([]domain.Hotel, error) {
	rows, err := r.db.QueryContext(ctx, listHotelsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Hotel
	for rows.Next() {
		var h domain.Hotel
		if err := rows.Scan(&h.ID, &h.Name, &h.Address, &h.City, &h.Phone); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

func (r *HotelRepo) Get(ctx context.Context, id int64) (domain.Hotel, error) {
	var h domain.Hotel
	err := r.db.QueryRowContext(ctx, getHotelSQL, id).
		Scan(&h.ID, &h.Name, &h.Address, &h.City, &h.Phone)
	if err == sql.ErrNoRows {
		return domain.Hotel{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Hotel{}, err
	}
	return h, nil
}

type RoomRepo struct{ db *sql.DB }

func NewRoomRepo(db *sql.DB) *RoomRepo { return &RoomRepo{db: db} }

func (r *RoomRepo) Save(ctx context.Context, rm domain.Room) (int64, error) {
	if rm.ID == 0 {
		res, err := r.db.ExecContext(ctx, insertRoomSQL, rm.HotelID, rm.Number, rm.Type, rm.Price)
		if err != nil {
			return 0, mapErr(err)
		}
		return res.LastInsertId()
	}

	res, err := r.db.ExecContext(ctx, updateRoomSQL, rm.HotelID, rm.Number, rm.Type, rm.Price, rm.ID)
	if err != nil {
		return 0, mapErr(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	if n == 0 {
		var one int
		if err := r.db.QueryRowContext(ctx, roomExistsSQL, rm.ID).Scan(&one); err != nil {
			if err == sql.ErrNoRows {
				return 0, domain.ErrNotFound
			}
			return 0, err
		}
	}
	return rm.ID, nil
}

func (r *RoomRepo) List(ctx context.Context) ([]domain.Room, error) {
	return r.queryRooms(ctx, listRoomsSQL)
}

func (r *RoomRepo) ListByHotel(ctx context.Context, hotelID int64) ([]domain.Room, error) {
	return r.queryRooms(ctx, listRoomsByHotelSQL, hotelID)
}

func (r *RoomRepo) Get(ctx context.Context, id int64) (domain.Room, error) {
	var rm domain.Room
	err := r.db.QueryRowContext(ctx, getRoomSQL, id).
		Scan(&rm.ID, &rm.HotelID, &rm.Number, &rm.Type, &rm.Price)
	if err == sql.ErrNoRows {
		return domain.Room{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Room{}, err
	}
	return rm, nil
}

func (r *RoomRepo) queryRooms(ctx context.Context, q string, args ...any) ([]domain.Room, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Room
	for rows.Next() {
		var rm domain.Room
		if err := rows.Scan(&rm.ID, &rm.HotelID, &rm.Number, &rm.Type, &rm.Price); err != nil {
			return nil, err
		}
		out = append(out, rm)
	}
	return out, rows.Err()
}
