package mysql_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	driver "github.com/go-sql-driver/mysql"

	"github.com/Navya-Das/HotelReservation/internal/domain"
	mysqlrepo "github.com/Navya-Das/HotelReservation/internal/storage/mysql"
)

func TestHotelRepo_SaveInsertReturnsID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()
	repo := mysqlrepo.NewHotelRepo(db)

	mock.ExpectExec("INSERT INTO hotel").
		WithArgs("Lakeview", "1 Lake Rd", "Geneva", "555-0101").
		WillReturnResult(sqlmock.NewResult(7, 1))

	id, err := repo.Save(context.Background(), domain.Hotel{
		Name: "Lakeview", Address: "1 Lake Rd", City: "Geneva", Phone: "555-0101",
	})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if id != 7 {
		t.Fatalf("expected id 7, got %d", id)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestHotelRepo_SaveDuplicateNameMapsToErrDuplicate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()
	repo := mysqlrepo.NewHotelRepo(db)

	mock.ExpectExec("INSERT INTO hotel").
		WillReturnError(&driver.MySQLError{Number: 1062, Message: "Duplicate entry 'Lakeview' for key 'hotel.name'"})

	_, err = repo.Save(context.Background(), domain.Hotel{Name: "Lakeview"})
	if !errors.Is(err, domain.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
}

func TestHotelRepo_SaveUpdateMissingIDMapsToErrNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()
	repo := mysqlrepo.NewHotelRepo(db)

	mock.ExpectExec("UPDATE hotel").
		WithArgs("Lakeview", "1 Lake Rd", "", "", int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT 1 FROM hotel").
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"1"}))

	_, err = repo.Save(context.Background(), domain.Hotel{ID: 42, Name: "Lakeview", Address: "1 Lake Rd"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestHotelRepo_SaveUpdateUnchangedRowIsNotAnError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()
	repo := mysqlrepo.NewHotelRepo(db)

	// MySQL reports zero affected rows when the update changes nothing;
	// the row still exists, so Save must succeed.
	mock.ExpectExec("UPDATE hotel").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT 1 FROM hotel").
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))

	id, err := repo.Save(context.Background(), domain.Hotel{ID: 42, Name: "Lakeview"})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if id != 42 {
		t.Fatalf("expected id 42, got %d", id)
	}
}

func TestHotelRepo_GetMissingMapsToErrNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()
	repo := mysqlrepo.NewHotelRepo(db)

	mock.ExpectQuery("SELECT id, name, address, city, phone").
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "address", "city", "phone"}))

	_, err = repo.Get(context.Background(), 5)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestHotelRepo_DeleteMissingIsNoop(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()
	repo := mysqlrepo.NewHotelRepo(db)

	mock.ExpectExec("DELETE FROM hotel").
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Delete(context.Background(), 99); err != nil {
		t.Fatalf("delete of missing id should be a no-op, got %v", err)
	}
}

func TestRoomRepo_SaveUnknownHotelMapsToErrNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()
	repo := mysqlrepo.NewRoomRepo(db)

	mock.ExpectExec("INSERT INTO room").
		WillReturnError(&driver.MySQLError{Number: 1452, Message: "Cannot add or update a child row: a foreign key constraint fails"})

	_, err = repo.Save(context.Background(), domain.Room{HotelID: 404, Number: "101"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRoomRepo_ListByHotelScansRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()
	repo := mysqlrepo.NewRoomRepo(db)

	rows := sqlmock.NewRows([]string{"id", "hotel_id", "number", "type", "price"}).
		AddRow(1, 3, "101", "single", 80.0).
		AddRow(2, 3, "102", "double", 120.5)
	mock.ExpectQuery("SELECT id, hotel_id, number, type, price").
		WithArgs(int64(3)).
		WillReturnRows(rows)

	out, err := repo.ListByHotel(context.Background(), 3)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 rooms, got %d", len(out))
	}
	if out[1].Number != "102" || out[1].Price != 120.5 {
		t.Fatalf("unexpected room: %+v", out[1])
	}
}
