package repositories

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestReleaseRoomsReportsCount(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	repo := RoomRepository{DB: db}

	mock.ExpectExec("UPDATE rooms r").WithArgs("2024-02-01").
		WillReturnResult(sqlmock.NewResult(0, 3))

	released, err := repo.ReleaseRooms("2024-02-01")
	if err != nil {
		t.Fatalf("ReleaseRooms error: %v", err)
	}
	if released != 3 {
		t.Fatalf("released = %d, want 3", released)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

// A room rebooked after an earlier stay keeps its old booking rows forever.
// The release update must only fire when no non-cancelled booking still
// covers the room, otherwise a second guest's room would be freed mid-stay
// just because the first guest's row has checked out.
func TestReleaseRoomsIgnoresRoomsWithLiveBookings(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	repo := RoomRepository{DB: db}

	mock.ExpectExec(`NOT EXISTS \(\s*SELECT 1 FROM bookings b\s*WHERE b\.room_id = r\.id\s*AND b\.status <> 'cancelled'\s*AND b\.check_out > \?`).
		WithArgs("2024-01-12").
		WillReturnResult(sqlmock.NewResult(0, 0))

	released, err := repo.ReleaseRooms("2024-01-12")
	if err != nil {
		t.Fatalf("ReleaseRooms error: %v", err)
	}
	if released != 0 {
		t.Fatalf("released = %d, want 0", released)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestListRoomTypesOrderedByPrice(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	repo := RoomRepository{DB: db}

	mock.ExpectQuery("FROM room_types").WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "hotel_id", "name", "description",
			"base_price", "max_guests", "beds", "size", "image",
		}).
			AddRow(7, 1, "Standard", "", 80.0, 2, 1, 200, "").
			AddRow(8, 1, "Deluxe", "", 100.0, 2, 1, 300, ""))

	types, err := repo.ListRoomTypes(1)
	if err != nil {
		t.Fatalf("ListRoomTypes error: %v", err)
	}
	if len(types) != 2 || types[0].Name != "Standard" {
		t.Fatalf("unexpected room types: %+v", types)
	}
}
