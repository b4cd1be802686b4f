package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/repositories"
)

func newPaymentService(t *testing.T) (PaymentService, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	svc := PaymentService{
		BookingRepo: repositories.BookingRepository{DB: db},
		DB:          db,
	}
	return svc, mock, func() { db.Close() }
}

func bookingRow(id, userID int64, paymentStatus string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "user_id", "hotel_id", "hotel_name",
		"room_type_id", "room_type_name", "room_id", "room_number",
		"check_in", "check_out", "guests", "total_price",
		"status", "payment_status", "created_at",
	}).AddRow(id, userID, 1, "Grand", 7, "Deluxe", 31, "101",
		"2024-01-01", "2024-01-04", 2, 300.0,
		"pending", paymentStatus, "2024-01-01 09:00:00")
}

func TestRecordPaymentFlipsPaymentStatusOnly(t *testing.T) {
	svc, mock, closeDB := newPaymentService(t)
	defer closeDB()

	mock.ExpectQuery("FROM bookings").WithArgs(int64(42)).
		WillReturnRows(bookingRow(42, 5, "unpaid"))

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO payments").WithArgs(int64(42), "card").
		WillReturnResult(sqlmock.NewResult(9, 1))
	mock.ExpectExec("UPDATE bookings SET payment_status").WithArgs(int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	payment, err := svc.RecordPayment(5, 42, "card")
	if err != nil {
		t.Fatalf("RecordPayment returned error: %v", err)
	}
	if payment.BookingID != 42 || payment.Method != "card" {
		t.Fatalf("unexpected payment: %+v", payment)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRecordPaymentMissingMethodCreatesNothing(t *testing.T) {
	svc, mock, closeDB := newPaymentService(t)
	defer closeDB()

	mock.ExpectQuery("FROM bookings").WithArgs(int64(42)).
		WillReturnRows(bookingRow(42, 5, "unpaid"))

	_, err := svc.RecordPayment(5, 42, "  ")
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}

	// no insert, no status flip
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRecordPaymentRejectsForeignBooking(t *testing.T) {
	svc, mock, closeDB := newPaymentService(t)
	defer closeDB()

	mock.ExpectQuery("FROM bookings").WithArgs(int64(42)).
		WillReturnRows(bookingRow(42, 8, "unpaid"))

	_, err := svc.RecordPayment(5, 42, "card")
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestRecordPaymentAlreadyPaidIsConflict(t *testing.T) {
	svc, mock, closeDB := newPaymentService(t)
	defer closeDB()

	mock.ExpectQuery("FROM bookings").WithArgs(int64(42)).
		WillReturnRows(bookingRow(42, 5, "paid"))

	_, err := svc.RecordPayment(5, 42, "card")
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

// A second payment racing past the status check loses on the
// payments.booking_id unique key; that must read as a conflict, not a
// server error.
func TestRecordPaymentDuplicateKeyIsConflict(t *testing.T) {
	svc, mock, closeDB := newPaymentService(t)
	defer closeDB()

	mock.ExpectQuery("FROM bookings").WithArgs(int64(42)).
		WillReturnRows(bookingRow(42, 5, "unpaid"))

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO payments").WithArgs(int64(42), "card").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry '42' for key 'payments.booking_id'"})
	mock.ExpectRollback()

	_, err := svc.RecordPayment(5, 42, "card")
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
