package repositories

import (
	"database/sql"
	"errors"

	intconfig "hotelbooking/internal/config"
	"hotelbooking/internal/domain"
	"hotelbooking/internal/domain/models"
)

type BookingRepository struct {
	DB *sql.DB
}

func (r BookingRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const bookingSelect = `
	SELECT b.id, b.user_id, b.hotel_id, h.name,
	       b.room_type_id, COALESCE(rt.name, ''),
	       b.room_id, COALESCE(rm.room_number, ''),
	       DATE_FORMAT(b.check_in, '%Y-%m-%d'),
	       DATE_FORMAT(b.check_out, '%Y-%m-%d'),
	       b.guests, b.total_price, b.status, b.payment_status,
	       DATE_FORMAT(b.created_at, '%Y-%m-%d %H:%i:%s')
	FROM bookings b
	JOIN hotels h ON h.id = b.hotel_id
	LEFT JOIN room_types rt ON rt.id = b.room_type_id
	LEFT JOIN rooms rm ON rm.id = b.room_id
`

func scanBooking(row interface{ Scan(...any) error }) (models.Booking, error) {
	var b models.Booking
	err := row.Scan(
		&b.ID, &b.UserID, &b.HotelID, &b.HotelName,
		&b.RoomTypeID, &b.RoomTypeName,
		&b.RoomID, &b.RoomNumber,
		&b.CheckIn, &b.CheckOut,
		&b.Guests, &b.TotalPrice, &b.Status, &b.PaymentStatus,
		&b.CreatedAt,
	)
	return b, err
}

// ListByUser returns the user's bookings newest-first.
func (r BookingRepository) ListByUser(userID int64) ([]models.Booking, error) {
	rows, err := r.db().Query(bookingSelect+`
	WHERE b.user_id = ?
	ORDER BY b.created_at DESC, b.id DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := []models.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func (r BookingRepository) GetByID(id int64) (models.Booking, error) {
	b, err := scanBooking(r.db().QueryRow(bookingSelect+`
	WHERE b.id = ? LIMIT 1
	`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Booking{}, domain.NotFoundError{Resource: "booking"}
		}
		return models.Booking{}, err
	}
	return b, nil
}

// GetPaymentByBookingID returns the one-to-one payment record, if recorded.
func (r BookingRepository) GetPaymentByBookingID(bookingID int64) (models.Payment, error) {
	var p models.Payment
	err := r.db().QueryRow(`
		SELECT id, booking_id, method, DATE_FORMAT(paid_at, '%Y-%m-%d %H:%i:%s')
		FROM payments
		WHERE booking_id = ? LIMIT 1
	`, bookingID).Scan(&p.ID, &p.BookingID, &p.Method, &p.PaidAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Payment{}, domain.NotFoundError{Resource: "payment"}
		}
		return models.Payment{}, err
	}
	return p, nil
}
