package services

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"

	intconfig "hotelbooking/internal/config"
	"hotelbooking/internal/domain"
	"hotelbooking/internal/domain/models"
	"hotelbooking/internal/repositories"
	"hotelbooking/internal/utils"
)

type PaymentService struct {
	BookingRepo repositories.BookingRepository
	DB          *sql.DB
	RequestID   string
}

func (s PaymentService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s PaymentService) bookings() repositories.BookingRepository {
	if s.BookingRepo.DB != nil {
		return s.BookingRepo
	}
	return repositories.BookingRepository{DB: s.db()}
}

// RecordPayment attaches a payment method to the caller's booking and flips
// payment_status to paid; booking status itself stays untouched. The insert
// and the status flip commit together.
func (s PaymentService) RecordPayment(userID, bookingID int64, method string) (models.Payment, error) {
	booking, err := s.bookings().GetByID(bookingID)
	if err != nil {
		return models.Payment{}, err
	}
	if booking.UserID != userID {
		return models.Payment{}, domain.NotFoundError{Resource: "booking"}
	}

	method = utils.TrimOrEmpty(method)
	if method == "" {
		return models.Payment{}, domain.ValidationError{Field: "method", Msg: "required"}
	}

	if booking.PaymentStatus == models.PaymentStatusPaid {
		return models.Payment{}, domain.ConflictError{Resource: "booking", Msg: "already paid"}
	}

	tx, err := s.db().Begin()
	if err != nil {
		return models.Payment{}, domain.InternalError{Err: err}
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.Exec(`
		INSERT INTO payments (booking_id, method, paid_at)
		VALUES (?, ?, NOW())
	`, bookingID, method)
	if err != nil {
		// Two racing payments both pass the status check; the loser hits the
		// payments.booking_id unique key and should surface as a conflict.
		var dup *mysql.MySQLError
		if errors.As(err, &dup) && dup.Number == 1062 {
			return models.Payment{}, domain.ConflictError{Resource: "booking", Msg: "already paid"}
		}
		return models.Payment{}, domain.InternalError{Err: err}
	}
	paymentID, err := res.LastInsertId()
	if err != nil {
		return models.Payment{}, domain.InternalError{Err: err}
	}

	if _, err := tx.Exec(`
		UPDATE bookings SET payment_status = 'paid', updated_at = NOW()
		WHERE id = ?
	`, bookingID); err != nil {
		return models.Payment{}, domain.InternalError{Err: err}
	}

	if err := tx.Commit(); err != nil {
		return models.Payment{}, domain.InternalError{Err: err}
	}

	utils.LogEvent(s.RequestID, "payment", "record",
		fmt.Sprintf("booking_id=%d method=%s", bookingID, method))

	return models.Payment{
		ID:        paymentID,
		BookingID: bookingID,
		Method:    method,
	}, nil
}
