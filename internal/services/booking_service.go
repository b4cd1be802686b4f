package services

import (
	"database/sql"
	"fmt"

	intconfig "hotelbooking/internal/config"
	"hotelbooking/internal/domain"
	"hotelbooking/internal/domain/models"
	"hotelbooking/internal/repositories"
	"hotelbooking/internal/utils"
)

type BookingService struct {
	HotelRepo   repositories.HotelRepository
	RoomRepo    repositories.RoomRepository
	BookingRepo repositories.BookingRepository
	DB          *sql.DB
	RequestID   string
}

func (s BookingService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s BookingService) hotels() repositories.HotelRepository {
	if s.HotelRepo.DB != nil {
		return s.HotelRepo
	}
	return repositories.HotelRepository{DB: s.db()}
}

func (s BookingService) rooms() repositories.RoomRepository {
	if s.RoomRepo.DB != nil {
		return s.RoomRepo
	}
	return repositories.RoomRepository{DB: s.db()}
}

func (s BookingService) bookings() repositories.BookingRepository {
	if s.BookingRepo.DB != nil {
		return s.BookingRepo
	}
	return repositories.BookingRepository{DB: s.db()}
}

// BookingInput is the validated form payload for booking creation.
type BookingInput struct {
	HotelID    int64
	RoomTypeID int64
	CheckIn    string
	CheckOut   string
	Guests     int
}

// CreateBooking reserves the lowest-numbered available room of the requested
// type and persists the booking in one transaction. Room assignment uses a
// conditional update so two requests racing for the last room cannot both
// win: the loser sees zero rows affected and moves to the next candidate.
func (s BookingService) CreateBooking(userID int64, in BookingInput) (models.Booking, error) {
	hotel, err := s.hotels().GetByID(in.HotelID)
	if err != nil {
		return models.Booking{}, err
	}

	roomType, err := s.rooms().GetRoomTypeByID(in.RoomTypeID)
	if err != nil {
		return models.Booking{}, err
	}
	if roomType.HotelID != hotel.ID {
		return models.Booking{}, domain.NotFoundError{Resource: "room type"}
	}

	checkIn, err := utils.ParseDate(in.CheckIn)
	if err != nil {
		return models.Booking{}, domain.ValidationError{Field: "check_in", Msg: "expected YYYY-MM-DD", Err: err}
	}
	checkOut, err := utils.ParseDate(in.CheckOut)
	if err != nil {
		return models.Booking{}, domain.ValidationError{Field: "check_out", Msg: "expected YYYY-MM-DD", Err: err}
	}

	nights := utils.Nights(checkIn, checkOut)
	if nights <= 0 {
		return models.Booking{}, domain.ValidationError{Field: "check_out", Msg: "must be after check-in"}
	}

	if in.Guests < 1 {
		return models.Booking{}, domain.ValidationError{Field: "guests", Msg: "at least one guest required"}
	}
	if in.Guests > roomType.MaxGuests {
		return models.Booking{}, domain.ValidationError{
			Field: "guests",
			Msg:   fmt.Sprintf("room type sleeps at most %d", roomType.MaxGuests),
		}
	}

	totalPrice := roomType.BasePrice * float64(nights)

	tx, err := s.db().Begin()
	if err != nil {
		return models.Booking{}, domain.InternalError{Err: err}
	}
	defer func() { _ = tx.Rollback() }()

	room, err := claimRoom(tx, roomType.ID)
	if err != nil {
		return models.Booking{}, err
	}

	res, err := tx.Exec(`
		INSERT INTO bookings
			(user_id, hotel_id, room_type_id, room_id, check_in, check_out,
			 guests, total_price, status, payment_status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, 'pending', 'unpaid', NOW(), NOW())
	`, userID, hotel.ID, roomType.ID, room.ID,
		utils.FormatDate(checkIn), utils.FormatDate(checkOut),
		in.Guests, totalPrice)
	if err != nil {
		return models.Booking{}, domain.InternalError{Err: err}
	}
	bookingID, err := res.LastInsertId()
	if err != nil {
		return models.Booking{}, domain.InternalError{Err: err}
	}

	if err := tx.Commit(); err != nil {
		return models.Booking{}, domain.InternalError{Err: err}
	}

	utils.LogEvent(s.RequestID, "booking", "create",
		fmt.Sprintf("booking_id=%d hotel_id=%d room_id=%d nights=%d", bookingID, hotel.ID, room.ID, nights))

	rtID := roomType.ID
	roomID := room.ID
	return models.Booking{
		ID:            bookingID,
		UserID:        userID,
		HotelID:       hotel.ID,
		HotelName:     hotel.Name,
		RoomTypeID:    &rtID,
		RoomTypeName:  roomType.Name,
		RoomID:        &roomID,
		RoomNumber:    room.RoomNumber,
		CheckIn:       utils.FormatDate(checkIn),
		CheckOut:      utils.FormatDate(checkOut),
		Guests:        in.Guests,
		TotalPrice:    totalPrice,
		Status:        models.BookingStatusPending,
		PaymentStatus: models.PaymentStatusUnpaid,
	}, nil
}

// claimRoom marks the first free room of the type unavailable, lowest room
// number first. The WHERE is_available=1 guard on the update is the actual
// reservation; the preceding select only orders the candidates.
func claimRoom(tx *sql.Tx, roomTypeID int64) (models.Room, error) {
	rows, err := tx.Query(`
		SELECT id, room_number, floor
		FROM rooms
		WHERE room_type_id = ? AND is_available = 1
		ORDER BY room_number, id
	`, roomTypeID)
	if err != nil {
		return models.Room{}, domain.InternalError{Err: err}
	}

	candidates := []models.Room{}
	for rows.Next() {
		var r models.Room
		if err := rows.Scan(&r.ID, &r.RoomNumber, &r.Floor); err != nil {
			rows.Close()
			return models.Room{}, domain.InternalError{Err: err}
		}
		candidates = append(candidates, r)
	}
	if err := rows.Close(); err != nil {
		return models.Room{}, domain.InternalError{Err: err}
	}

	for _, cand := range candidates {
		res, err := tx.Exec(`UPDATE rooms SET is_available = 0 WHERE id = ? AND is_available = 1`, cand.ID)
		if err != nil {
			return models.Room{}, domain.InternalError{Err: err}
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return models.Room{}, domain.InternalError{Err: err}
		}
		if affected == 1 {
			cand.IsAvailable = false
			return cand, nil
		}
	}
	return models.Room{}, domain.ConflictError{Resource: "room", Msg: "no rooms available for this type"}
}

// MyBookings returns the user's bookings newest-first.
func (s BookingService) MyBookings(userID int64) ([]models.Booking, error) {
	return s.bookings().ListByUser(userID)
}

// GetOwnedBooking loads a booking and refuses to reveal one owned by
// somebody else.
func (s BookingService) GetOwnedBooking(userID, bookingID int64) (models.Booking, error) {
	booking, err := s.bookings().GetByID(bookingID)
	if err != nil {
		return models.Booking{}, err
	}
	if booking.UserID != userID {
		return models.Booking{}, domain.NotFoundError{Resource: "booking"}
	}
	return booking, nil
}

// PaymentFor returns the payment recorded for a paid booking, nil when the
// booking is still unpaid.
func (s BookingService) PaymentFor(booking models.Booking) (*models.Payment, error) {
	if booking.PaymentStatus != models.PaymentStatusPaid {
		return nil, nil
	}
	payment, err := s.bookings().GetPaymentByBookingID(booking.ID)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &payment, nil
}
