package repositories

import (
	"database/sql"
	"errors"

	intconfig "hotelbooking/internal/config"
	"hotelbooking/internal/domain"
	"hotelbooking/internal/domain/models"
)

type RoomRepository struct {
	DB *sql.DB
}

func (r RoomRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r RoomRepository) ListRoomTypes(hotelID int64) ([]models.RoomType, error) {
	rows, err := r.db().Query(`
		SELECT id, hotel_id, name, COALESCE(description,''),
		       base_price, max_guests, beds, size, COALESCE(image,'')
		FROM room_types
		WHERE hotel_id = ?
		ORDER BY base_price
	`, hotelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	types := []models.RoomType{}
	for rows.Next() {
		var rt models.RoomType
		if err := rows.Scan(
			&rt.ID, &rt.HotelID, &rt.Name, &rt.Description,
			&rt.BasePrice, &rt.MaxGuests, &rt.Beds, &rt.Size, &rt.Image,
		); err != nil {
			return nil, err
		}
		types = append(types, rt)
	}
	return types, rows.Err()
}

func (r RoomRepository) GetRoomTypeByID(id int64) (models.RoomType, error) {
	var rt models.RoomType
	err := r.db().QueryRow(`
		SELECT id, hotel_id, name, COALESCE(description,''),
		       base_price, max_guests, beds, size, COALESCE(image,'')
		FROM room_types
		WHERE id = ? LIMIT 1
	`, id).Scan(
		&rt.ID, &rt.HotelID, &rt.Name, &rt.Description,
		&rt.BasePrice, &rt.MaxGuests, &rt.Beds, &rt.Size, &rt.Image,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.RoomType{}, domain.NotFoundError{Resource: "room type"}
		}
		return models.RoomType{}, err
	}
	return rt, nil
}

// ReleaseRooms flips rooms back to available once no live booking holds them
// anymore. A room with any historical booking row must stay claimed while a
// newer booking covers it, so the check is "no non-cancelled booking with a
// check-out after today", not "some booking already checked out".
// Returns the number of rooms released.
func (r RoomRepository) ReleaseRooms(today string) (int64, error) {
	res, err := r.db().Exec(`
		UPDATE rooms r
		SET r.is_available = 1
		WHERE r.is_available = 0
		  AND NOT EXISTS (
			SELECT 1 FROM bookings b
			WHERE b.room_id = r.id
			  AND b.status <> 'cancelled'
			  AND b.check_out > ?
		  )
	`, today)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
