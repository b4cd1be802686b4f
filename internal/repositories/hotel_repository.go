package repositories

import (
	"database/sql"
	"errors"

	intconfig "hotelbooking/internal/config"
	"hotelbooking/internal/domain"
	"hotelbooking/internal/domain/models"
)

type HotelRepository struct {
	DB *sql.DB
}

func (r HotelRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// ListHotels returns an ID-ordered page of hotels matching the optional
// name substring and city filter (AND semantics). cityID <= 0 means no
// city filter.
func (r HotelRepository) ListHotels(search string, cityID int64, page, pageSize int) ([]models.Hotel, int, error) {
	db := r.db()

	where := "WHERE 1=1"
	args := []any{}
	if search != "" {
		where += " AND LOWER(name) LIKE LOWER(?)"
		args = append(args, "%"+search+"%")
	}
	if cityID > 0 {
		where += " AND city_id = ?"
		args = append(args, cityID)
	}

	var total int
	if err := db.QueryRow("SELECT COUNT(*) FROM hotels "+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	if page < 1 {
		page = 1
	}
	offset := (page - 1) * pageSize
	listArgs := append(args, pageSize, offset)

	rows, err := db.Query(`
		SELECT id, city_id, name, COALESCE(description,''), address,
		       star, rating, phone, COALESCE(email,''),
		       lowest_price, COALESCE(image,''),
		       DATE_FORMAT(created_at, '%Y-%m-%d %H:%i:%s'),
		       DATE_FORMAT(updated_at, '%Y-%m-%d %H:%i:%s')
		FROM hotels `+where+`
		ORDER BY id
		LIMIT ? OFFSET ?
	`, listArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	hotels := []models.Hotel{}
	for rows.Next() {
		var h models.Hotel
		if err := rows.Scan(
			&h.ID, &h.CityID, &h.Name, &h.Description, &h.Address,
			&h.Star, &h.Rating, &h.Phone, &h.Email,
			&h.LowestPrice, &h.Image,
			&h.CreatedAt, &h.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		hotels = append(hotels, h)
	}
	return hotels, total, rows.Err()
}

func (r HotelRepository) GetByID(id int64) (models.Hotel, error) {
	var h models.Hotel
	err := r.db().QueryRow(`
		SELECT id, city_id, name, COALESCE(description,''), address,
		       star, rating, phone, COALESCE(email,''),
		       lowest_price, COALESCE(image,''),
		       DATE_FORMAT(created_at, '%Y-%m-%d %H:%i:%s'),
		       DATE_FORMAT(updated_at, '%Y-%m-%d %H:%i:%s')
		FROM hotels
		WHERE id = ? LIMIT 1
	`, id).Scan(
		&h.ID, &h.CityID, &h.Name, &h.Description, &h.Address,
		&h.Star, &h.Rating, &h.Phone, &h.Email,
		&h.LowestPrice, &h.Image,
		&h.CreatedAt, &h.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Hotel{}, domain.NotFoundError{Resource: "hotel"}
		}
		return models.Hotel{}, err
	}
	return h, nil
}

func (r HotelRepository) ListCities() ([]models.City, error) {
	rows, err := r.db().Query(`
		SELECT id, name, country, COALESCE(image,'')
		FROM cities
		ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cities := []models.City{}
	for rows.Next() {
		var c models.City
		if err := rows.Scan(&c.ID, &c.Name, &c.Country, &c.Image); err != nil {
			return nil, err
		}
		cities = append(cities, c)
	}
	return cities, rows.Err()
}
