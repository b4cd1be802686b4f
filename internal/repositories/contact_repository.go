package repositories

import (
	"database/sql"

	intconfig "hotelbooking/internal/config"
)

type ContactRepository struct {
	DB *sql.DB
}

func (r ContactRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r ContactRepository) Create(name, email, message string) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO contacts (name, email, message, created_at)
		VALUES (?, ?, ?, NOW())
	`, name, email, message)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}
