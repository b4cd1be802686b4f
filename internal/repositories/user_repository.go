package repositories

import (
	"database/sql"
	"errors"

	intconfig "hotelbooking/internal/config"
	"hotelbooking/internal/domain"
	"hotelbooking/internal/domain/models"
)

type UserRepository struct {
	DB *sql.DB
}

func (r UserRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r UserRepository) EmailExists(email string) (bool, error) {
	var n int
	if err := r.db().QueryRow(`SELECT COUNT(*) FROM users WHERE email = ?`, email).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r UserRepository) UsernameExists(username string) (bool, error) {
	var n int
	if err := r.db().QueryRow(`SELECT COUNT(*) FROM users WHERE username = ?`, username).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r UserRepository) Create(username, email, passwordHash string) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO users (username, email, password_hash, created_at)
		VALUES (?, ?, ?, NOW())
	`, username, email, passwordHash)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// GetCredentials loads the login view of a user row by username.
func (r UserRepository) GetCredentials(username string) (models.Credentials, error) {
	var c models.Credentials
	err := r.db().QueryRow(`
		SELECT id, username, email, password_hash
		FROM users
		WHERE username = ? LIMIT 1
	`, username).Scan(&c.ID, &c.Username, &c.Email, &c.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Credentials{}, domain.NotFoundError{Resource: "user"}
		}
		return models.Credentials{}, err
	}
	return c, nil
}
