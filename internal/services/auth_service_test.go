package services

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"golang.org/x/crypto/bcrypt"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/repositories"
)

func newAuthService(t *testing.T) (AuthService, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	svc := AuthService{
		UserRepo: repositories.UserRepository{DB: db},
		Secret:   []byte("test-secret"),
		TokenTTL: time.Hour,
	}
	return svc, mock, func() { db.Close() }
}

func countRow(n int) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"count"}).AddRow(n)
}

func TestRegisterAndTokenRoundTrip(t *testing.T) {
	svc, mock, closeDB := newAuthService(t)
	defer closeDB()

	mock.ExpectQuery("FROM users WHERE email").WithArgs("a@b.com").WillReturnRows(countRow(0))
	mock.ExpectQuery("FROM users WHERE username").WithArgs("alice").WillReturnRows(countRow(0))
	mock.ExpectExec("INSERT INTO users").WillReturnResult(sqlmock.NewResult(3, 1))

	user, token, err := svc.Register(RegisterInput{
		Username:        "alice",
		Email:           "a@b.com",
		Password:        "secret123",
		ConfirmPassword: "secret123",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.ID != 3 || token == "" {
		t.Fatalf("expected auto-login token for new user, got id=%d token=%q", user.ID, token)
	}

	claims, err := svc.ParseToken(token)
	if err != nil {
		t.Fatalf("issued token did not parse: %v", err)
	}
	if id, _ := claims["user_id"].(float64); int64(id) != 3 {
		t.Fatalf("token user_id = %v, want 3", claims["user_id"])
	}
	if jti, _ := claims["jti"].(string); jti == "" {
		t.Fatalf("token missing jti")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRegisterDuplicateEmailReportedFirst(t *testing.T) {
	svc, mock, closeDB := newAuthService(t)
	defer closeDB()

	// duplicate email short-circuits before the username check runs
	mock.ExpectQuery("FROM users WHERE email").WithArgs("a@b.com").WillReturnRows(countRow(1))

	_, _, err := svc.Register(RegisterInput{
		Username:        "alice",
		Email:           "a@b.com",
		Password:        "secret123",
		ConfirmPassword: "secret123",
	})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc, mock, closeDB := newAuthService(t)
	defer closeDB()

	mock.ExpectQuery("FROM users WHERE email").WithArgs("a@b.com").WillReturnRows(countRow(0))
	mock.ExpectQuery("FROM users WHERE username").WithArgs("alice").WillReturnRows(countRow(1))

	_, _, err := svc.Register(RegisterInput{
		Username:        "alice",
		Email:           "a@b.com",
		Password:        "secret123",
		ConfirmPassword: "secret123",
	})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestRegisterPasswordMismatchCreatesNoAccount(t *testing.T) {
	svc, mock, closeDB := newAuthService(t)
	defer closeDB()

	mock.ExpectQuery("FROM users WHERE email").WithArgs("a@b.com").WillReturnRows(countRow(0))
	mock.ExpectQuery("FROM users WHERE username").WithArgs("alice").WillReturnRows(countRow(0))

	_, _, err := svc.Register(RegisterInput{
		Username:        "alice",
		Email:           "a@b.com",
		Password:        "secret123",
		ConfirmPassword: "different",
	})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}

	// uniqueness checks ran, but nothing was inserted
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc, mock, closeDB := newAuthService(t)
	defer closeDB()

	hash, err := bcrypt.GenerateFromPassword([]byte("right"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt error: %v", err)
	}

	// unknown user
	mock.ExpectQuery("FROM users").WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "password_hash"}))
	_, _, errUnknown := svc.Login("ghost", "whatever")

	// wrong password
	mock.ExpectQuery("FROM users").WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "password_hash"}).
			AddRow(3, "alice", "a@b.com", string(hash)))
	_, _, errWrongPass := svc.Login("alice", "wrong")

	if !domain.IsUnauthorized(errUnknown) || !domain.IsUnauthorized(errWrongPass) {
		t.Fatalf("expected unauthorized for both, got %v / %v", errUnknown, errWrongPass)
	}
	if errUnknown.Error() != errWrongPass.Error() {
		t.Fatalf("failure messages differ, enabling user enumeration: %q vs %q",
			errUnknown.Error(), errWrongPass.Error())
	}
}

func TestLoginSuccess(t *testing.T) {
	svc, mock, closeDB := newAuthService(t)
	defer closeDB()

	hash, err := bcrypt.GenerateFromPassword([]byte("right"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt error: %v", err)
	}

	mock.ExpectQuery("FROM users").WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "password_hash"}).
			AddRow(3, "alice", "a@b.com", string(hash)))

	user, token, err := svc.Login("alice", "right")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if user.Username != "alice" || token == "" {
		t.Fatalf("unexpected login result: %+v / %q", user, token)
	}
}

func TestLogoutWithoutTokenIsIdempotent(t *testing.T) {
	svc, _, closeDB := newAuthService(t)
	defer closeDB()

	if err := svc.Logout(context.Background(), ""); err != nil {
		t.Fatalf("Logout without token should be a no-op, got %v", err)
	}
	if err := svc.Logout(context.Background(), "not-a-token"); err != nil {
		t.Fatalf("Logout with garbage token should be a no-op, got %v", err)
	}
}
