package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/repositories"
)

func TestContactSubmitStoresCompleteMessage(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO contacts").WithArgs("Bob", "b@c.com", "hello").
		WillReturnResult(sqlmock.NewResult(4, 1))

	svc := ContactService{ContactRepo: repositories.ContactRepository{DB: db}}
	contact, err := svc.Submit(" Bob ", "b@c.com", "hello")
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if contact.ID != 4 || contact.Name != "Bob" {
		t.Fatalf("unexpected contact: %+v", contact)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestContactSubmitPartialInputCreatesNoRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	svc := ContactService{ContactRepo: repositories.ContactRepository{DB: db}}

	cases := []struct {
		name, email, message string
	}{
		{"", "b@c.com", "hello"},
		{"Bob", "", "hello"},
		{"Bob", "b@c.com", ""},
		{"Bob", "b@c.com", "   "},
	}
	for _, tc := range cases {
		if _, err := svc.Submit(tc.name, tc.email, tc.message); !domain.IsValidation(err) {
			t.Fatalf("expected validation error for %+v, got %v", tc, err)
		}
	}

	// nothing must have reached the database
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
