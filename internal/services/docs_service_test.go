package services

import (
	"bytes"
	"testing"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/domain/models"
)

func TestDocsServiceGenerateInvoice(t *testing.T) {
	loader := func(id int64) (models.Booking, error) {
		rtID, roomID := int64(7), int64(31)
		return models.Booking{
			ID:            id,
			UserID:        5,
			HotelID:       1,
			HotelName:     "Grand",
			RoomTypeID:    &rtID,
			RoomTypeName:  "Deluxe",
			RoomID:        &roomID,
			RoomNumber:    "101",
			CheckIn:       "2024-01-01",
			CheckOut:      "2024-01-04",
			Guests:        2,
			TotalPrice:    300,
			Status:        "pending",
			PaymentStatus: "unpaid",
		}, nil
	}

	svc := DocsService{Loader: loader}

	pdf, filename, err := svc.GenerateInvoice(5, 42)
	if err != nil {
		t.Fatalf("GenerateInvoice returned error: %v", err)
	}
	if len(pdf) == 0 || filename != "invoice-42.pdf" {
		t.Fatalf("unexpected invoice output: %d bytes, %q", len(pdf), filename)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatalf("output does not look like a PDF")
	}
}

func TestDocsServiceInvoiceHidesForeignBooking(t *testing.T) {
	loader := func(id int64) (models.Booking, error) {
		return models.Booking{ID: id, UserID: 8}, nil
	}

	svc := DocsService{Loader: loader}
	if _, _, err := svc.GenerateInvoice(5, 42); !domain.IsNotFound(err) {
		t.Fatalf("expected not found for foreign booking, got %v", err)
	}
}
