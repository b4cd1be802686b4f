package services

import (
	"bytes"
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/domain/models"
	"hotelbooking/internal/repositories"
	"hotelbooking/internal/utils"
)

// DocsService renders the booking invoice PDF.
type DocsService struct {
	BookingRepo repositories.BookingRepository
	RequestID   string
	Loader      func(int64) (models.Booking, error)
}

func (s DocsService) loadBooking(id int64) (models.Booking, error) {
	if s.Loader != nil {
		return s.Loader(id)
	}
	return s.BookingRepo.GetByID(id)
}

// GenerateInvoice builds the invoice for the caller's booking.
func (s DocsService) GenerateInvoice(userID, bookingID int64) ([]byte, string, error) {
	booking, err := s.loadBooking(bookingID)
	if err != nil {
		return nil, "", err
	}
	if booking.UserID != userID {
		return nil, "", domain.NotFoundError{Resource: "booking"}
	}

	utils.LogEvent(s.RequestID, "docs", "generate_invoice", fmt.Sprintf("booking_id=%d", bookingID))
	return buildInvoicePDF(booking)
}

func buildInvoicePDF(b models.Booking) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Invoice", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BOOKING INVOICE")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Invoice No     : INV-%d", b.ID),
		fmt.Sprintf("Hotel          : %s", safe(b.HotelName, "-")),
		fmt.Sprintf("Room Type      : %s", safe(b.RoomTypeName, "-")),
		fmt.Sprintf("Room           : %s", safe(b.RoomNumber, "-")),
		fmt.Sprintf("Check-in       : %s", safe(b.CheckIn, "-")),
		fmt.Sprintf("Check-out      : %s", safe(b.CheckOut, "-")),
		fmt.Sprintf("Guests         : %d", b.Guests),
		fmt.Sprintf("Status         : %s / %s", safe(b.Status, "-"), safe(b.PaymentStatus, "-")),
		fmt.Sprintf("Total          : %.2f", b.TotalPrice),
		fmt.Sprintf("Issued         : %s", utils.FormatDateTime(time.Now())),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "This invoice covers one booking. Keep it for your records; present it at check-in if asked.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", domain.InternalError{Err: err}
	}
	filename := fmt.Sprintf("invoice-%d.pdf", b.ID)
	return buf.Bytes(), filename, nil
}

func safe(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
