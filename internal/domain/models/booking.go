package models

// Booking status values.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"

	PaymentStatusUnpaid = "unpaid"
	PaymentStatusPaid   = "paid"
)

// Booking references its room type and room by nullable ids so catalog
// deletions null them out instead of cascading.
type Booking struct {
	ID            int64   `json:"id"`
	UserID        int64   `json:"user_id"`
	HotelID       int64   `json:"hotel_id"`
	HotelName     string  `json:"hotel_name,omitempty"`
	RoomTypeID    *int64  `json:"room_type_id,omitempty"`
	RoomTypeName  string  `json:"room_type_name,omitempty"`
	RoomID        *int64  `json:"room_id,omitempty"`
	RoomNumber    string  `json:"room_number,omitempty"`
	CheckIn       string  `json:"check_in"`
	CheckOut      string  `json:"check_out"`
	Guests        int     `json:"guests"`
	TotalPrice    float64 `json:"total_price"`
	Status        string  `json:"status"`
	PaymentStatus string  `json:"payment_status"`
	CreatedAt     string  `json:"created_at,omitempty"`
}

// Payment is one-to-one with Booking.
type Payment struct {
	ID        int64  `json:"id"`
	BookingID int64  `json:"booking_id"`
	Method    string `json:"method"`
	PaidAt    string `json:"paid_at"`
}
