package models

// City groups hotels for catalog filtering.
type City struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
	Image   string `json:"image,omitempty"`
}

// Hotel is the catalog aggregate root.
type Hotel struct {
	ID          int64   `json:"id"`
	CityID      int64   `json:"city_id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Address     string  `json:"address"`
	Star        int     `json:"star"`
	Rating      float64 `json:"rating"`
	Phone       string  `json:"phone"`
	Email       string  `json:"email,omitempty"`
	LowestPrice float64 `json:"lowest_price"`
	Image       string  `json:"image,omitempty"`
	CreatedAt   string  `json:"created_at,omitempty"`
	UpdatedAt   string  `json:"updated_at,omitempty"`
}

// RoomType is a category of rooms within a hotel sharing price and capacity.
type RoomType struct {
	ID          int64   `json:"id"`
	HotelID     int64   `json:"hotel_id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	BasePrice   float64 `json:"base_price"`
	MaxGuests   int     `json:"max_guests"`
	Beds        int     `json:"beds"`
	Size        int     `json:"size"`
	Image       string  `json:"image,omitempty"`
}

// Room is a physical room; IsAvailable goes false while an active booking
// holds it.
type Room struct {
	ID          int64  `json:"id"`
	RoomTypeID  int64  `json:"room_type_id"`
	RoomNumber  string `json:"room_number"`
	Floor       int    `json:"floor"`
	IsAvailable bool   `json:"is_available"`
}
