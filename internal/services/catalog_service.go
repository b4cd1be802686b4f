package services

import (
	"strconv"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/domain/models"
	"hotelbooking/internal/repositories"
	"hotelbooking/internal/utils"
)

type CatalogService struct {
	HotelRepo repositories.HotelRepository
	RoomRepo  repositories.RoomRepository
	PageSize  int
}

func (s CatalogService) pageSize() int {
	if s.PageSize > 0 {
		return s.PageSize
	}
	return 5
}

// HotelPage is the catalog list payload.
type HotelPage struct {
	Hotels     []models.Hotel    `json:"hotels"`
	Pagination domain.Pagination `json:"pagination"`
}

// ListHotels applies the optional free-text name filter and city filter.
// A non-numeric city value degrades to "no filter", matching the catalog's
// forgiving query contract.
func (s CatalogService) ListHotels(search, city string, page int) (HotelPage, error) {
	var cityID int64
	if c := utils.TrimOrEmpty(city); c != "" {
		if parsed, err := strconv.ParseInt(c, 10, 64); err == nil && parsed > 0 {
			cityID = parsed
		}
	}

	if page < 1 {
		page = 1
	}

	hotels, total, err := s.HotelRepo.ListHotels(utils.TrimOrEmpty(search), cityID, page, s.pageSize())
	if err != nil {
		return HotelPage{}, domain.InternalError{Err: err}
	}

	return HotelPage{
		Hotels: hotels,
		Pagination: domain.Pagination{
			Page:     page,
			PageSize: s.pageSize(),
			Total:    total,
		},
	}, nil
}

// HotelDetail is the hotel page payload: the hotel plus its room types.
type HotelDetail struct {
	Hotel     models.Hotel      `json:"hotel"`
	RoomTypes []models.RoomType `json:"room_types"`
}

func (s CatalogService) GetHotelDetail(id int64) (HotelDetail, error) {
	hotel, err := s.HotelRepo.GetByID(id)
	if err != nil {
		return HotelDetail{}, err
	}
	types, err := s.RoomRepo.ListRoomTypes(hotel.ID)
	if err != nil {
		return HotelDetail{}, domain.InternalError{Err: err}
	}
	return HotelDetail{Hotel: hotel, RoomTypes: types}, nil
}

func (s CatalogService) ListCities() ([]models.City, error) {
	cities, err := s.HotelRepo.ListCities()
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return cities, nil
}
