package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotelbooking/internal/services"
)

type HotelHandler struct {
	Catalog services.CatalogService
}

// GET /api/hotels?search=&city=&page=
func (h HotelHandler) List(c *gin.Context) {
	page, err := h.Catalog.ListHotels(c.Query("search"), c.Query("city"), QueryPage(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// GET /api/hotels/:id
func (h HotelHandler) Detail(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}
	detail, err := h.Catalog.GetHotelDetail(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// GET /api/cities
func (h HotelHandler) Cities(c *gin.Context) {
	cities, err := h.Catalog.ListCities()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cities": cities})
}
