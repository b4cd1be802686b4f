package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	intconfig "hotelbooking/internal/config"
)

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func DBCheck(c *gin.Context) {
	if err := intconfig.EnsureDB(); err != nil {
		RespondError(c, http.StatusInternalServerError, "database unreachable", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "database connection OK"})
}

// About serves the static about-us content.
func About(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":        "Hotel Booking",
		"description": "Browse hotels by city, pick a room type, and book your stay.",
		"contact":     "/api/contact",
	})
}
