package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotelbooking/internal/http/middleware"
	"hotelbooking/internal/services"
)

type ContactHandler struct {
	Contact services.ContactService
}

type contactRequest struct {
	Name    string `form:"name" json:"name"`
	Email   string `form:"email" json:"email"`
	Message string `form:"message" json:"message"`
}

// POST /api/contact
func (h ContactHandler) Submit(c *gin.Context) {
	var req contactRequest
	if !BindOrError(c, &req) {
		return
	}

	svc := h.Contact
	svc.RequestID = middleware.GetRequestID(c)

	contact, err := svc.Submit(req.Name, req.Email, req.Message)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "message sent successfully",
		"contact": contact,
	})
}
