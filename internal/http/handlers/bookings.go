package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotelbooking/internal/http/middleware"
	"hotelbooking/internal/services"
)

type BookingHandler struct {
	Bookings services.BookingService
	Payments services.PaymentService
	Docs     services.DocsService
}

func (h BookingHandler) bookingSvc(c *gin.Context) services.BookingService {
	svc := h.Bookings
	svc.RequestID = middleware.GetRequestID(c)
	return svc
}

type bookingRequest struct {
	RoomType int64  `form:"room_type" json:"room_type"`
	CheckIn  string `form:"check_in" json:"check_in"`
	CheckOut string `form:"check_out" json:"check_out"`
	Guests   int    `form:"guests" json:"guests"`
}

// POST /api/hotels/:id/bookings
func (h BookingHandler) Create(c *gin.Context) {
	userID, _, ok := middleware.CurrentUser(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "login required", nil)
		return
	}

	hotelID, pok := PathID(c, "id")
	if !pok {
		return
	}

	var req bookingRequest
	if !BindOrError(c, &req) {
		return
	}

	booking, err := h.bookingSvc(c).CreateBooking(userID, services.BookingInput{
		HotelID:    hotelID,
		RoomTypeID: req.RoomType,
		CheckIn:    req.CheckIn,
		CheckOut:   req.CheckOut,
		Guests:     req.Guests,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "booking created",
		"booking": booking,
	})
}

// GET /api/bookings
func (h BookingHandler) MyBookings(c *gin.Context) {
	userID, _, ok := middleware.CurrentUser(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "login required", nil)
		return
	}

	bookings, err := h.bookingSvc(c).MyBookings(userID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// GET /api/bookings/:id
func (h BookingHandler) Detail(c *gin.Context) {
	userID, _, ok := middleware.CurrentUser(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "login required", nil)
		return
	}
	id, pok := PathID(c, "id")
	if !pok {
		return
	}

	svc := h.bookingSvc(c)
	booking, err := svc.GetOwnedBooking(userID, id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	resp := gin.H{"booking": booking}
	payment, err := svc.PaymentFor(booking)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if payment != nil {
		resp["payment"] = payment
	}
	c.JSON(http.StatusOK, resp)
}

type paymentRequest struct {
	Method string `form:"method" json:"method"`
}

// POST /api/bookings/:id/payment
func (h BookingHandler) RecordPayment(c *gin.Context) {
	userID, _, ok := middleware.CurrentUser(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "login required", nil)
		return
	}
	id, pok := PathID(c, "id")
	if !pok {
		return
	}

	var req paymentRequest
	if !BindOrError(c, &req) {
		return
	}

	svc := h.Payments
	svc.RequestID = middleware.GetRequestID(c)

	payment, err := svc.RecordPayment(userID, id, req.Method)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "payment recorded",
		"payment": payment,
	})
}

// GET /api/bookings/:id/invoice
func (h BookingHandler) Invoice(c *gin.Context) {
	userID, _, ok := middleware.CurrentUser(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "login required", nil)
		return
	}
	id, pok := PathID(c, "id")
	if !pok {
		return
	}

	svc := h.Docs
	svc.RequestID = middleware.GetRequestID(c)

	pdf, filename, err := svc.GenerateInvoice(userID, id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
