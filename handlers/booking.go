package handlers

import (
	"errors"
	"net/http"

	"tutorhub/models"
	"tutorhub/services/booking"
	"tutorhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes quoting and booking lifecycle endpoints.
type BookingHandler struct {
	Service booking.BookingService
}

// writeBookingError maps service error codes onto HTTP statuses.
func writeBookingError(c *gin.Context, err error) {
	var bErr *booking.BookingError
	if errors.As(err, &bErr) {
		status := http.StatusBadRequest
		switch bErr.Code {
		case "conflict":
			status = http.StatusConflict
		case "forbidden":
			status = http.StatusForbidden
		case "slotUnavailable", "notBookable", "invalidState":
			status = http.StatusUnprocessableEntity
		}
		c.JSON(status, gin.H{"error": bErr.Message, "code": bErr.Code})
		return
	}
	utils.GetLogger().Error("Booking operation failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Booking operation failed"})
}

// QuoteHandler handles POST /bookings/quote.
func (h *BookingHandler) QuoteHandler(c *gin.Context) {
	var req models.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	quote, err := h.Service.QuoteSelection(req)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

// CreateBookingHandler handles POST /bookings.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	studentID := c.GetString("userID")
	var req models.BookingCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	bk, err := h.Service.CreateBooking(studentID, req)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, bk)
}

// ConfirmBookingHandler handles POST /bookings/:id/confirm.
func (h *BookingHandler) ConfirmBookingHandler(c *gin.Context) {
	bk, err := h.Service.ConfirmBooking(c.GetString("userID"), c.Param("id"))
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, bk)
}

// CancelBookingHandler handles POST /bookings/:id/cancel.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	// Reason is optional; an empty body is fine.
	var req models.CancelRequest
	_ = c.ShouldBindJSON(&req)
	bk, err := h.Service.CancelBooking(c.GetString("userID"), c.GetString("role"), c.Param("id"), req)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, bk)
}

// CompleteBookingHandler handles POST /bookings/:id/complete.
func (h *BookingHandler) CompleteBookingHandler(c *gin.Context) {
	bk, err := h.Service.CompleteBooking(c.GetString("userID"), c.Param("id"))
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, bk)
}

// MarkPaidHandler handles POST /bookings/:id/paid. Admin only; stands in for
// a payment-provider webhook.
func (h *BookingHandler) MarkPaidHandler(c *gin.Context) {
	bk, err := h.Service.MarkBookingPaid(c.Param("id"))
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, bk)
}

// GetBookingHandler handles GET /bookings/:id.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	bk, err := h.Service.GetBooking(c.GetString("userID"), c.GetString("role"), c.Param("id"))
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, bk)
}

// ListMyBookingsHandler handles GET /bookings. Students see their own
// bookings, tutors their calendar.
func (h *BookingHandler) ListMyBookingsHandler(c *gin.Context) {
	filter := models.BookingFilter{
		Status:   c.Query("status"),
		FromDate: c.Query("from"),
		ToDate:   c.Query("to"),
	}
	switch c.GetString("role") {
	case models.RoleTutor:
		filter.TutorID = c.GetString("userID")
	default:
		filter.StudentID = c.GetString("userID")
	}
	bookings, err := h.Service.ListBookings(filter)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}
