package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fairway/models"
	"fairway/services/booking"
	"fairway/utils"
)

// BookingHandler serves booking CRUD.
type BookingHandler struct {
	Service booking.Service
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(svc booking.Service) *BookingHandler {
	return &BookingHandler{Service: svc}
}

func bookingStatusCode(err error) int {
	var be *booking.BookingError
	if errors.As(err, &be) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// CreateBookingHandler books a lesson or bay slot.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var input models.Booking
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking", err.Error())
		return
	}

	created, err := h.Service.Create(c.Request.Context(), input)
	if err != nil {
		getLogger(c).Warn("booking create refused", zap.Error(err))
		utils.JSONError(c, bookingStatusCode(err), "Failed to create booking", err.Error())
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetBookingHandler returns one booking by id.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	b, err := h.Service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Booking not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, b)
}

// UpdateBookingHandler reschedules or edits a booking.
func (h *BookingHandler) UpdateBookingHandler(c *gin.Context) {
	var input models.Booking
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking", err.Error())
		return
	}
	input.ID = c.Param("id")

	updated, err := h.Service.Update(c.Request.Context(), input)
	if err != nil {
		utils.JSONError(c, bookingStatusCode(err), "Failed to update booking", err.Error())
		return
	}
	c.JSON(http.StatusOK, updated)
}

// CancelBookingHandler marks a booking cancelled; the record stays for
// reporting.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	if err := h.Service.Cancel(c.Request.Context(), c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusNotFound, "Failed to cancel booking", err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}

// ListDayBookingsHandler lists one owner's bookings for a date, cancelled
// included so the console can show churn.
// GET /api/bookings?ownerId=coach-1&date=2006-01-02
func (h *BookingHandler) ListDayBookingsHandler(c *gin.Context) {
	ownerID, date := c.Query("ownerId"), c.Query("date")
	if ownerID == "" || date == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing parameters", "query parameters 'ownerId' and 'date' are required")
		return
	}
	bookings, err := h.Service.ListDay(c.Request.Context(), ownerID, date)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list bookings", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}
