package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"roomly/models"
	"roomly/services/booking"
)

// BookingHandler serves the booking endpoints.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// statusForError maps service errors to HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, booking.ErrMissingFields),
		errors.Is(err, booking.ErrInvalidTimeRange),
		errors.Is(err, booking.ErrInvalidDate),
		errors.Is(err, booking.ErrInvalidEndDate),
		errors.Is(err, booking.ErrInvalidRepeatType),
		errors.Is(err, booking.ErrRoomNotFound),
		errors.Is(err, booking.ErrRoomDisabled):
		return http.StatusBadRequest
	case errors.Is(err, booking.ErrBookingConflict):
		return http.StatusConflict
	case errors.Is(err, booking.ErrNotAllowed):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// CreateBooking creates a single booking (the first occurrence of a series,
// or a one-off).
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var input models.Booking
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if userID := c.GetString("userID"); userID != "" {
		input.UserID = userID
	}

	created, err := h.Service.CreateBooking(c.Request.Context(), &input)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListRoomDay returns all bookings for a room on one date (calendar view).
func (h *BookingHandler) ListRoomDay(c *gin.Context) {
	roomID := c.Param("roomID")
	date := c.Query("date")

	bookings, err := h.Service.ListRoomDay(c.Request.Context(), roomID, date)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// ListMine returns the authenticated user's bookings (dashboard view).
func (h *BookingHandler) ListMine(c *gin.Context) {
	userID := c.GetString("userID")

	bookings, err := h.Service.ListUserBookings(c.Request.Context(), userID)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// CancelBooking deletes a booking owned by the requester.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	id := c.Param("id")
	userID := c.GetString("userID")
	isAdmin := c.GetBool("isAdmin")

	if err := h.Service.CancelBooking(c.Request.Context(), id, userID, isAdmin); err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "booking cancelled"})
}
