package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"roomly/models"
)

// recurringRequest is the wire contract of the recurring-booking endpoint.
// The caller has already persisted the initial booking; this endpoint only
// produces the subsequent occurrences.
type recurringRequest struct {
	InitialBooking models.Booking `json:"initialBooking" binding:"required"`
	RepeatType     string         `json:"repeatType" binding:"required"`
	EndDate        string         `json:"endDate"`
	UserID         string         `json:"userId" binding:"required"`
}

// ExpandRecurring expands a repeat rule into concrete bookings and persists
// them in one batch. Responds with the number of occurrences inserted.
func (h *BookingHandler) ExpandRecurring(c *gin.Context) {
	var input recurringRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required parameters", "details": err.Error()})
		return
	}

	count, err := h.Service.ExpandRecurrence(
		c.Request.Context(),
		input.InitialBooking,
		models.RepeatType(input.RepeatType),
		input.EndDate,
		input.UserID,
	)
	if err != nil {
		h.Logger.Error("recurring expansion failed",
			zap.String("roomId", input.InitialBooking.RoomID),
			zap.String("repeatType", input.RepeatType),
			zap.Error(err))
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("created %d recurring bookings", count),
		"count":   count,
	})
}
