package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"roomly/models"
	"roomly/services/room"
)

// RoomHandler serves the room management endpoints.
type RoomHandler struct {
	Service room.RoomService
	Logger  *zap.Logger
}

// NewRoomHandler constructs a RoomHandler.
func NewRoomHandler(svc room.RoomService, logger *zap.Logger) *RoomHandler {
	return &RoomHandler{Service: svc, Logger: logger}
}

// CreateRoom registers a new room (admin only).
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	var input models.Room
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	created, err := h.Service.CreateRoom(c.Request.Context(), &input)
	if err != nil {
		if errors.Is(err, room.ErrMissingName) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListRooms returns the bookable rooms. Admins may pass ?all=true to include
// disabled rooms.
func (h *RoomHandler) ListRooms(c *gin.Context) {
	includeDisabled := c.Query("all") == "true" && c.GetBool("isAdmin")

	rooms, err := h.Service.ListRooms(c.Request.Context(), includeDisabled)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"rooms": rooms})
}

// SetRoomEnabled toggles whether a room accepts new bookings (admin only).
func (h *RoomHandler) SetRoomEnabled(c *gin.Context) {
	id := c.Param("id")
	var input struct {
		Enabled *bool `json:"enabled" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := h.Service.SetRoomEnabled(c.Request.Context(), id, *input.Enabled); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "room updated"})
}
