package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"roomify/models"
)

// RoomHandler serves the static room and slot catalogs.
type RoomHandler struct {
	Rooms []models.Room
	Slots []string
}

func NewRoomHandler(rooms []models.Room, slots []string) *RoomHandler {
	return &RoomHandler{Rooms: rooms, Slots: slots}
}

// ListRooms returns the room catalog.
func (h *RoomHandler) ListRooms(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"rooms": h.Rooms})
}

// ListSlots returns the offered start times.
func (h *RoomHandler) ListSlots(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"slots": h.Slots})
}
