package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"roomify/models"
	"roomify/services/booking"
)

// BookingHandler exposes the booking store to the presentation layer.
type BookingHandler struct {
	Service booking.BookingService
	Slots   []string
	Logger  *zap.Logger
}

func NewBookingHandler(svc booking.BookingService, slots []string, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Slots: slots, Logger: logger}
}

// ListBookings returns stored bookings, optionally narrowed to one room and day.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	ctx := c.Request.Context()
	roomStr := c.Query("roomId")
	date := c.Query("date")

	if roomStr != "" || date != "" {
		roomID, err := strconv.Atoi(roomStr)
		if err != nil || roomID <= 0 || date == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "filtering requires a positive roomId and a date"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"bookings": h.Service.ListForRoomAndDate(ctx, roomID, date)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": h.Service.List(ctx)})
}

// CheckAvailability reports whether a single slot is free.
func (h *BookingHandler) CheckAvailability(c *gin.Context) {
	roomID, err := strconv.Atoi(c.Query("roomId"))
	date := c.Query("date")
	timeOfDay := c.Query("time")
	if err != nil || roomID <= 0 || date == "" || timeOfDay == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "roomId, date and time query parameters are required"})
		return
	}
	available := h.Service.IsAvailable(c.Request.Context(), roomID, date, timeOfDay)
	c.JSON(http.StatusOK, gin.H{
		"roomId":    roomID,
		"date":      date,
		"time":      timeOfDay,
		"available": available,
	})
}

// DaySchedule returns the availability of every offered slot for one room and day.
func (h *BookingHandler) DaySchedule(c *gin.Context) {
	roomID, err := strconv.Atoi(c.Query("roomId"))
	date := c.Query("date")
	if err != nil || roomID <= 0 || date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "roomId and date query parameters are required"})
		return
	}

	booked := make(map[string]bool)
	for _, b := range h.Service.ListForRoomAndDate(c.Request.Context(), roomID, date) {
		booked[b.Time] = true
	}
	slots := make([]gin.H, 0, len(h.Slots))
	for _, slot := range h.Slots {
		slots = append(slots, gin.H{"time": slot, "available": !booked[slot]})
	}
	c.JSON(http.StatusOK, gin.H{"roomId": roomID, "date": date, "slots": slots})
}

// CreateBooking validates and persists a candidate booking.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var input struct {
		RoomID   int    `json:"room_id"`
		Date     string `json:"date"`
		Time     string `json:"time"`
		Duration int    `json:"duration"`
		Owner    string `json:"owner"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	candidate := models.Booking{
		RoomID:   input.RoomID,
		Date:     input.Date,
		Time:     input.Time,
		Duration: input.Duration,
		Owner:    input.Owner,
	}
	stored, err := h.Service.Save(c.Request.Context(), candidate)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, stored)
}

// DeleteBooking removes one booking by id.
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.renderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ClearBookings wipes the whole collection.
func (h *BookingHandler) ClearBookings(c *gin.Context) {
	if err := h.Service.Clear(c.Request.Context()); err != nil {
		h.renderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *BookingHandler) renderError(c *gin.Context, err error) {
	var svcErr *booking.Error
	if !errors.As(err, &svcErr) {
		h.Logger.Error("booking operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	switch svcErr.Code {
	case booking.CodeValidationFailed:
		c.JSON(http.StatusBadRequest, gin.H{
			"error":      svcErr.Message,
			"code":       svcErr.Code,
			"violations": svcErr.Violations,
		})
	case booking.CodeSlotConflict:
		c.JSON(http.StatusConflict, gin.H{"error": svcErr.Message, "code": svcErr.Code})
	case booking.CodeNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": svcErr.Message, "code": svcErr.Code})
	default:
		h.Logger.Error("storage failure", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": svcErr.Message, "code": svcErr.Code})
	}
}
