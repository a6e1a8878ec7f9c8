package handlers

import (
	"net/http"

	"mandir/internal/middleware"
	"mandir/internal/models"

	"github.com/gin-gonic/gin"
)

// ListDarshanSlots - GET /api/darshan/slots?date=YYYY-MM-DD
func (h *Handlers) ListDarshanSlots(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date is required"})
		return
	}

	slots, err := h.services.Darshan.SlotsByDate(c.Request.Context(), date)
	if err != nil {
		respondError(c, err, "Failed to list darshan slots")
		return
	}

	c.JSON(http.StatusOK, slots)
}

// ListMyDarshanBookings - GET /api/darshan/bookings
func (h *Handlers) ListMyDarshanBookings(c *gin.Context) {
	bookings, err := h.services.Darshan.BookingsByUser(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err, "Failed to list darshan bookings")
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// BookDarshan - POST /api/darshan/bookings
func (h *Handlers) BookDarshan(c *gin.Context) {
	var req models.BookDarshanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	booking, err := h.services.Darshan.Book(c.Request.Context(), &req, middleware.UserID(c))
	if err != nil {
		respondError(c, err, "Failed to book darshan slot")
		return
	}

	c.JSON(http.StatusCreated, booking)
}
