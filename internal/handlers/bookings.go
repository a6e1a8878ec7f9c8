package handlers

import (
	"net/http"

	"mandir/internal/middleware"
	"mandir/internal/models"

	"github.com/gin-gonic/gin"
)

// ListBookings - GET /api/bookings
// Staff view of every booking.
func (h *Handlers) ListBookings(c *gin.Context) {
	bookings, err := h.services.Bookings.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list bookings")
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// ListMyBookings - GET /api/bookings/mine
func (h *Handlers) ListMyBookings(c *gin.Context) {
	bookings, err := h.services.Bookings.ListByUser(c.Request.Context(), middleware.UserID(c), 0)
	if err != nil {
		respondError(c, err, "Failed to list bookings")
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// CreateBooking - POST /api/bookings
func (h *Handlers) CreateBooking(c *gin.Context) {
	var req models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	booking, err := h.services.Bookings.Create(c.Request.Context(), &req, middleware.UserID(c))
	if err != nil {
		respondError(c, err, "Failed to create booking")
		return
	}

	c.JSON(http.StatusCreated, booking)
}
