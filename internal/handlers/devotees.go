package handlers

import (
	"net/http"

	"mandir/internal/models"

	"github.com/gin-gonic/gin"
)

// ListDevotees - GET /api/devotees?search=
func (h *Handlers) ListDevotees(c *gin.Context) {
	search := c.Query("search")

	devotees, err := h.services.Devotees.List(c.Request.Context(), search)
	if err != nil {
		respondError(c, err, "Failed to list devotees")
		return
	}

	c.JSON(http.StatusOK, devotees)
}

// CreateDevotee - POST /api/devotees
func (h *Handlers) CreateDevotee(c *gin.Context) {
	var req models.CreateDevoteeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	devotee, err := h.services.Devotees.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to create devotee")
		return
	}

	c.JSON(http.StatusCreated, devotee)
}

// DeleteDevotee - DELETE /api/devotees/:id
func (h *Handlers) DeleteDevotee(c *gin.Context) {
	if err := h.services.Devotees.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete devotee")
		return
	}

	c.Status(http.StatusNoContent)
}
