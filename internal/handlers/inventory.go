package handlers

import (
	"net/http"

	"mandir/internal/models"

	"github.com/gin-gonic/gin"
)

// ListInventory - GET /api/inventory
func (h *Handlers) ListInventory(c *gin.Context) {
	items, err := h.services.Inventory.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list inventory")
		return
	}

	c.JSON(http.StatusOK, items)
}

// CreateInventoryItem - POST /api/inventory
func (h *Handlers) CreateInventoryItem(c *gin.Context) {
	var req models.CreateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.services.Inventory.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to create inventory item")
		return
	}

	c.JSON(http.StatusCreated, item)
}
