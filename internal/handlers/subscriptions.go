package handlers

import (
	"net/http"

	"mandir/internal/middleware"
	"mandir/internal/models"

	"github.com/gin-gonic/gin"
)

// ListMySubscriptions - GET /api/subscriptions
func (h *Handlers) ListMySubscriptions(c *gin.Context) {
	subs, err := h.services.Subscriptions.ListByUser(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err, "Failed to list subscriptions")
		return
	}

	c.JSON(http.StatusOK, subs)
}

// CreateSubscription - POST /api/subscriptions
func (h *Handlers) CreateSubscription(c *gin.Context) {
	var req models.CreateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sub, err := h.services.Subscriptions.Create(c.Request.Context(), &req, middleware.UserID(c))
	if err != nil {
		respondError(c, err, "Failed to create subscription")
		return
	}

	c.JSON(http.StatusCreated, sub)
}

// CancelSubscription - PATCH /api/subscriptions/:id/cancel
func (h *Handlers) CancelSubscription(c *gin.Context) {
	err := h.services.Subscriptions.Cancel(c.Request.Context(), c.Param("id"), middleware.UserID(c))
	if err != nil {
		respondError(c, err, "Failed to cancel subscription")
		return
	}

	c.Status(http.StatusOK)
}
