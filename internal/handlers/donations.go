package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"mandir/internal/middleware"
	"mandir/internal/models"

	"github.com/gin-gonic/gin"
)

// ListCampaigns - GET /api/campaigns
// Rendered JSON sits in the Redis tier until a donation moves a running total.
func (h *Handlers) ListCampaigns(c *gin.Context) {
	if h.respCache != nil {
		if raw, err := h.respCache.GetRaw(c.Request.Context(), "campaigns", ""); err == nil {
			c.Data(http.StatusOK, "application/json", raw)
			return
		}
	}

	campaigns, err := h.services.Donations.ActiveCampaigns(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list campaigns")
		return
	}

	if h.respCache != nil {
		if raw, err := json.Marshal(campaigns); err == nil {
			if err := h.respCache.SetRaw(c.Request.Context(), "campaigns", "", raw); err != nil {
				slog.Warn("Failed to cache campaigns response", "error", err)
			}
		}
	}

	c.JSON(http.StatusOK, campaigns)
}

// CreateDonation - POST /api/donations
func (h *Handlers) CreateDonation(c *gin.Context) {
	var req models.CreateDonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	donation, err := h.services.Donations.Donate(c.Request.Context(), &req, middleware.UserID(c))
	if err != nil {
		respondError(c, err, "Failed to record donation")
		return
	}

	// The donation may have moved a campaign's running total
	if h.respCache != nil {
		if err := h.respCache.InvalidateResource(c.Request.Context(), "campaigns"); err != nil {
			slog.Warn("Failed to invalidate campaigns response cache", "error", err)
		}
	}

	c.JSON(http.StatusCreated, donation)
}
