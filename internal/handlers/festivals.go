package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"mandir/internal/models"

	"github.com/gin-gonic/gin"
)

// ListFestivals - GET /api/festivals?scope=upcoming|past
// A public list hit on every visit, so the rendered JSON goes through the
// Redis tier as well.
func (h *Handlers) ListFestivals(c *gin.Context) {
	scope := c.DefaultQuery("scope", "upcoming")
	if scope != "upcoming" && scope != "past" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "scope must be upcoming or past"})
		return
	}

	if h.respCache != nil {
		if raw, err := h.respCache.GetRaw(c.Request.Context(), "festivals", scope); err == nil {
			c.Data(http.StatusOK, "application/json", raw)
			return
		}
	}

	var events []models.FestivalEvent
	var err error
	if scope == "past" {
		events, err = h.services.Festivals.Past(c.Request.Context())
	} else {
		events, err = h.services.Festivals.Upcoming(c.Request.Context())
	}
	if err != nil {
		respondError(c, err, "Failed to list festivals")
		return
	}

	if h.respCache != nil {
		if raw, err := json.Marshal(events); err == nil {
			if err := h.respCache.SetRaw(c.Request.Context(), "festivals", scope, raw); err != nil {
				slog.Warn("Failed to cache festivals response", "error", err)
			}
		}
	}

	c.JSON(http.StatusOK, events)
}
