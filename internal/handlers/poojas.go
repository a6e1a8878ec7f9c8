package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListPoojas - GET /api/poojas
// The catalog changes rarely, so the rendered JSON sits in the Redis tier
// in front of the in-process store.
func (h *Handlers) ListPoojas(c *gin.Context) {
	if h.respCache != nil {
		if raw, err := h.respCache.GetRaw(c.Request.Context(), "poojas", ""); err == nil {
			c.Data(http.StatusOK, "application/json", raw)
			return
		}
	}

	poojas, err := h.services.Poojas.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list poojas")
		return
	}

	if h.respCache != nil {
		if raw, err := json.Marshal(poojas); err == nil {
			if err := h.respCache.SetRaw(c.Request.Context(), "poojas", "", raw); err != nil {
				slog.Warn("Failed to cache poojas response", "error", err)
			}
		}
	}

	c.JSON(http.StatusOK, poojas)
}
