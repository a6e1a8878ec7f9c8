package handlers

import (
	"net/http"

	"mandir/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Dashboard - GET /api/dashboard
// Works signed out too: the user panels come back empty and the public
// panels load normally.
func (h *Handlers) Dashboard(c *gin.Context) {
	response, err := h.services.Dashboard.Load(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err, "Failed to load dashboard")
		return
	}

	c.JSON(http.StatusOK, response)
}
