package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"mandir/internal/cache"
	"mandir/internal/repository"
	"mandir/internal/service"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	services  *service.Services
	respCache *cache.ResponseCache
}

// NewHandlers wires the HTTP surface. respCache may be nil; hot public
// lists then skip the Redis tier.
func NewHandlers(services *service.Services, respCache *cache.ResponseCache) *Handlers {
	return &Handlers{
		services:  services,
		respCache: respCache,
	}
}

// Health - GET /health
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// respondError maps service error kinds onto HTTP statuses. Anything
// unrecognized is an internal error; the detail goes to the log, not the
// client.
func respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrBadCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
	case errors.Is(err, service.ErrInvalid):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, repository.ErrSlotFull):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		slog.Error(fallback, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
