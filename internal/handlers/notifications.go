package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"mandir/internal/auth"
	"mandir/internal/mailer"
	"mandir/internal/metrics"
	"mandir/internal/models"

	"github.com/gin-gonic/gin"
)

// TokenVerifier resolves a bearer token to a user id
type TokenVerifier func(token string) (string, error)

// RoleSource looks up the role set of a user
type RoleSource interface {
	Roles(ctx context.Context, userID string) ([]models.AppRole, error)
}

// NotificationsHandler sends transactional emails on behalf of staff. It
// runs its own auth pipeline instead of the shared middleware because each
// step has a distinct contract-level response.
type NotificationsHandler struct {
	verify TokenVerifier
	roles  RoleSource
	mail   mailer.Dispatcher
}

func NewNotificationsHandler(verify TokenVerifier, roles RoleSource, mail mailer.Dispatcher) *NotificationsHandler {
	return &NotificationsHandler{verify: verify, roles: roles, mail: mail}
}

type sendEmailRequest struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// SendEmail - POST /api/notifications/email
//
// The pipeline short-circuits in order: authentication, authorization,
// payload validation, dispatch. On success the provider's own response
// body is passed through.
func (h *NotificationsHandler) SendEmail(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	token := strings.TrimPrefix(header, "Bearer ")
	userID, err := h.verify(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authentication token"})
		return
	}

	held, err := h.roles.Roles(c.Request.Context(), userID)
	if err != nil {
		slog.Error("Failed to load roles for email send", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Authorization check failed"})
		return
	}
	if !hasStaffRole(held) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions. Only staff and admins can send emails."})
		return
	}

	var req sendEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msg, err := mailer.ParseMessage(req.Type, req.Data)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if msg.Recipient() == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Recipient email is required"})
		return
	}

	html, err := msg.HTML()
	if err != nil {
		slog.Error("Failed to render email template", "error", err, "type", req.Type)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render email"})
		return
	}

	body, err := h.mail.Send(c.Request.Context(), msg.Recipient(), msg.Subject(), html)
	if err != nil {
		metrics.EmailFailed(req.Type)
		slog.Error("Email provider rejected send", "error", err, "type", req.Type)

		var provErr *mailer.ProviderError
		if errors.As(err, &provErr) {
			c.JSON(http.StatusBadGateway, gin.H{"error": provErr.Message})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to send email"})
		return
	}

	metrics.EmailSent(req.Type)
	c.Data(http.StatusOK, "application/json", body)
}

func hasStaffRole(roles []models.AppRole) bool {
	for _, r := range roles {
		if r == models.RoleAdmin || r == models.RoleStaff {
			return true
		}
	}
	return false
}

// VerifyWithSecret adapts the JWT verifier to the handler's TokenVerifier.
func VerifyWithSecret(secret string) TokenVerifier {
	return func(token string) (string, error) {
		return auth.VerifyToken(secret, token)
	}
}
