package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"mandir/internal/mailer"
	"mandir/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRoles struct {
	roles map[string][]models.AppRole
	err   error
}

func (f *fakeRoles) Roles(ctx context.Context, userID string) ([]models.AppRole, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.roles[userID], nil
}

type fakeDispatcher struct {
	to      string
	subject string
	html    string
	body    []byte
	err     error
	calls   int
}

func (f *fakeDispatcher) Send(ctx context.Context, to, subject, html string) ([]byte, error) {
	f.calls++
	f.to, f.subject, f.html = to, subject, html
	if f.err != nil {
		return nil, f.err
	}
	return f.body, nil
}

func staticVerifier(valid map[string]string) TokenVerifier {
	return func(token string) (string, error) {
		if userID, ok := valid[token]; ok {
			return userID, nil
		}
		return "", errors.New("bad token")
	}
}

func newNotifyRouter(roles *fakeRoles, mail *fakeDispatcher) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewNotificationsHandler(
		staticVerifier(map[string]string{"staff-token": "u-staff", "devotee-token": "u-dev"}),
		roles,
		mail,
	)
	r := gin.New()
	r.POST("/api/notifications/email", h.SendEmail)
	return r
}

func sendEmail(t *testing.T, r *gin.Engine, token string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	if s, ok := payload.(string); ok {
		body.WriteString(s)
	} else {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}

	req := httptest.NewRequest(http.MethodPost, "/api/notifications/email", &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func defaultRoles() *fakeRoles {
	return &fakeRoles{roles: map[string][]models.AppRole{
		"u-staff": {models.RoleStaff},
		"u-dev":   {models.RoleDevotee},
	}}
}

func bookingPayload() map[string]any {
	return map[string]any{
		"type": "booking",
		"data": map[string]any{
			"name":          "Ramesh Kumar",
			"email":         "ramesh@example.com",
			"poojaName":     "Satyanarayan Pooja",
			"scheduledDate": "2026-09-20",
			"scheduledTime": "08:30",
			"amountPaid":    1101,
		},
	}
}

func TestSendEmailRequiresAuthHeader(t *testing.T) {
	r := newNotifyRouter(defaultRoles(), &fakeDispatcher{})

	w := sendEmail(t, r, "", bookingPayload())

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Authentication required"}`, w.Body.String())
}

func TestSendEmailRejectsBadToken(t *testing.T) {
	r := newNotifyRouter(defaultRoles(), &fakeDispatcher{})

	w := sendEmail(t, r, "forged", bookingPayload())

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Invalid authentication token"}`, w.Body.String())
}

func TestSendEmailRoleLookupFailureIs500(t *testing.T) {
	roles := &fakeRoles{err: errors.New("db down")}
	r := newNotifyRouter(roles, &fakeDispatcher{})

	w := sendEmail(t, r, "staff-token", bookingPayload())

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Authorization check failed"}`, w.Body.String())
}

func TestSendEmailForbidsDevotees(t *testing.T) {
	mail := &fakeDispatcher{}
	r := newNotifyRouter(defaultRoles(), mail)

	w := sendEmail(t, r, "devotee-token", bookingPayload())

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"error":"Insufficient permissions. Only staff and admins can send emails."}`, w.Body.String())
	assert.Zero(t, mail.calls)
}

func TestSendEmailRejectsMalformedBody(t *testing.T) {
	r := newNotifyRouter(defaultRoles(), &fakeDispatcher{})

	w := sendEmail(t, r, "staff-token", `{"type": `)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSendEmailRejectsUnknownType(t *testing.T) {
	r := newNotifyRouter(defaultRoles(), &fakeDispatcher{})

	w := sendEmail(t, r, "staff-token", map[string]any{
		"type": "newsletter",
		"data": map[string]any{"email": "x@example.com"},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid email type")
}

func TestSendEmailRequiresRecipient(t *testing.T) {
	r := newNotifyRouter(defaultRoles(), &fakeDispatcher{})

	payload := bookingPayload()
	payload["data"].(map[string]any)["email"] = ""
	w := sendEmail(t, r, "staff-token", payload)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Recipient email is required"}`, w.Body.String())
}

func TestSendEmailPassesProviderResponseThrough(t *testing.T) {
	mail := &fakeDispatcher{body: []byte(`{"id":"email-123"}`)}
	r := newNotifyRouter(defaultRoles(), mail)

	w := sendEmail(t, r, "staff-token", bookingPayload())

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":"email-123"}`, w.Body.String())

	assert.Equal(t, 1, mail.calls)
	assert.Equal(t, "ramesh@example.com", mail.to)
	assert.Equal(t, "Pooja Booking Confirmation - Satyanarayan Pooja", mail.subject)
	assert.Contains(t, mail.html, "Ramesh Kumar")
	assert.Contains(t, mail.html, "Satyanarayan Pooja")
}

func TestSendEmailProviderFailureIs502(t *testing.T) {
	mail := &fakeDispatcher{err: &mailer.ProviderError{Status: 422, Message: "domain not verified"}}
	r := newNotifyRouter(defaultRoles(), mail)

	w := sendEmail(t, r, "staff-token", bookingPayload())

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.JSONEq(t, `{"error":"domain not verified"}`, w.Body.String())
}

func TestSendEmailNetworkFailureIs502(t *testing.T) {
	mail := &fakeDispatcher{err: errors.New("connection refused")}
	r := newNotifyRouter(defaultRoles(), mail)

	w := sendEmail(t, r, "staff-token", bookingPayload())

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.JSONEq(t, `{"error":"Failed to send email"}`, w.Body.String())
}

func TestSendEmailAdminsAllowed(t *testing.T) {
	roles := &fakeRoles{roles: map[string][]models.AppRole{
		"u-staff": {models.RoleAdmin},
	}}
	mail := &fakeDispatcher{body: []byte(`{"id":"ok"}`)}
	r := newNotifyRouter(roles, mail)

	w := sendEmail(t, r, "staff-token", bookingPayload())

	assert.Equal(t, http.StatusOK, w.Code)
}
