package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthEndpoint(t *testing.T) {
	client := NewClient(t)

	resp, body, err := client.Get("/health")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "ok")
}

func TestPublicListsAreOpen(t *testing.T) {
	client := NewClient(t)

	for _, path := range []string{
		"/api/poojas",
		"/api/festivals",
		"/api/festivals?scope=past",
		"/api/campaigns",
		"/api/community/posts",
		"/api/dashboard",
	} {
		resp, _, err := client.Get(path)
		require.NoError(t, err, path)
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
	}
}

func TestSignedInEndpointsRequireAuth(t *testing.T) {
	client := NewClient(t)

	for _, path := range []string{
		"/api/bookings/mine",
		"/api/subscriptions",
		"/api/darshan/bookings",
	} {
		resp, _, err := client.Get(path)
		require.NoError(t, err, path)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, path)
	}
}

func TestRegisterLoginFlow(t *testing.T) {
	client := NewClient(t)
	email := fmt.Sprintf("it-%d@example.com", time.Now().UnixNano())

	resp, body, err := client.Post("/api/auth/register", map[string]any{
		"email":        email,
		"password":     "test-password-1",
		"display_name": "Integration Tester",
	})
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

	var auth struct {
		Token  string   `json:"token"`
		UserID string   `json:"user_id"`
		Roles  []string `json:"roles"`
	}
	require.NoError(t, json.Unmarshal(body, &auth))
	assert.NotEmpty(t, auth.Token)
	assert.Equal(t, []string{"devotee"}, auth.Roles)

	// Duplicate registration is a caller error
	resp, _, err = client.Post("/api/auth/register", map[string]any{
		"email":    email,
		"password": "test-password-1",
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Login with the same credentials
	resp, body, err = client.Post("/api/auth/login", map[string]any{
		"email":    email,
		"password": "test-password-1",
	})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	require.NoError(t, json.Unmarshal(body, &auth))

	// The token opens the signed-in surface
	signedIn := client.WithToken(auth.Token)
	resp, _, err = signedIn.Get("/api/subscriptions")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// But not the staff surface
	resp, _, err = signedIn.Get("/api/devotees")
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// Wrong password is rejected without detail
	resp, _, err = client.Post("/api/auth/login", map[string]any{
		"email":    email,
		"password": "wrong",
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestNotificationEndpointAuthPipeline(t *testing.T) {
	client := NewClient(t)

	resp, body, err := client.Post("/api/notifications/email", map[string]any{
		"type": "booking",
		"data": map[string]any{"email": "x@example.com"},
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.JSONEq(t, `{"error":"Authentication required"}`, string(body))

	resp, body, err = client.WithToken("forged").Post("/api/notifications/email", map[string]any{
		"type": "booking",
		"data": map[string]any{"email": "x@example.com"},
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.JSONEq(t, `{"error":"Invalid authentication token"}`, string(body))
}
