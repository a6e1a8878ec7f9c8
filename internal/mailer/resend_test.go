package mailer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resendConfig(url string) Config {
	return Config{
		Provider:     "resend",
		ResendAPIKey: "re_test_key",
		ResendURL:    url,
		From:         "Temple Notifications <onboarding@resend.dev>",
		Timeout:      2 * time.Second,
	}
}

func TestResendClientSendsExpectedRequest(t *testing.T) {
	var got resendSendRequest
	var gotAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/emails", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"id":"email-123"}`))
	}))
	defer srv.Close()

	client := NewResendClient(resendConfig(srv.URL))
	body, err := client.Send(context.Background(), "ramesh@example.com", "Hello", "<p>Hi</p>")
	require.NoError(t, err)

	assert.Equal(t, []byte(`{"id":"email-123"}`), body)
	assert.Equal(t, "Bearer re_test_key", gotAuth)
	assert.Equal(t, []string{"ramesh@example.com"}, got.To)
	assert.Equal(t, "Hello", got.Subject)
	assert.Equal(t, "Temple Notifications <onboarding@resend.dev>", got.From)
}

func TestResendClientSurfacesProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message":"domain not verified"}`))
	}))
	defer srv.Close()

	client := NewResendClient(resendConfig(srv.URL))
	_, err := client.Send(context.Background(), "x@example.com", "Hello", "<p>Hi</p>")

	var provErr *ProviderError
	require.ErrorAs(t, err, &provErr)
	assert.Equal(t, http.StatusUnprocessableEntity, provErr.Status)
	assert.Contains(t, provErr.Message, "domain not verified")
}

func TestResendClientNetworkFailureIsProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	client := NewResendClient(resendConfig(srv.URL))
	_, err := client.Send(context.Background(), "x@example.com", "Hello", "<p>Hi</p>")

	var provErr *ProviderError
	require.ErrorAs(t, err, &provErr)
	assert.Equal(t, http.StatusBadGateway, provErr.Status)
}

func TestNewDispatcherFallsBackToSMTP(t *testing.T) {
	d := NewDispatcher(Config{Provider: "resend", ResendAPIKey: ""})
	_, ok := d.(*SMTPDispatcher)
	assert.True(t, ok, "no API key means SMTP fallback")

	d = NewDispatcher(Config{Provider: "resend", ResendAPIKey: "re_x"})
	_, ok = d.(*ResendClient)
	assert.True(t, ok)
}
