package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"testing"
	"time"
)

// Client is a thin HTTP client for exercising a running API instance.
// Tests are skipped unless MANDIR_API_URL points at one.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

func NewClient(t *testing.T) *Client {
	t.Helper()

	baseURL := os.Getenv("MANDIR_API_URL")
	if baseURL == "" {
		t.Skip("MANDIR_API_URL not set; skipping integration tests")
	}

	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// WithToken returns a copy of the client that authenticates as the given
// bearer token.
func (c *Client) WithToken(token string) *Client {
	out := *c
	out.token = token
	return &out
}

func (c *Client) do(method, path string, body any) (*http.Response, []byte, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return nil, nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, err
	}

	return resp, respBody, nil
}

func (c *Client) Get(path string) (*http.Response, []byte, error) {
	return c.do(http.MethodGet, path, nil)
}

func (c *Client) Post(path string, body any) (*http.Response, []byte, error) {
	return c.do(http.MethodPost, path, body)
}
