// Package ghapi validates code-hosting API credentials before a run
// starts. The scoring core itself never talks to the code host.
package ghapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.github.com"

// Client is a minimal code-hosting API client.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a Client. baseURL may be empty for the public API.
func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// WithHTTPClient overrides the default HTTP client and returns the
// receiver for chaining. Used by tests.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.httpClient = hc
	return c
}

// ValidateToken checks a personal access token with a cheap authenticated
// call. An empty token is invalid.
func (c *Client) ValidateToken(ctx context.Context, token string) error {
	if token == "" {
		return fmt.Errorf("ghapi: token is empty")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/zen", nil)
	if err != nil {
		return fmt.Errorf("ghapi: create request: %w", err)
	}
	req.Header.Set("Authorization", "token "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("ghapi: validate token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("ghapi: token rejected: HTTP %d", resp.StatusCode)
	}
	return nil
}
