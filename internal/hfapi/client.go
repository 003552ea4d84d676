// Package hfapi is a minimal client for the model-hosting API: repo
// metadata (tags carry the license), file trees (sizes) and raw file
// downloads. The scoring core never calls HTTP itself; everything it
// needs arrives through this collaborator.
package hfapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

const defaultBaseURL = "https://huggingface.co"

// infoCacheSize bounds the model-info LRU. One manifest rarely names
// more than a few dozen distinct repos.
const infoCacheSize = 128

// Client talks to the model-hosting API for a fixed repository revision.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *slog.Logger
	infoCache  *lru.Cache[string, *ModelInfo]
}

// Option configures the Client during construction.
type Option func(*clientConfig) error

type clientConfig struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *slog.Logger
	timeout    time.Duration
}

// New creates a Client. The zero configuration talks to the public
// hosting API anonymously with a 15 second timeout.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		baseURL: defaultBaseURL,
		timeout: 15 * time.Second,
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	httpClient := cfg.httpClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if cfg.timeout > 0 {
		httpClient.Timeout = cfg.timeout
	}

	logger := cfg.logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	cache, err := lru.New[string, *ModelInfo](infoCacheSize)
	if err != nil {
		return nil, fmt.Errorf("hfapi: init cache: %w", err)
	}

	return &Client{
		baseURL:    strings.TrimSuffix(cfg.baseURL, "/"),
		token:      cfg.token,
		httpClient: httpClient,
		logger:     logger,
		infoCache:  cache,
	}, nil
}

// WithBaseURL overrides the API base URL. Used by tests.
func WithBaseURL(u string) Option {
	return func(cfg *clientConfig) error {
		if u == "" {
			return fmt.Errorf("hfapi: base URL is required")
		}
		cfg.baseURL = u
		return nil
	}
}

// WithToken sets the bearer token sent on every request.
func WithToken(token string) Option {
	return func(cfg *clientConfig) error {
		cfg.token = token
		return nil
	}
}

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(cfg *clientConfig) error {
		cfg.httpClient = c
		return nil
	}
}

// WithTimeout sets a timeout on the HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(cfg *clientConfig) error {
		cfg.timeout = d
		return nil
	}
}

// WithLogger configures structured logging.
func WithLogger(l *slog.Logger) Option {
	return func(cfg *clientConfig) error {
		cfg.logger = l
		return nil
	}
}

// doJSON executes a GET request and decodes the JSON response into dst.
// Error statuses are returned as *APIError.
func (c *Client) doJSON(ctx context.Context, url, operation string, dst any) error {
	resp, err := c.do(ctx, url, operation)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("%s: decode response: %w", operation, err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, url, operation string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: create request: %w", operation, err)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	c.logger.DebugContext(ctx, "API request", "operation", operation, "url", url)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: do request: %w", operation, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		msg := strings.TrimSpace(string(body))
		if msg == "" {
			msg = resp.Status
		}
		return nil, newAPIError(operation, resp.StatusCode, msg)
	}
	return resp, nil
}
