// Package fpros is a thin client for the FantasyPros public API (v2).
// Every call is a single GET carrying the x-api-key header; bodies are
// returned verbatim for the caller to pass through.
package fpros

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/phuslu/log"
)

type Client struct {
	HTTP      *http.Client
	BaseURL   string
	APIKey    string
	UserAgent string
	Logger    log.Logger
}

// NewClient creates a client for the given base URL and API key.
func NewClient(baseURL string, apiKey string, logger log.Logger) *Client {
	return &Client{
		HTTP:      &http.Client{Timeout: 20 * time.Second},
		BaseURL:   strings.TrimRight(baseURL, "/"),
		APIKey:    apiKey,
		UserAgent: "fantasypros-mcp/0.1",
		Logger:    logger,
	}
}

// Get issues GET {BaseURL}{path}?{query} and returns the raw body.
// Non-2xx responses become errors; the upstream "message" field is
// preferred when the error body carries one.
func (c *Client) Get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	reqID := uuid.NewString()
	u := c.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	c.Logger.Debug().
		Str("request_id", reqID).
		Str("method", "GET").
		Str("url", u).
		Msg("upstream request")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("x-api-key", c.APIKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.UserAgent)

	start := time.Now()
	resp, err := c.HTTP.Do(req)
	if err != nil {
		c.Logger.Error().
			Str("request_id", reqID).
			Err(err).
			Dur("duration", time.Since(start)).
			Msg("upstream request failed")
		return nil, fmt.Errorf("upstream request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	// Measured here so the body read counts toward the logged duration.
	c.Logger.Debug().
		Str("request_id", reqID).
		Int("status_code", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("upstream response")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errResp struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(body, &errResp) == nil && errResp.Message != "" {
			return nil, fmt.Errorf("%s", errResp.Message)
		}
		return nil, fmt.Errorf("GET %s failed: %d body=%s", path, resp.StatusCode, string(body))
	}

	return body, nil
}
