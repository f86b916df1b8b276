package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/storelinehq/admin-gateway-go/internal/config"
)

// Client is the authenticated HTTP client for the remote HR API. It is
// constructed once with its credentials and injected into every service that
// talks upstream; nothing reads tokens from shared storage at call time.
type Client struct {
	baseURL string
	token   string
	httpc   *http.Client
}

// NewClient creates an upstream client. A missing token or base URL is a
// configuration error and is rejected here, before any network call.
func NewClient(cfg config.UpstreamConfig) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("upstream base URL is required")
	}
	if cfg.Token == "" {
		return nil, fmt.Errorf("upstream API token is required")
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		token:   cfg.Token,
		httpc:   &http.Client{Timeout: cfg.Timeout},
	}, nil
}

// APIError represents a non-2xx reply from the HR API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("hr API error [%d]: %s", e.StatusCode, e.Message)
}

// do issues one request and decodes the reply into out when out is non-nil.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body interface{}, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(raw),
		}
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}

	return nil
}

// errorMessage pulls a human-readable message out of an error body, falling
// back to the raw text.
func errorMessage(raw []byte) string {
	var parsed struct {
		Detail  string `json:"detail"`
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &parsed); err == nil {
		switch {
		case parsed.Detail != "":
			return parsed.Detail
		case parsed.Message != "":
			return parsed.Message
		case parsed.Error != "":
			return parsed.Error
		}
	}

	msg := strings.TrimSpace(string(raw))
	if msg == "" {
		return "upstream request failed"
	}
	if len(msg) > 200 {
		msg = msg[:200]
	}
	return msg
}
