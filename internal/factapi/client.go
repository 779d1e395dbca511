// Package factapi is a small client for a remote frog fact API. The API
// returns one JSON document per request with a single "fact" field.
package factapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

type factResponse struct {
	Fact string `json:"fact"`
}

// NewClient creates a client for the given API base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Random fetches one random fact.
func (c *Client) Random(ctx context.Context) (string, error) {
	u, err := url.JoinPath(c.BaseURL, "fact")
	if err != nil {
		return "", fmt.Errorf("invalid base URL: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", "phrogbot/1.0")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to make request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	var fr factResponse
	if err := json.NewDecoder(resp.Body).Decode(&fr); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if fr.Fact == "" {
		return "", fmt.Errorf("API returned an empty fact")
	}

	return fr.Fact, nil
}
