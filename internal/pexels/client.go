// Package pexels is a minimal client for the Pexels photo search API, used
// by the corpus downloader.
package pexels

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"
)

// MaxPerPage is the largest page size the search API accepts.
const MaxPerPage = 80

type Client struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

// Photo is one search result. Src.Large2x is the high quality download URL.
type Photo struct {
	ID  int64 `json:"id"`
	Src struct {
		Large2x string `json:"large2x"`
	} `json:"src"`
}

type searchResponse struct {
	Photos []Photo `json:"photos"`
}

// NewClient creates a Pexels client authenticated with apiKey.
func NewClient(apiKey string) *Client {
	return &Client{
		BaseURL: "https://api.pexels.com",
		APIKey:  apiKey,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Search returns one page of photo results for a query.
func (c *Client) Search(ctx context.Context, query string, page, perPage int) ([]Photo, error) {
	if query == "" {
		return nil, fmt.Errorf("query cannot be empty")
	}

	u, err := url.Parse(c.BaseURL + "/v1/search")
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("page", strconv.Itoa(page))
	params.Set("per_page", strconv.Itoa(perPage))
	u.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", c.APIKey)
	req.Header.Set("User-Agent", "phrogbot/1.0")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	var sr searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return sr.Photos, nil
}

// Download streams a photo URL into filePath.
func (c *Client) Download(ctx context.Context, photoURL, filePath string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, photoURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download returned status %d", resp.StatusCode)
	}

	f, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	if _, err := io.Copy(f, resp.Body); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	return nil
}
