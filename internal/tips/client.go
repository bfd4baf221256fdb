// Package tips fetches informational notices from the static tips service,
// which runs separately from the warehouse API.
package tips

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Severity classifies how a tip should be presented.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Tip is one informational notice.
type Tip struct {
	ID       int64    `json:"id"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

// Client wraps interactions with the tips service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient constructs a client for the given base URL. When httpClient is
// nil a default client with a 30 second timeout is used.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// List fetches all tips.
func (c *Client) List(ctx context.Context) ([]Tip, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/tips", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("tips: service returned status %d", resp.StatusCode)
	}
	var out []Tip
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}
