package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"paypal-subscription-webhook/config"
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to the Supabase PostgREST API using the project URL and
// anon key. It backs the same repository ports as the direct
// PostgreSQL adapter.
type Client struct {
	httpClient HTTPClient
	baseURL    string
	anonKey    string
}

// NewClient creates a Supabase REST client. Pass nil to use a default
// HTTP client with a 30s timeout.
func NewClient(cfg config.SupabaseConfig, httpClient HTTPClient) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(cfg.URL, "/"),
		anonKey:    cfg.AnonKey,
	}
}

// restError is the PostgREST error body.
type restError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// post writes rows to a PostgREST table endpoint. prefer carries the
// PostgREST Prefer header (upserts use resolution=merge-duplicates).
func (c *Client) post(ctx context.Context, path string, prefer string, row any) error {
	// PostgREST takes rows as a JSON array.
	body, err := json.Marshal([]any{row})
	if err != nil {
		return fmt.Errorf("marshal row: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("apikey", c.anonKey)
	req.Header.Set("Authorization", "Bearer "+c.anonKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", prefer)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("supabase request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		var restErr restError
		if json.Unmarshal(raw, &restErr) == nil && restErr.Message != "" {
			return errors.New(restErr.Message)
		}
		return fmt.Errorf("supabase error %d: %s", resp.StatusCode, string(raw))
	}

	return nil
}
