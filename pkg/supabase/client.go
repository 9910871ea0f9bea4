package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"makom-backend/pkg/logger"
)

// Client talks to the Supabase PostgREST API. One instance is constructed at
// startup and shared across requests; it holds no mutable state.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *logger.Logger
}

// New creates a new Supabase client. The timeout covers every query issued
// through the client; PostgREST has no per-request override here.
func New(baseURL, apiKey string, log *logger.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: log,
	}
}

// Select runs a GET against /rest/v1/{table} with the given PostgREST query
// parameters (eq/order/limit filters) and decodes the JSON array into dest.
func (c *Client) Select(ctx context.Context, table string, query url.Values, dest interface{}) error {
	return c.do(ctx, http.MethodGet, table, query, nil, dest)
}

// Insert runs a POST against /rest/v1/{table} with Prefer:
// return=representation, so the inserted rows come back and are decoded into
// dest. Pass a nil dest to discard the representation.
func (c *Client) Insert(ctx context.Context, table string, payload interface{}, dest interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal insert payload: %w", err)
	}
	return c.do(ctx, http.MethodPost, table, nil, body, dest)
}

func (c *Client) do(ctx context.Context, method, table string, query url.Values, body []byte, dest interface{}) error {
	u := fmt.Sprintf("%s/rest/v1/%s", c.baseURL, table)
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))
	req.Header.Set("Accept", "application/json")
	if method == http.MethodPost {
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Prefer", "return=representation")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call Supabase: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("Supabase returned status %d: %s", resp.StatusCode, string(respBody))
	}

	if dest == nil {
		return nil
	}

	if err := json.Unmarshal(respBody, dest); err != nil {
		c.logger.WithFields(map[string]interface{}{
			"table":       table,
			"status_code": resp.StatusCode,
		}).Error("Failed to parse Supabase response")
		return fmt.Errorf("failed to parse Supabase response: %w", err)
	}

	return nil
}
