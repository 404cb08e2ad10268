package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client is a generic HTTP client for communicating with external services
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	headers    map[string]string
}

// NewClient creates a new HTTP client
func NewClient(serviceURL string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		BaseURL: serviceURL,
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
		headers: make(map[string]string),
	}
}

// SetHeader sets a header applied to every request made by the client
func (c *Client) SetHeader(key, value string) {
	c.headers[key] = value
}

// GetJSON performs a GET request and decodes the JSON response into target.
// A url starting with "/" is resolved against the client's base URL.
func (c *Client) GetJSON(ctx context.Context, url string, target interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.resolve(url), nil)
	if err != nil {
		return fmt.Errorf("failed to create HTTP request: %w", err)
	}

	return c.do(req, target)
}

// PostJSON performs a POST request with a JSON body and decodes the JSON
// response into target
func (c *Client) PostJSON(ctx context.Context, url string, body interface{}, target interface{}) error {
	reqBody, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.resolve(url), bytes.NewBuffer(reqBody))
	if err != nil {
		return fmt.Errorf("failed to create HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, target)
}

func (c *Client) resolve(url string) string {
	if strings.HasPrefix(url, "/") {
		return strings.TrimSuffix(c.BaseURL, "/") + url
	}
	return url
}

func (c *Client) do(req *http.Request, target interface{}) error {
	req.Header.Set("Accept", "application/json")
	for key, value := range c.headers {
		req.Header.Set(key, value)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("request failed: (status: %d, body: %s)", resp.StatusCode, string(respBody))
	}

	if target == nil {
		return nil
	}

	if err := json.Unmarshal(respBody, target); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	return nil
}
