package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	defaultTimeout   = 60 * time.Second
	defaultUserAgent = "inventory"

	// maxBodySize caps responses; catalogs and cover art are small.
	maxBodySize = 32 << 20
)

// Client wraps HTTP GET requests with a timeout, a User-Agent header and a
// response size limit.
//
// Example usage:
//
//	client := NewClient()
//	doc, err := client.GetString(ctx, "https://example.com/inventory.yaml")
//	art, err := client.Get(ctx, "https://example.com/covers/clapton.jpg")
type Client struct {
	httpClient *http.Client
	userAgent  string
	maxBody    int64
}

// NewClient creates a new HTTP client.
//
// The client is configured with:
//   - 60 second timeout
//   - "inventory" User-Agent header
//   - 32 MiB response limit
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		userAgent: defaultUserAgent,
		maxBody:   maxBodySize,
	}
}

// Get performs a GET request and returns the response body as bytes.
//
// Returns an error if:
//   - The request fails
//   - The response status is not 200 OK
//   - The body is larger than the client's limit
//   - Reading the body fails
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %s: HTTP %d: %s", url, resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	if err != nil {
		return nil, err
	}
	if int64(len(body)) > c.maxBody {
		return nil, fmt.Errorf("GET %s: response larger than %d bytes", url, c.maxBody)
	}

	return body, nil
}

// GetString performs a GET request and returns the response body as a string.
func (c *Client) GetString(ctx context.Context, url string) (string, error) {
	body, err := c.Get(ctx, url)
	if err != nil {
		return "", err
	}
	return string(body), nil
}
