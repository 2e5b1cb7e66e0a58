// Package http provides the HTTP client used to fetch remote catalogs and
// their cover art.
//
// The Client in this package handles:
//   - User-Agent headers
//   - Timeout handling
//   - Response size limits
//
// # Basic Usage
//
//	client := http.NewClient()
//	doc, err := client.GetString(ctx, "https://example.com/inventory.yaml")
package http
