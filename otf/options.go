package otf

import (
	"net/http"
	"time"
)

// Option configures the client.
type Option func(*Client)

// WithTimeout sets the HTTP client timeout. Without it requests block
// until the transport gives up.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithHTTPClient replaces the connection pool. The client still owns it:
// Close releases it.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithHostOverride points a host alias at a different base URL
// (scheme included). Used by tests to target a local server.
func WithHostOverride(host Host, baseURL string) Option {
	return func(c *Client) {
		c.hosts[host] = baseURL
	}
}
