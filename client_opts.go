package listcord

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/beefsack/go-rate"
)

// Option defines a function type used to configure a Client instance.
type Option func(*Client)

// WithLogger sets a custom slog.Logger for the Client to use. The default
// discards all output.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithHTTPClient sets the underlying HTTP transport. The default client uses
// a 10s timeout; no further timeouts or retries are layered on top.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.http = httpClient
	}
}

// WithBaseURL overrides the API prefix. Intended for tests and proxies.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHost attaches a host adapter so that bot id and counts can be derived
// instead of supplied on every call.
func WithHost(host Host) Option {
	return func(c *Client) {
		c.host = host
	}
}

// WithRateLimit caps outgoing requests at n per interval. Requests beyond
// the cap block until a slot frees up.
func WithRateLimit(n int, per time.Duration) Option {
	return func(c *Client) {
		c.limiter = rate.New(n, per)
	}
}
