// Package listcord is a client library for the Listcord bot-listing API.
// It posts bot statistics, reads bot and user information, checks votes and
// optionally runs a stats autoposter tied to a host application's ready
// signal. The inbound vote webhook listener lives in the webhook subpackage.
package listcord

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/beefsack/go-rate"
	"github.com/listcord/listcord-go/internal/helpers"
)

// DefaultBaseURL is the versioned API prefix of the Listcord service.
const DefaultBaseURL = "https://listcord.gg/api/v1"

const defaultHTTPTimeout = 10 * time.Second

// Client is the handle for one bot's relationship with the Listcord API.
// Configuration is fixed at construction; a Client is safe for concurrent
// use and individual requests share no mutable state.
type Client struct {
	token   string
	baseURL string
	http    *http.Client
	logger  *slog.Logger
	host    Host
	limiter *rate.RateLimiter
}

// New creates a Client for the given API token. A missing token is not
// fatal: requests are sent without an authorization header and will most
// likely be rejected remotely, so a warning is logged instead.
func New(token string, opts ...Option) *Client {
	_inst := &Client{
		token:   token,
		baseURL: DefaultBaseURL,
	}
	for _, opt := range opts {
		opt(_inst)
	}
	if _inst.logger == nil {
		_inst.logger = helpers.NewNoopLogger()
	}
	if _inst.http == nil {
		_inst.http = &http.Client{Timeout: defaultHTTPTimeout}
	}
	if _inst.token == "" {
		_inst.logger.Warn("no API token provided, requests will be unauthenticated")
	}
	return _inst
}

// Host returns the configured host adapter, or nil when running in
// request-only mode.
func (c *Client) Host() Host {
	return c.host
}
