package listcord

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNoHost is returned when an operation needs a value derived from
	// the host client (bot id, guild count) and no host adapter was
	// configured.
	ErrNoHost = errors.New("operation requires a host adapter or an explicit argument")
	// ErrMissingID is returned when a query is issued without a resolvable
	// identifier.
	ErrMissingID = errors.New("missing required id argument")
	// ErrIntervalTooShort is returned when an autopost interval below the
	// permitted floor is configured.
	ErrIntervalTooShort = fmt.Errorf("stats interval must be at least %s", MinStatsInterval)
)

// APIError is a non-2xx response from the Listcord API. It carries the full
// response envelope for caller inspection.
type APIError struct {
	Envelope
}

// Error implements the error interface with a "<status> <statusText>"
// message, e.g. "404 Not Found".
func (e *APIError) Error() string {
	return fmt.Sprintf("%d %s", e.Status, e.StatusText)
}

func newAPIError(env *Envelope) *APIError {
	if env.StatusText == "" {
		env.StatusText = http.StatusText(env.Status)
	}
	return &APIError{Envelope: *env}
}
