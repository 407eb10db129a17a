// Package webhook receives vote notifications from the Listcord service.
// A Listener validates the shared-secret authorization header, decodes the
// vote payload and hands it to registered subscribers; it can be mounted on
// an existing HTTP server via Router or driven directly through Process.
package webhook

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/listcord/listcord-go/internal/helpers"
	"github.com/listcord/listcord-go/internal/validation"
)

// DefaultPath is the route votes are delivered to unless overridden.
const DefaultPath = "/webhook"

// Archiver persists raw webhook payloads. Archival is best-effort: failures
// are logged and never affect the delivery response.
type Archiver interface {
	Archive(id string, body []byte) error
}

// Listener validates and dispatches inbound vote notifications.
type Listener struct {
	secret   *validation.WebhookSecret
	path     string
	logger   *slog.Logger
	archiver Archiver
	onVote   []func(Vote)
}

// NewListener creates a Listener for the given shared secret.
func NewListener(secret string, opts ...ListenerOption) *Listener {
	_inst := &Listener{
		secret: validation.NewWebhookSecret(secret),
		path:   DefaultPath,
	}
	for _, opt := range opts {
		opt(_inst)
	}
	if _inst.logger == nil {
		_inst.logger = helpers.NewNoopLogger()
	}
	return _inst
}

// OnVote registers a callback invoked for every authenticated vote.
func (l *Listener) OnVote(f func(Vote)) {
	l.onVote = append(l.onVote, f)
}

// Path returns the configured delivery route.
func (l *Listener) Path() string {
	return l.path
}

// Process handles one delivery. Header keys must be lower-cased by the
// caller. An unauthorized delivery yields a 401 response and no emission;
// an undecodable payload yields 422.
func (l *Listener) Process(body []byte, headers map[string]string) (Response, error) {
	l.logger.Debug("processing delivery...")

	if err := l.secret.ValidateAuthorization(headers); err != nil {
		l.logger.Warn("rejecting delivery", slog.Any("error", err))
		return Response{Body: "unauthorized", StatusCode: http.StatusUnauthorized}, err
	}

	var vote Vote
	if err := json.Unmarshal(body, &vote); err != nil {
		l.logger.Warn("undecodable payload", slog.Any("error", err))
		return Response{Body: "invalid payload", StatusCode: http.StatusUnprocessableEntity}, err
	}

	if l.archiver != nil {
		if err := l.archiver.Archive("vote", body); err != nil {
			l.logger.Error("failed to archive payload", slog.Any("error", err))
		}
	}

	l.logger.Info("vote received",
		slog.String("bot", vote.BotID),
		slog.String("user", vote.UserID),
		slog.Bool("test", vote.IsTest()))
	for _, f := range l.onVote {
		f(vote)
	}

	return Response{Body: "ok", StatusCode: http.StatusOK}, nil
}

// Router returns a chi router serving the listener on its configured path.
// Only POST is accepted there; everything else falls through to chi's 405.
func (l *Listener) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Post(l.path, l.handleHTTP)
	return r
}

func (l *Listener) handleHTTP(rw http.ResponseWriter, req *http.Request) {
	headers := make(map[string]string)
	for k, v := range req.Header {
		headers[strings.ToLower(k)] = v[0]
	}

	body, err := io.ReadAll(req.Body)
	if err != nil {
		l.logger.Error("failed to read request body", slog.Any("error", err))
		RespondHTTP(Response{StatusCode: http.StatusInternalServerError}, err, rw)
		return
	}

	resp, err := l.Process(body, headers)
	RespondHTTP(resp, err, rw)
}
