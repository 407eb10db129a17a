package listcord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Envelope is the normalized wrapper around one API response.
type Envelope struct {
	// Status is the HTTP status code.
	Status int
	// StatusText is the HTTP status text, e.g. "Not Found".
	StatusText string
	// OK reports whether Status is in [200,300).
	OK bool
	// Headers are the raw response headers.
	Headers http.Header
	// Raw is the response body as text.
	Raw string
	// Body is the JSON-decoded body when the response content-type
	// indicates JSON, otherwise the same string as Raw.
	Body any
}

// Decode unmarshals the raw response body into v.
func (e *Envelope) Decode(v any) error {
	return json.Unmarshal([]byte(e.Raw), v)
}

var requestDurations = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "listcord_request_duration_seconds",
	Help:    "A histogram of Listcord API response times by status code.",
	Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5, 10},
}, []string{"code"})

// request performs a single API call. GET data is serialized as a query
// string, POST data as a JSON body. No retries are attempted and transport
// failures surface with their cause intact.
func (c *Client) request(ctx context.Context, method, path string, data map[string]any) (*Envelope, error) {
	target := c.baseURL + "/" + strings.TrimLeft(path, "/")

	var body io.Reader
	switch method {
	case http.MethodGet:
		if len(data) > 0 {
			query := url.Values{}
			for k, v := range data {
				query.Set(k, fmt.Sprint(v))
			}
			target += "?" + query.Encode()
		}
	case http.MethodPost:
		if data != nil {
			payload, err := json.Marshal(data)
			if err != nil {
				return nil, errors.Wrap(err, "failed to marshal request payload")
			}
			body = bytes.NewReader(payload)
		}
	default:
		return nil, fmt.Errorf("unsupported method: %s", method)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", c.token)
	} else {
		c.logger.Warn("sending unauthenticated request", slog.String("path", path))
	}

	if c.limiter != nil {
		c.limiter.Wait()
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "request failed")
	}
	defer resp.Body.Close()
	requestDurations.WithLabelValues(fmt.Sprintf("%d", resp.StatusCode)).Observe(time.Since(start).Seconds())

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read response body")
	}

	env := &Envelope{
		Status:     resp.StatusCode,
		StatusText: http.StatusText(resp.StatusCode),
		OK:         resp.StatusCode >= 200 && resp.StatusCode < 300,
		Headers:    resp.Header,
		Raw:        string(raw),
		Body:       string(raw),
	}
	if strings.Contains(resp.Header.Get("Content-Type"), "application/json") {
		var parsed any
		if err := json.Unmarshal(raw, &parsed); err == nil {
			env.Body = parsed
		}
	}

	c.logger.Debug("request completed",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", env.Status))

	if !env.OK {
		return env, newAPIError(env)
	}
	return env, nil
}
