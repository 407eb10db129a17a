// Package runtime bridges the webhook listener to the supported execution
// modes: a standalone HTTP service and AWS Lambda behind the usual proxy
// payload types.
package runtime

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/listcord/listcord-go/internal/helpers"
	"github.com/listcord/listcord-go/webhook"
)

// Supported lambda payload types.
const (
	PayloadAPIGatewayV1 = "api-gateway-v1"
	PayloadAPIGatewayV2 = "api-gateway-v2"
	PayloadLambdaURL    = "lambda-url"
)

// Option defines a function type used to configure a Runtime.
type Option func(*Runtime)

// WithLogger sets a custom slog.Logger for the Runtime.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runtime) {
		r.logger = logger
	}
}

// WithPayloadType sets the lambda payload type to expect and produce.
func WithPayloadType(payloadType string) Option {
	return func(r *Runtime) {
		r.payloadType = payloadType
	}
}

// Runtime serves a webhook.Listener in either execution mode.
type Runtime struct {
	*webhook.Listener
	logger      *slog.Logger
	payloadType string
}

// NewRuntime creates a new runtime instance around the given listener.
func NewRuntime(listener *webhook.Listener, opts ...Option) *Runtime {
	_inst := &Runtime{Listener: listener, payloadType: PayloadAPIGatewayV2}
	for _, opt := range opts {
		opt(_inst)
	}
	if _inst.logger == nil {
		_inst.logger = helpers.NewNoopLogger()
	}
	return _inst
}

// HandleEvent is the Lambda handler for the runtime.
func (r *Runtime) HandleEvent(_ context.Context, req events.APIGatewayV2HTTPRequest) (response any, err error) {
	r.logger.Info("received API Gateway request")

	// Lower-case incoming headers for compatibility purposes
	lch := make(map[string]string)
	for k, v := range req.Headers {
		lch[strings.ToLower(k)] = v
	}

	result, err := r.Listener.Process([]byte(req.Body), lch)

	switch r.payloadType {
	case PayloadAPIGatewayV1:
		return events.APIGatewayProxyResponse{
			Body:       result.Body,
			StatusCode: result.StatusCode,
		}, err
	case PayloadAPIGatewayV2:
		return events.APIGatewayV2HTTPResponse{
			Body:       result.Body,
			StatusCode: result.StatusCode,
		}, err
	case PayloadLambdaURL:
		return events.LambdaFunctionURLResponse{
			Body:       result.Body,
			StatusCode: result.StatusCode,
		}, err
	default:
		return nil, fmt.Errorf("unsupported lambda payload type: %s", r.payloadType)
	}
}

// ServeHTTP is the HTTP handler for the runtime.
func (r *Runtime) ServeHTTP(resp http.ResponseWriter, req *http.Request) {
	switch req.Method {
	case http.MethodPost:
		break
	default:
		r.logger.Debug("rejecting HTTP request...", slog.Any("requestor", req.RemoteAddr), "reason", "method not allowed", slog.Any("method", req.Method))
		webhook.RespondHTTP(webhook.Response{StatusCode: http.StatusMethodNotAllowed}, nil, resp)
		return
	}

	r.logger.Debug("received HTTP request...", slog.Any("requestor", req.RemoteAddr), slog.Any("method", req.Method), slog.Any("path", req.URL.Path))
	headers := make(map[string]string)
	for k, v := range req.Header {
		headers[strings.ToLower(k)] = v[0]
	}

	body, err := io.ReadAll(req.Body)
	if err != nil {
		r.logger.Error("failed to read request body", slog.Any("error", err))
		webhook.RespondHTTP(webhook.Response{StatusCode: http.StatusInternalServerError}, err, resp)
		return
	}
	result, err := r.Listener.Process(body, headers)
	webhook.RespondHTTP(result, err, resp)
}
