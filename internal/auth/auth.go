// Package auth resolves the Listcord API token from the configured source.
package auth

import (
	"context"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/listcord/listcord-go/internal/helpers"
	"github.com/pkg/errors"
)

// Supported auth modes.
const (
	ModeToken = "token"
	ModeSSM   = "ssm"
)

// TokenSource yields the API token for client construction.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// Static is a TokenSource wrapping a literal token.
type Static string

// Token implements TokenSource.
func (s Static) Token(_ context.Context) (string, error) {
	return string(s), nil
}

// SSM fetches the token from an AWS SSM parameter, decrypted.
type SSM struct {
	Key    string
	logger *slog.Logger
	client *ssm.Client
}

// NewSSM creates an SSM token source for the given parameter key.
func NewSSM(ctx context.Context, key string, logger *slog.Logger) (*SSM, error) {
	if logger == nil {
		logger = helpers.NewNoopLogger()
	}
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load AWS configuration")
	}
	return &SSM{Key: key, logger: logger, client: ssm.NewFromConfig(cfg)}, nil
}

// Token implements TokenSource.
func (s *SSM) Token(ctx context.Context) (string, error) {
	s.logger.With("key", s.Key).Debug("fetching SSM parameter...")
	resp, err := s.client.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(s.Key),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to load SSM parameter")
	}
	return aws.ToString(resp.Parameter.Value), nil
}

// FromMode returns the TokenSource for the configured auth mode.
func FromMode(ctx context.Context, mode, token, ssmKey string, logger *slog.Logger) (TokenSource, error) {
	switch mode {
	case ModeSSM:
		return NewSSM(ctx, ssmKey, logger)
	case ModeToken, "":
		return Static(token), nil
	default:
		return nil, errors.Errorf("unsupported auth mode: %s", mode)
	}
}
