// Package archive provides best-effort S3 archival of raw webhook payloads
// with context and logging support.
package archive

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go/logging"
	"github.com/listcord/listcord-go/internal/helpers"
	"github.com/pkg/errors"
)

// S3Archiver uploads payloads to an S3 bucket, one object per delivery. An
// empty bucket name turns every call into a no-op.
type S3Archiver struct {
	ctx    context.Context
	logger *slog.Logger

	config   *aws.Config
	s3Client *s3.Client
	bucket   string
}

// Option defines a function type used to configure an S3Archiver instance.
type Option func(*S3Archiver)

// WithLogger sets a custom slog.Logger instance for the archiver to use for logging operations.
func WithLogger(logger *slog.Logger) Option {
	return func(a *S3Archiver) {
		a.logger = logger
	}
}

// WithContext sets a custom context to be used by the archiver for request operations.
func WithContext(ctx context.Context) Option {
	return func(a *S3Archiver) {
		a.ctx = ctx
	}
}

// WithConfig sets a pre-loaded AWS configuration.
func WithConfig(cfg *aws.Config) Option {
	return func(a *S3Archiver) {
		a.config = cfg
	}
}

// NewS3Archiver initializes an S3Archiver for the given bucket, loading the
// default AWS configuration when none is supplied.
func NewS3Archiver(bucket string, opts ...Option) (*S3Archiver, error) {
	_inst := &S3Archiver{bucket: bucket}
	for _, opt := range opts {
		opt(_inst)
	}
	if _inst.logger == nil {
		_inst.logger = helpers.NewNoopLogger()
	}
	if _inst.ctx == nil {
		_inst.ctx = context.Background()
	}
	if _inst.config == nil {
		_inst.logger.Debug("loading default AWS configuration...")
		cfg, err := config.LoadDefaultConfig(_inst.ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load AWS configuration")
		}
		cfg.Logger = newAWSLogger(_inst.logger)
		_inst.config = &cfg
	}
	_inst.s3Client = s3.NewFromConfig(*_inst.config)
	return _inst, nil
}

// Archive uploads a payload under a key formatted as a timestamp and the
// provided ID. It is a no-op when the bucket name is empty.
func (a *S3Archiver) Archive(id string, body []byte) error {
	if a.bucket == "" {
		return nil
	}
	key := fmt.Sprintf("%s.%s", time.Now().UTC().Format(time.RFC3339Nano), id)
	_, err := a.s3Client.PutObject(a.ctx, &s3.PutObjectInput{
		Bucket:      &a.bucket,
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return errors.Wrap(err, "failed to put object to S3")
	}
	return nil
}

type awsLogger struct {
	logger *slog.Logger
}

func newAWSLogger(logger *slog.Logger) *awsLogger {
	return &awsLogger{logger}
}

func (a *awsLogger) Logf(classification logging.Classification, format string, args ...any) {
	a.logger.Debug(fmt.Sprintf("[%v] %s", classification, fmt.Sprintf(format, args...)))
}
