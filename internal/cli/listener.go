package cli

import (
	"context"
	"log/slog"

	"github.com/listcord/listcord-go/internal/archive"
	"github.com/listcord/listcord-go/internal/config"
	"github.com/listcord/listcord-go/webhook"
	"github.com/pkg/errors"
)

// newListener assembles the webhook listener from the resolved
// configuration, attaching the S3 archiver when enabled.
func newListener(ctx context.Context) (*webhook.Listener, error) {
	opts := []webhook.ListenerOption{
		webhook.WithLogger(logger.With("component", "listener")),
		webhook.WithPath(config.Webhook.Path),
	}
	if config.Webhook.Archive.Enabled {
		archiver, err := archive.NewS3Archiver(config.Webhook.Archive.BucketName,
			archive.WithContext(ctx),
			archive.WithLogger(logger.With("component", "archiver")))
		if err != nil {
			return nil, errors.Wrap(err, "failed to create S3 archiver")
		}
		opts = append(opts, webhook.WithArchiver(archiver))
	}
	return webhook.NewListener(config.Webhook.Secret, opts...), nil
}

func logVote(v webhook.Vote) {
	logger.Info("vote received",
		slog.String("bot", v.BotID),
		slog.String("user", v.UserID),
		slog.Bool("test", v.IsTest()))
}
