package cli

import (
	"context"
	"net/http"

	listcord "github.com/listcord/listcord-go"
	"github.com/listcord/listcord-go/internal/auth"
	"github.com/listcord/listcord-go/internal/config"
	"github.com/pkg/errors"
)

// newClient builds a library client from the resolved configuration. The
// host adapter is a StaticHost fed from flags, so derived-argument calls
// work the same way they would inside a bot process.
func newClient(ctx context.Context) (*listcord.Client, error) {
	source, err := auth.FromMode(ctx, config.API.AuthMode, config.API.Token, config.API.SSMKey,
		logger.With("component", "auth"))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create token source")
	}
	token, err := source.Token(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve API token")
	}

	opts := []listcord.Option{
		listcord.WithLogger(logger.With("component", "client")),
		listcord.WithBaseURL(config.API.BaseURL),
		listcord.WithHTTPClient(&http.Client{Timeout: config.API.Timeout}),
	}
	if config.Stats.BotID != "" {
		opts = append(opts, listcord.WithHost(listcord.StaticHost{
			ID:     config.Stats.BotID,
			Guilds: config.Stats.ServerCount,
			Shards: config.Stats.ShardCount,
		}))
	}
	return listcord.New(token, opts...), nil
}
