package listcord

import (
	"context"
	"fmt"
	"net/http"
)

// Stats is the statistics payload posted to the API. ShardCount is omitted
// from the wire format when zero, matching the contract that a shard count
// is only sent when it is meaningful.
type Stats struct {
	// BotID overrides the bot identifier; when empty the host adapter's
	// BotID is used.
	BotID string `json:"-"`
	// ServerCount is the number of guilds the bot is in.
	ServerCount int `json:"server_count"`
	// ShardCount is the number of shards, 0 when unsharded.
	ShardCount int `json:"shard_count,omitempty"`
}

// PostStats submits bot statistics. A nil payload derives the counts from
// the configured host adapter and fails with ErrNoHost when none is present.
// The returned envelope carries the parsed response body.
func (c *Client) PostStats(ctx context.Context, stats *Stats) (*Envelope, error) {
	if stats == nil {
		if c.host == nil {
			return nil, ErrNoHost
		}
		stats = &Stats{
			ServerCount: c.host.GuildCount(),
			ShardCount:  c.host.ShardCount(),
		}
	}

	botID := stats.BotID
	if botID == "" {
		if c.host == nil {
			return nil, ErrNoHost
		}
		botID = c.host.BotID()
	}
	if botID == "" {
		return nil, ErrMissingID
	}

	data := map[string]any{"server_count": stats.ServerCount}
	if stats.ShardCount > 0 {
		data["shard_count"] = stats.ShardCount
	}

	return c.request(ctx, http.MethodPost, fmt.Sprintf("bots/%s/stats", botID), data)
}
