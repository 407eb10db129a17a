package listcord

import (
	"context"
	"fmt"
	"net/http"
)

// BotInfo is the public listing record for a bot.
type BotInfo struct {
	ID            string   `json:"id"`
	Username      string   `json:"username"`
	Discriminator string   `json:"discriminator,omitempty"`
	Avatar        string   `json:"avatar,omitempty"`
	Prefix        string   `json:"prefix,omitempty"`
	Library       string   `json:"library,omitempty"`
	ShortDesc     string   `json:"short_description,omitempty"`
	LongDesc      string   `json:"long_description,omitempty"`
	Tags          []string `json:"tags,omitempty"`
	Website       string   `json:"website,omitempty"`
	SupportServer string   `json:"support_server,omitempty"`
	Owners        []string `json:"owners,omitempty"`
	Votes         int      `json:"votes"`
	ServerCount   int      `json:"server_count"`
	ShardCount    int      `json:"shard_count,omitempty"`
	Certified     bool     `json:"certified"`
}

// UserInfo is the public record for a listed user.
type UserInfo struct {
	ID            string   `json:"id"`
	Username      string   `json:"username"`
	Discriminator string   `json:"discriminator,omitempty"`
	Avatar        string   `json:"avatar,omitempty"`
	Bio           string   `json:"bio,omitempty"`
	Website       string   `json:"website,omitempty"`
	Bots          []string `json:"bots,omitempty"`
}

// GetBot fetches a bot's listing. An empty id falls back to the host
// adapter's own bot id; with neither available ErrMissingID is returned.
func (c *Client) GetBot(ctx context.Context, id string) (*BotInfo, error) {
	if id == "" && c.host != nil {
		id = c.host.BotID()
	}
	if id == "" {
		return nil, ErrMissingID
	}
	env, err := c.request(ctx, http.MethodGet, fmt.Sprintf("bots/%s", id), nil)
	if err != nil {
		return nil, err
	}
	var bot BotInfo
	if err := env.Decode(&bot); err != nil {
		return nil, err
	}
	return &bot, nil
}

// GetUser fetches a user's listing. The id is mandatory.
func (c *Client) GetUser(ctx context.Context, id string) (*UserInfo, error) {
	if id == "" {
		return nil, ErrMissingID
	}
	env, err := c.request(ctx, http.MethodGet, fmt.Sprintf("users/%s", id), nil)
	if err != nil {
		return nil, err
	}
	var user UserInfo
	if err := env.Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

// HasVoted reports whether the given user has voted for this bot. The bot
// id is derived from the host adapter; userID is mandatory. Any truthy
// "voted" field counts as a vote, an absent field does not.
func (c *Client) HasVoted(ctx context.Context, userID string) (bool, error) {
	if userID == "" {
		return false, ErrMissingID
	}
	if c.host == nil || c.host.BotID() == "" {
		return false, ErrNoHost
	}
	env, err := c.request(ctx, http.MethodGet,
		fmt.Sprintf("bots/%s/voted", c.host.BotID()),
		map[string]any{"userId": userID})
	if err != nil {
		return false, err
	}
	fields, _ := env.Body.(map[string]any)
	return truthy(fields["voted"]), nil
}

// truthy applies JSON truthiness: false, 0, "", null and absence are false,
// everything else is true.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case float64:
		return t != 0
	case string:
		return t != ""
	default:
		return true
	}
}
