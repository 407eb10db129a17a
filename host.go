package listcord

// Host is the narrow view of the embedding application's bot-framework
// client. The library never introspects framework objects; the application
// supplies an adapter implementing this interface instead.
type Host interface {
	// BotID returns the bot's own user identifier on the platform.
	BotID() string
	// GuildCount returns the current number of guilds (servers).
	GuildCount() int
	// ShardCount returns the shard count, or 0 when the deployment is
	// unsharded or the count is not meaningful.
	ShardCount() int
	// OnReady registers a callback to run once the host connection is
	// ready. Implementations backed by an already-connected client may
	// invoke the callback synchronously.
	OnReady(func())
}

// StaticHost is a Host with fixed values. It is used by the CLI and by any
// embedder that has no live framework client to delegate to. OnReady fires
// immediately.
type StaticHost struct {
	ID     string
	Guilds int
	Shards int
}

// BotID implements Host.
func (s StaticHost) BotID() string { return s.ID }

// GuildCount implements Host.
func (s StaticHost) GuildCount() int { return s.Guilds }

// ShardCount implements Host.
func (s StaticHost) ShardCount() int { return s.Shards }

// OnReady implements Host. A static host is always ready.
func (s StaticHost) OnReady(f func()) { f() }
