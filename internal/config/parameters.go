// Package config provides a centralized entrypoint for the application parameters.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/creasty/defaults"
	"gopkg.in/yaml.v3"
)

var (
	// Global is a struct that contains the global configuration.
	Global global
	// API is a struct that contains the configuration for the Listcord API client.
	API api
	// Stats is a struct that contains the configuration for stats posting.
	Stats stats
	// Webhook is a struct that contains the configuration for the vote webhook listener.
	Webhook webhookCfg
	// Lambda is a struct that contains the configuration for the lambda mode.
	Lambda lambda
)

type global struct {
	// Logging is a struct that contains the logging configuration.
	Logging struct {
		// Verbosity is the verbosity level of the application. It represents slog levels.
		Verbosity int `yaml:"verbosity,omitempty"`
		// CallerTrace is a flag that enables the caller trace in the logger.
		CallerTrace bool `yaml:"callerTrace,omitempty"`
	} `yaml:"logging,omitempty"`
}

type api struct {
	// Token is the Listcord API token. Ignored when AuthMode is "ssm".
	Token string `yaml:"token,omitempty"`
	// AuthMode selects the token source. Supported values are "token" and "ssm".
	AuthMode string `yaml:"authMode,omitempty" default:"token"`
	// SSMKey is the SSM parameter holding the token when AuthMode is "ssm".
	SSMKey string `yaml:"ssmKey,omitempty"`
	// BaseURL is the API prefix to target.
	BaseURL string `yaml:"baseURL,omitempty" default:"https://listcord.gg/api/v1"`
	// Timeout is the HTTP client timeout.
	Timeout time.Duration `yaml:"timeout,omitempty" default:"10s"`
}

type stats struct {
	// Interval is the autopost period.
	Interval time.Duration `yaml:"interval,omitempty" default:"30m"`
	// BotID is the bot identifier used when no host client is wired in.
	BotID string `yaml:"botID,omitempty"`
	// ServerCount is the guild count posted by the CLI.
	ServerCount int `yaml:"serverCount,omitempty"`
	// ShardCount is the shard count posted by the CLI, 0 to omit.
	ShardCount int `yaml:"shardCount,omitempty"`
}

type webhookCfg struct {
	// Secret is the shared secret expected in the authorization header.
	Secret string `yaml:"secret,omitempty"`
	// Path is the delivery route.
	Path string `yaml:"path,omitempty" default:"/webhook"`
	// Addr is the address to serve on (default all interfaces).
	Addr string `yaml:"addr,omitempty"`
	// Port is the port to serve on.
	Port string `yaml:"port,omitempty" default:"8080"`
	// MetricsPort is the port the prometheus endpoint is served on. Empty disables it.
	MetricsPort string `yaml:"metricsPort,omitempty" default:"9090"`
	// Timeout is the I/O timeout of the HTTP server.
	Timeout time.Duration `yaml:"timeout,omitempty" default:"5s"`
	// Archive is a struct that contains the payload archival configuration.
	Archive struct {
		Enabled    bool   `yaml:"enabled,omitempty"`
		BucketName string `yaml:"bucketName,omitempty"`
	} `yaml:"archive,omitempty"`
}

type lambda struct {
	PayloadType string `yaml:"payloadType,omitempty" default:"api-gateway-v2"`
}

// SetDefaults sets the default values for the configuration.
func SetDefaults() error {
	return errors.Join(
		defaults.Set(&Global),
		defaults.Set(&API),
		defaults.Set(&Stats),
		defaults.Set(&Webhook),
		defaults.Set(&Lambda),
	)
}

// LoadFromFile loads the configuration from a file.
func LoadFromFile(path string) error {
	if len(path) == 0 {
		return nil
	}
	fstat, err := os.Stat(path)
	if err != nil {
		return nil //nolint:nilerr // If the file does not exist, we ignore it.
	}
	if fstat.IsDir() {
		return fmt.Errorf("configuration file %s is a directory", path)
	}
	if !fstat.Mode().IsRegular() {
		return fmt.Errorf("configuration file %s is not a regular file", path)
	}

	content, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("failed to read configuration file %s: %w", path, err)
	}
	type all struct {
		Global  global     `yaml:"global,omitempty"`
		API     api        `yaml:"api,omitempty"`
		Stats   stats      `yaml:"stats,omitempty"`
		Webhook webhookCfg `yaml:"webhook,omitempty"`
		Lambda  lambda     `yaml:"lambda,omitempty"`
	}
	var a all
	if err = yaml.Unmarshal(content, &a); err != nil {
		return fmt.Errorf("failed to unmarshal configuration file %s: %w", path, err)
	}
	Global = a.Global
	API = a.API
	Stats = a.Stats
	Webhook = a.Webhook
	Lambda = a.Lambda

	return nil
}
