package cli

import (
	"time"

	"github.com/listcord/listcord-go/internal/config"
	"github.com/listcord/listcord-go/internal/helpers"
)

var envMapString = map[*string]boundEnvVar[string]{
	&config.API.Token: {
		Name:        "token",
		Description: "The Listcord API token",
		Env:         helpers.Ptr("LISTCORD_TOKEN"),
	},
	&config.API.AuthMode: {
		Name:        "auth-mode",
		Description: "Token source. Supported values are 'token' and 'ssm'",
		Short:       helpers.Ptr("A"),
	},
	&config.API.SSMKey: {
		Name:        "token-ssm-key",
		Description: "The SSM parameter key to use when fetching the API token",
	},
	&config.API.BaseURL: {
		Name:        "base-url",
		Description: "The API prefix to target",
		Hidden:      true,
	},
	&config.Stats.BotID: {
		Name:        "bot-id",
		Description: "The bot identifier used when no host client is wired in",
		Short:       helpers.Ptr("b"),
	},
	&config.Webhook.Secret: {
		Name:        "webhook-secret",
		Description: "The secret expected in the authorization header of incoming vote deliveries",
	},
	&config.Webhook.Archive.BucketName: {
		Name:        "webhook-archive-s3-bucket",
		Description: "The S3 bucket to use when archiving vote payloads",
		Env:         helpers.Ptr("WEBHOOK_ARCHIVE_S3_BUCKET"),
	},
}

var envMapBool = map[*bool]boundEnvVar[bool]{
	&config.Global.Logging.CallerTrace: {
		Name:        "verbosity-caller-trace",
		Description: "Enable caller trace in logs",
		Short:       helpers.Ptr("V"),
	},
	&config.Webhook.Archive.Enabled: {
		Name:        "webhook-archive",
		Description: "Enable S3 archival of vote payloads",
		Env:         helpers.Ptr("WEBHOOK_ARCHIVE"),
	},
}

var envMapCount = map[*int]boundEnvVar[int]{
	&config.Global.Logging.Verbosity: {
		Name:        "verbosity",
		Description: "Increase logger verbosity (default WarnLevel)",
		Short:       helpers.Ptr("v"),
	},
}

var envMapDuration = map[*time.Duration]boundEnvVar[time.Duration]{
	&config.API.Timeout: {
		Name:        "http-timeout",
		Description: "The timeout for API requests",
	},
	&config.Stats.Interval: {
		Name:        "stats-interval",
		Description: "The autopost period (floor 15m)",
		Short:       helpers.Ptr("i"),
	},
}
