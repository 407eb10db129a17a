package cli

import (
	"time"

	"github.com/listcord/listcord-go/internal/config"
	"github.com/listcord/listcord-go/internal/helpers"
)

var serveEnvMapString = map[*string]boundEnvVar[string]{
	&config.Webhook.Addr: {
		Name:        "webhook-host-addr",
		Description: "The address to serve the listener on (default all interfaces)",
		Short:       helpers.Ptr("H"),
	},
	&config.Webhook.Port: {
		Name:        "webhook-host-port",
		Description: "The port to serve the listener on",
		Short:       helpers.Ptr("p"),
	},
	&config.Webhook.Path: {
		Name:        "webhook-host-path",
		Description: "The path votes are delivered to",
		Short:       helpers.Ptr("P"),
	},
	&config.Webhook.MetricsPort: {
		Name:        "webhook-metrics-port",
		Description: "The port to serve prometheus metrics on. Empty disables the endpoint",
	},
}

var serveEnvMapDuration = map[*time.Duration]boundEnvVar[time.Duration]{
	&config.Webhook.Timeout: {
		Name:        "webhook-io-timeout",
		Description: "The timeout for I/O operations",
		Short:       helpers.Ptr("t"),
	},
}
