package cli

import (
	"net"
	"net/http"

	"github.com/listcord/listcord-go/internal/config"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

func cmdServe() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "serve",
		Aliases: []string{"s", "listen", "server"},
		Short:   "Run the vote webhook listener",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger = logger.With("mode", "serve")

			listener, err := newListener(cmd.Context())
			if err != nil {
				return err
			}
			listener.OnVote(logVote)

			if config.Webhook.MetricsPort != "" {
				m := http.NewServeMux()
				m.Handle("/metrics", promhttp.Handler())
				go func() {
					_ = http.ListenAndServe(net.JoinHostPort(config.Webhook.Addr, config.Webhook.MetricsPort), m)
				}()
			}

			s := &http.Server{
				Handler:      listener.Router(),
				Addr:         net.JoinHostPort(config.Webhook.Addr, config.Webhook.Port),
				WriteTimeout: config.Webhook.Timeout,
				ReadTimeout:  config.Webhook.Timeout,
				IdleTimeout:  config.Webhook.Timeout,
			}

			logger.Info("serving...", "address", s.Addr, "path", listener.Path())
			return s.ListenAndServe()
		},
	}

	bindEnvMap(cmd, serveEnvMapString)
	bindEnvMap(cmd, serveEnvMapDuration)

	return cmd
}
