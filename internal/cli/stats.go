package cli

import (
	listcord "github.com/listcord/listcord-go"
	"github.com/listcord/listcord-go/internal/config"
	"github.com/spf13/cobra"
)

func cmdStats() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Post bot statistics once",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newClient(cmd.Context())
			if err != nil {
				return err
			}
			env, err := client.PostStats(cmd.Context(), nil)
			if err != nil {
				return err
			}
			logger.Info("stats posted",
				"status", env.Status,
				"serverCount", config.Stats.ServerCount,
				"shardCount", config.Stats.ShardCount)
			return nil
		},
	}

	cmd.Flags().IntVar(&config.Stats.ServerCount, "server-count", config.Stats.ServerCount, "the guild count to post")
	cmd.Flags().IntVar(&config.Stats.ShardCount, "shard-count", config.Stats.ShardCount, "the shard count to post, 0 to omit")

	return cmd
}

func cmdAutopost() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "autopost",
		Short: "Post bot statistics on an interval until interrupted",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger = logger.With("mode", "autopost")

			client, err := newClient(cmd.Context())
			if err != nil {
				return err
			}
			poster, err := client.NewAutoPoster(
				listcord.WithInterval(config.Stats.Interval),
				listcord.WithAutoPostLogger(logger.With("component", "autopost")),
			)
			if err != nil {
				return err
			}
			poster.Start(cmd.Context())
			<-cmd.Context().Done()
			return nil
		},
	}

	cmd.Flags().IntVar(&config.Stats.ServerCount, "server-count", config.Stats.ServerCount, "the guild count to post")
	cmd.Flags().IntVar(&config.Stats.ShardCount, "shard-count", config.Stats.ShardCount, "the shard count to post, 0 to omit")

	return cmd
}
