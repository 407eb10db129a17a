package cli

import (
	"encoding/json"
	"fmt"

	"github.com/listcord/listcord-go/internal/config"
	"github.com/spf13/cobra"
)

func cmdBot() *cobra.Command {
	return &cobra.Command{
		Use:   "bot [id]",
		Short: "Fetch a bot's listing (defaults to --bot-id)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd.Context())
			if err != nil {
				return err
			}
			var id string
			if len(args) > 0 {
				id = args[0]
			}
			bot, err := client.GetBot(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(cmd, bot)
		},
	}
}

func cmdUser() *cobra.Command {
	return &cobra.Command{
		Use:   "user <id>",
		Short: "Fetch a user's listing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd.Context())
			if err != nil {
				return err
			}
			user, err := client.GetUser(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, user)
		},
	}
}

func cmdVoted() *cobra.Command {
	return &cobra.Command{
		Use:   "voted <botID> <userID>",
		Short: "Check whether a user has voted for a bot",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			config.Stats.BotID = args[0]
			client, err := newClient(cmd.Context())
			if err != nil {
				return err
			}
			voted, err := client.HasVoted(cmd.Context(), args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), voted)
			return nil
		},
	}
}

func printJSON(cmd *cobra.Command, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
