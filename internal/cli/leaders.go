package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLeadersCmd() *cobra.Command {
	leadersCmd := &cobra.Command{
		Use:   "leaders",
		Short: "Leaderboard operations",
	}

	leadersCmd.AddCommand(newLeadersWinsCmd())
	leadersCmd.AddCommand(newLeadersStreaksCmd())
	leadersCmd.AddCommand(newLeadersRefreshCmd())

	return leadersCmd
}

func newLeadersWinsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "wins",
		Short: "Show the top players by total wins",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Leaderboard

			if err := client.Get("/api/v1/leaders/wins", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newLeadersStreaksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "streaks",
		Short: "Show the top players by longest win streak",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Leaderboard

			if err := client.Get("/api/v1/leaders/streaks", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newLeadersRefreshCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Rebuild both leaderboards from the shard stores",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Post("/api/v1/leaders/refresh", nil, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Leaderboards refreshed")
			return nil
		},
	}
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <player-id>",
		Short: "Show aggregate stats for a player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result PlayerStats

			path := fmt.Sprintf("/api/v1/players/%s/stats", args[0])
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
