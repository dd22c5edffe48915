package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLeaderboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "leaderboard",
		Short: "Leaderboard commands",
	}

	cmd.AddCommand(newLeaderboardTopCmd())
	cmd.AddCommand(newLeaderboardStandingCmd())
	cmd.AddCommand(newLeaderboardStatsCmd())
	cmd.AddCommand(newLeaderboardSubmitCmd())

	return cmd
}

func newLeaderboardTopCmd() *cobra.Command {
	var limit, offset int

	cmd := &cobra.Command{
		Use:   "top",
		Short: "Show the top ranked entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := client.TopEntries(cmd.Context(), limit, offset)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(entries)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum entries to fetch (1-200)")
	cmd.Flags().IntVar(&offset, "offset", 0, "Entries to skip")

	return cmd
}

func newLeaderboardStandingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "standing <name>",
		Short: "Show a player's best ranked entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			standing, err := client.Standing(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(standing)
			return nil
		},
	}
}

func newLeaderboardStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show leaderboard statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := client.Stats(cmd.Context())
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(stats)
			return nil
		},
	}
}

func newLeaderboardSubmitCmd() *cobra.Command {
	var name string
	var score, finishedTime int

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit a game result directly",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				return fmt.Errorf("--name is required")
			}

			entry, err := client.SubmitEntry(cmd.Context(), SubmitRequest{
				Name:         name,
				Score:        score,
				FinishedTime: finishedTime,
			})
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(entry)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Player name (required)")
	cmd.Flags().IntVar(&score, "score", 0, "Final score")
	cmd.Flags().IntVar(&finishedTime, "time", 0, "Completion time in seconds")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}
