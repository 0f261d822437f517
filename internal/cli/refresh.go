package cli

import (
	"github.com/spf13/cobra"
)

func newRefreshCmd() *cobra.Command {
	var season int

	cmd := &cobra.Command{
		Use:   "refresh",
		Short: "Refetch player statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]int{}
			if season > 0 {
				req["season"] = season
			}

			var result RefreshResult
			if err := client.Post("/api/v1/refresh", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&season, "season", 0, "Season start year, e.g. 2024 for 2024-25 (default: current)")

	return cmd
}
