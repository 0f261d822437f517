package cli

import (
	"github.com/spf13/cobra"
)

func newSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show dataset summary statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Summary
			if err := client.Get("/api/v1/summary", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
