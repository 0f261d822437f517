package cli

import (
	"net/url"

	"github.com/spf13/cobra"
)

func newPlayersCmd() *cobra.Command {
	var positions []string
	var search string

	cmd := &cobra.Command{
		Use:   "players",
		Short: "List ranked players",
		RunE: func(cmd *cobra.Command, args []string) error {
			query := url.Values{}
			for _, pos := range positions {
				query.Add("position", pos)
			}
			if search != "" {
				query.Set("q", search)
			}

			path := "/api/v1/players"
			if len(query) > 0 {
				path += "?" + query.Encode()
			}

			var result Players
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&positions, "position", nil, "Filter by position (repeatable): PG, SG, SF, PF, C")
	cmd.Flags().StringVar(&search, "search", "", "Case-insensitive name search")

	return cmd
}
