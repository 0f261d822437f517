package cli

import (
	"fmt"
	"net/url"
	"os"

	"github.com/spf13/cobra"
)

func newExportCmd() *cobra.Command {
	var format string
	var outFile string
	var positions []string
	var search string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the ranked table as CSV or JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			query := url.Values{}
			query.Set("format", format)
			for _, pos := range positions {
				query.Add("position", pos)
			}
			if search != "" {
				query.Set("q", search)
			}

			body, err := client.GetRaw("/api/v1/export?" + query.Encode())
			if err != nil {
				return err
			}

			if outFile == "" {
				_, err = os.Stdout.Write(body)
				return err
			}

			if err := os.WriteFile(outFile, body, 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", outFile, err)
			}
			fmt.Fprintf(os.Stderr, "Wrote %s\n", outFile)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "csv", "Export format: csv, json")
	cmd.Flags().StringVar(&outFile, "file", "", "Write to file instead of stdout")
	cmd.Flags().StringSliceVar(&positions, "position", nil, "Filter by position (repeatable)")
	cmd.Flags().StringVar(&search, "search", "", "Case-insensitive name search")

	return cmd
}
