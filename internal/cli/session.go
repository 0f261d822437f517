package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Session management commands",
	}

	cmd.AddCommand(newSessionCreateCmd())
	cmd.AddCommand(newSessionDeleteCmd())

	return cmd
}

func newSessionCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create",
		Short: "Create a new anonymous session",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Session

			if err := client.Post("/api/v1/sessions", nil, &result); err != nil {
				return err
			}

			// Save token
			if err := cfg.SaveToken(result.Token); err != nil {
				return fmt.Errorf("failed to save token: %w", err)
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newSessionDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete",
		Short: "Invalidate the current session and its draft",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete("/api/v1/sessions/current", nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Session deleted")
			return nil
		},
	}
}
