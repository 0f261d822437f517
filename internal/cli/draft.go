package cli

import (
	"net/url"

	"github.com/spf13/cobra"
)

func newDraftCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "draft",
		Short: "Draft tracking commands",
	}

	cmd.AddCommand(newDraftListCmd())
	cmd.AddCommand(newDraftAddCmd())
	cmd.AddCommand(newDraftRemoveCmd())
	cmd.AddCommand(newDraftClearCmd())

	return cmd
}

func newDraftListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List drafted players",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Draft
			if err := client.Get("/api/v1/draft", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newDraftAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add NAME",
		Short: "Mark a player as drafted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Draft
			if err := client.Put("/api/v1/draft/"+url.PathEscape(args[0]), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newDraftRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove NAME",
		Short: "Unmark a drafted player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Draft
			if err := client.Delete("/api/v1/draft/"+url.PathEscape(args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newDraftClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear all drafted players",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete("/api/v1/draft", nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Draft cleared")
			return nil
		},
	}
}
