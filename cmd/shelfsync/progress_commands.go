package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"shelfsync/internal/ipc"
)

func newSyncStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "sync-status <id>",
		Short: "Show cross-platform drift for a matched book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.Describe(args[0])
				if err != nil {
					return err
				}
				stdout := cmd.OutOrStdout()
				if resp.Book.Sync == nil {
					fmt.Fprintln(stdout, "Sync status requires progress from both platforms")
					return nil
				}
				fmt.Fprintf(stdout, "%s: %s\n", resp.Book.Title, resp.Book.Sync.Description)
				return nil
			})
		},
	}
}

func newResumeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "resume <id>",
		Short: "Suggest where to resume on the other platform",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.Describe(args[0])
				if err != nil {
					return err
				}
				stdout := cmd.OutOrStdout()
				resume := resp.Book.Resume
				if resume == nil || (resume.Audible == nil && resume.Kindle == nil) {
					fmt.Fprintln(stdout, "No resume estimate available; both platforms need progress data")
					return nil
				}
				fmt.Fprintln(stdout, resp.Book.Title)
				if resume.Audible != nil {
					fmt.Fprintf(stdout, "  Audible: %s\n", resume.Audible.Description)
				}
				if resume.Kindle != nil {
					fmt.Fprintf(stdout, "  Kindle:  %s\n", resume.Kindle.Description)
				}
				return nil
			})
		},
	}
}
