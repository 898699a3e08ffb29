package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"shelfsync/internal/ipc"
)

func newRemoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Stop tracking a book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.Remove(args[0])
				if err != nil {
					return err
				}
				stdout := cmd.OutOrStdout()
				if resp.Removed {
					fmt.Fprintf(stdout, "Removed %s\n", args[0])
				} else {
					fmt.Fprintf(stdout, "No book with id %s\n", args[0])
				}
				return nil
			})
		},
	}
}
