package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"shelfsync/internal/ipc"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tracked books",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.List(filter)
				if err != nil {
					return err
				}
				stdout := cmd.OutOrStdout()
				if len(resp.Books) == 0 {
					fmt.Fprintln(stdout, "No books tracked")
					return nil
				}
				rows := make([][]string, 0, len(resp.Books))
				for _, book := range resp.Books {
					rows = append(rows, bookTableRow(book))
				}
				fmt.Fprintln(stdout, renderTable(bookTableHeaders(), rows, bookTableAligns()))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "", "Filter by coverage: kindle, audible, or matched")
	return cmd
}
