package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"shelfsync/internal/ipc"
	"shelfsync/internal/progress"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show details for a tracked book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.Describe(args[0])
				if err != nil {
					return err
				}
				renderBookDetail(cmd.OutOrStdout(), resp.Book)
				return nil
			})
		},
	}
}

func renderBookDetail(out io.Writer, book ipc.Book) {
	colorize := shouldColorize(out)

	for _, line := range renderSectionHeader(book.Title, colorize) {
		fmt.Fprintln(out, line)
	}
	fmt.Fprintf(out, "  ID:      %s\n", book.ID)
	if book.Author != "" {
		fmt.Fprintf(out, "  Author:  %s\n", book.Author)
	}
	if book.CoverURL != "" {
		fmt.Fprintf(out, "  Cover:   %s\n", book.CoverURL)
	}
	fmt.Fprintf(out, "  Updated: %s\n", relativeTimeCell(book.LastUpdated))

	if book.Kindle != nil {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Kindle")
		fmt.Fprintf(out, "    Progress: %s\n", formatPercent(book.Kindle.Progress))
		if book.Kindle.TotalPages > 0 {
			fmt.Fprintf(out, "    Page:     %d of %d\n", book.Kindle.LastPage, book.Kindle.TotalPages)
		}
		if book.Kindle.Chapter != "" {
			fmt.Fprintf(out, "    Chapter:  %s\n", book.Kindle.Chapter)
		}
		fmt.Fprintf(out, "    Synced:   %s\n", relativeTimeCell(book.Kindle.LastSync))
	}

	if book.Audible != nil {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Audible")
		fmt.Fprintf(out, "    Progress: %s\n", formatPercent(book.Audible.Progress))
		if book.Audible.TotalMS > 0 {
			fmt.Fprintf(out, "    Position: %s of %s\n",
				progress.FormatDuration(book.Audible.PositionMS),
				progress.FormatDuration(book.Audible.TotalMS))
		}
		if book.Audible.Chapter != "" {
			fmt.Fprintf(out, "    Chapter:  %s\n", book.Audible.Chapter)
		}
		fmt.Fprintf(out, "    Synced:   %s\n", relativeTimeCell(book.Audible.LastSync))
	}

	if book.Sync != nil {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "  Sync: %s\n", book.Sync.Description)
	}

	if book.Resume != nil {
		if book.Resume.Audible != nil {
			fmt.Fprintf(out, "  Audible resume: %s\n", book.Resume.Audible.Description)
		}
		if book.Resume.Kindle != nil {
			fmt.Fprintf(out, "  Kindle resume:  %s\n", book.Resume.Kindle.Description)
		}
	}
}
