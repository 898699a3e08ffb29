package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"shelfsync/internal/ipc"
	"shelfsync/internal/reconcile"
)

func newObserveCommand(ctx *commandContext) *cobra.Command {
	var (
		platform   string
		title      string
		author     string
		progress   float64
		chapter    string
		coverURL   string
		lastPage   int
		totalPages int
		positionMS int64
		totalMS    int64
	)

	cmd := &cobra.Command{
		Use:   "observe",
		Short: "Report a reading or listening observation to the daemon",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := ipc.ObserveRequest{
				Platform:   platform,
				Title:      title,
				Author:     author,
				Chapter:    chapter,
				CoverURL:   coverURL,
				LastPage:   lastPage,
				TotalPages: totalPages,
				PositionMS: positionMS,
				TotalMS:    totalMS,
			}
			if cmd.Flags().Changed("progress") {
				req.Progress = &progress
			}

			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.Observe(req)
				if err != nil {
					return err
				}
				stdout := cmd.OutOrStdout()
				switch resp.Outcome {
				case string(reconcile.OutcomeMerged):
					fmt.Fprintf(stdout, "Matched across platforms: %s\n", resp.Book.Title)
				case string(reconcile.OutcomeCreated):
					fmt.Fprintf(stdout, "Now tracking: %s\n", resp.Book.Title)
				default:
					fmt.Fprintf(stdout, "Progress updated: %s\n", resp.Book.Title)
				}
				fmt.Fprintf(stdout, "ID: %s\n", resp.Book.ID)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&platform, "platform", "", "Observation source: kindle or audible")
	cmd.Flags().StringVar(&title, "title", "", "Book title as reported by the platform")
	cmd.Flags().StringVar(&author, "author", "", "Author as reported by the platform")
	cmd.Flags().Float64Var(&progress, "progress", 0, "Fractional progress between 0 and 1")
	cmd.Flags().StringVar(&chapter, "chapter", "", "Current chapter")
	cmd.Flags().StringVar(&coverURL, "cover-url", "", "Cover image URL")
	cmd.Flags().IntVar(&lastPage, "page", 0, "Current Kindle page")
	cmd.Flags().IntVar(&totalPages, "total-pages", 0, "Total Kindle pages")
	cmd.Flags().Int64Var(&positionMS, "position-ms", 0, "Audible position in milliseconds")
	cmd.Flags().Int64Var(&totalMS, "total-ms", 0, "Audible runtime in milliseconds")
	_ = cmd.MarkFlagRequired("platform")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}
