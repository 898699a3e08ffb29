package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"shelfsync/internal/daemonrun"
	"shelfsync/internal/ipc"
)

func newDaemonCommand(ctx *commandContext) *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:   "daemon",
		Short: "Run the shelfsync daemon in the foreground",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			return daemonrun.Run(cmd.Context(), cfg, daemonrun.Options{LogLevel: logLevel})
		},
	}

	cmd.Flags().StringVar(&logLevel, "log-level", "", "Override configured log level (debug, info, warn, error)")
	return cmd
}

func newStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show daemon and library status",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.Status()
				if err != nil {
					return err
				}
				stdout := cmd.OutOrStdout()
				colorize := shouldColorize(stdout)

				for _, line := range renderSectionHeader("Daemon", colorize) {
					fmt.Fprintln(stdout, line)
				}
				fmt.Fprintf(stdout, "  Running:  %s\n", yesNo(resp.Running))
				if resp.PID > 0 {
					fmt.Fprintf(stdout, "  PID:      %d\n", resp.PID)
				}
				if resp.StartedAt != "" {
					fmt.Fprintf(stdout, "  Started:  %s\n", relativeTimeCell(resp.StartedAt))
				}
				fmt.Fprintf(stdout, "  Database: %s\n", resp.DatabasePath)
				fmt.Fprintf(stdout, "  Lock:     %s\n", resp.LockPath)
				fmt.Fprintln(stdout)

				for _, line := range renderSectionHeader("Library", colorize) {
					fmt.Fprintln(stdout, line)
				}
				rows := [][]string{
					{"Total", strconv.Itoa(resp.Library.Total)},
					{"Kindle only", strconv.Itoa(resp.Library.KindleOnly)},
					{"Audible only", strconv.Itoa(resp.Library.AudibleOnly)},
					{"Matched", strconv.Itoa(resp.Library.Matched)},
				}
				fmt.Fprintln(stdout, renderTable([]string{"Coverage", "Count"}, rows, []columnAlignment{alignLeft, alignRight}))
				return nil
			})
		},
	}
}

func newStopCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stop the shelfsync daemon",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.Stop()
				if err != nil {
					return err
				}
				stdout := cmd.OutOrStdout()
				if resp.Stopped {
					fmt.Fprintln(stdout, "Daemon stopped")
				} else {
					fmt.Fprintln(stdout, "Stop request sent")
				}
				return nil
			})
		},
	}
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
