package main

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	memoSync "memos-graph-sync/internal/sync"
)

var syncFull bool

var syncCmd = &cobra.Command{
	Use:   "sync [--full]",
	Short: "Run one sync and print its summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.close(ctx)

		ctx, cancel := context.WithTimeout(ctx, a.runTimeout)
		defer cancel()

		output, err := a.uc.Run(ctx, memoSync.RunInput{Full: syncFull, Trigger: "cli"})
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(output)
	},
}

func init() {
	syncCmd.Flags().BoolVar(&syncFull, "full", false, "ignore the stored watermark and re-scan every memo")
	rootCmd.AddCommand(syncCmd)
}
