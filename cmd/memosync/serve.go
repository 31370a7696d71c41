package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"memos-graph-sync/internal/httpserver"
	syncHTTP "memos-graph-sync/internal/sync/delivery/http"
	"memos-graph-sync/internal/sync/scheduler"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API, the Memos webhook and background sync",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.close(ctx)

		a.l.Info(ctx, "Starting memosync...")

		// Background sync
		sched := scheduler.New(a.l, a.uc, scheduler.Interval(a.cfg.Sync.BackgroundSync), a.runTimeout)
		if err := sched.Start(ctx); err != nil {
			return err
		}
		defer sched.Stop()

		// HTTP Server
		handler := syncHTTP.New(a.l, a.uc, a.store, syncHTTP.Config{
			WebhookSecret:   a.cfg.Webhook.Secret,
			RateLimitPerMin: a.cfg.Webhook.RateLimitPerMin,
		})
		srv, err := httpserver.New(a.l, httpserver.Config{
			Logger:         a.l,
			Port:           a.cfg.HTTPServer.Port,
			Mode:           a.cfg.HTTPServer.Mode,
			Environment:    a.cfg.Environment.Name,
			SyncHandler:    handler,
			WebhookEnabled: a.cfg.Webhook.Enabled,
			Ready:          a.ready,
		})
		if err != nil {
			return err
		}

		if err := srv.Run(ctx); err != nil {
			a.l.Errorf(ctx, "Failed to run server: %v", err)
			return err
		}

		a.l.Info(context.Background(), "Server stopped gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
