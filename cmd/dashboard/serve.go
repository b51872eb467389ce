package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"crypto_dash/internal/app"
	"crypto_dash/internal/infra"
	"crypto_dash/internal/web"

	"github.com/spf13/cobra"
)

var listenAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Poll quotes and serve the dashboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		// 1. System Bootstrapping
		bootstrap := app.NewBootstrap()
		if err := bootstrap.Initialize(configPath); err != nil {
			return err
		}
		cfg := bootstrap.Config
		if listenAddr != "" {
			cfg.Server.Addr = listenAddr
		}
		infra.PrintBanner(os.Stdout, cfg)

		// 2. Graceful Shutdown Context
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		// 3. Web view registers itself as a render target before the first paint
		server := web.NewServer(cfg.Server.Addr, cfg.App.Version, bootstrap.Dashboard, bootstrap.Embeds, bootstrap.Poller)

		// 4. Widgets + first fetch, then polling
		if err := bootstrap.Run(ctx); err != nil {
			return err
		}
		defer bootstrap.Stop()
		slog.InfoContext(ctx, "✅ Quote poller started", slog.Duration("interval", cfg.RefreshInterval()))

		errCh := make(chan error, 1)
		go func() {
			errCh <- server.Start()
		}()

		slog.InfoContext(ctx, "✨ Dashboard fully operational. Press Ctrl+C to exit.")

		select {
		case <-ctx.Done():
		case err := <-errCh:
			if err != nil {
				return err
			}
		}

		slog.Info("👋 Shutting down gracefully...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVarP(&listenAddr, "addr", "a", "", "Listen address (overrides server.addr)")
	// serve is also the default command
	rootCmd.Flags().AddFlag(serveCmd.Flags().Lookup("addr"))
}
