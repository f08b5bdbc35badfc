package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"eventbot/internal/bot"
	"eventbot/internal/config"
	"eventbot/internal/ops"
	"eventbot/internal/organizer"
	"eventbot/internal/worker"
	"eventbot/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// serveCommand constructs the 'serve' subcommand that runs the Telegram bot,
// the background workers and the operational HTTP endpoint until interrupted.
func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts the Telegram bot, background workers and ops endpoint",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			org := organizer.New(strg, organizer.NewOptions(cfg))
			if err := org.SeedDefaultSettings(ctx); err != nil {
				logger.Fatal(ctx, "could not seed default settings", zap.Error(err))
			}

			tgBot, err := bot.New(ctx, cfg, org)
			if err != nil {
				logger.Fatal(ctx, "could not create telegram bot", zap.Error(err))
			}
			go tgBot.Start()

			riverClient, err := worker.Start(ctx, strg.Pool, org, tgBot, worker.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not start workers", zap.Error(err))
			}

			server := ops.NewServer(strg.Pool, ops.NewOptions(cfg))
			go func() {
				logger.Info(ctx, "starting ops webserver...")
				if err := server.ListenAndServe(); err != nil {
					if !errors.Is(err, http.ErrServerClosed) {
						logger.Error(ctx, "could not start ops webserver", zap.Error(err))
					}
				}
			}()

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			logger.Info(shutdownCtx, "stopping telegram bot...")
			tgBot.Stop()

			logger.Info(shutdownCtx, "stopping workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(shutdownCtx, "could not stop river queue client", zap.Error(err))
			}

			logger.Info(shutdownCtx, "stopping ops webserver...")
			if err := server.Shutdown(shutdownCtx); err != nil {
				logger.Error(shutdownCtx, "could not stop ops webserver", zap.Error(err))
			}
		},
	}

	return cmd
}
