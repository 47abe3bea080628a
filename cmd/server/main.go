package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"sportsbase/internal/config"
	"sportsbase/internal/logging"
	"sportsbase/internal/server"
)

const serviceName = "sportsbase"

// appVersion is overridden at build time with -ldflags "-X main.appVersion=...".
var appVersion = "dev"

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}

	cfg := config.Load()
	logger := newLogger(os.Getenv)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logging.Info(logger, "starting dashboard service",
		logging.FieldProvider, cfg.Provider,
		"storage", cfg.Storage.Backend,
	)
	srv := server.New(cfg, logger)
	srv.Run(ctx, stop)
}

func newLogger(getenv func(string) string) *slog.Logger {
	return logging.NewLogger(logging.Config{
		Level:   getenv("LOG_LEVEL"),
		Format:  getenv("LOG_FORMAT"),
		Service: serviceName,
		Version: appVersion,
	})
}
