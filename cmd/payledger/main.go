package main

import (
	"context"
	"log/slog"
	"os"

	"payledger/internal/buildinfo"
	"payledger/internal/cli"
	"payledger/internal/config"
	"payledger/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	app := cli.NewApp(cfg, logger)

	// An unrecoverable session error (failed login) terminates the process
	// with a non-zero status.
	if err := app.Run(ctx); err != nil {
		logger.Error(ctx, "session terminated", "error", err)
		os.Exit(1)
	}
}
