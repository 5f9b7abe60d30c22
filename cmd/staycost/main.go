package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/SscSPs/staycost/internal/cli"
	"github.com/SscSPs/staycost/internal/platform/config"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Logs go to stderr so they never interleave with rendered tables.
	logger := newLogger(cfg, os.Stderr)
	slog.SetDefault(logger)

	root := cli.NewRootCmd(&cli.App{
		Config: cfg,
		Logger: logger,
		In:     os.Stdin,
		Out:    os.Stdout,
	})

	if err := root.ExecuteContext(context.Background()); err != nil {
		logger.Debug("Command failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	if cfg.LogFormat == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}
