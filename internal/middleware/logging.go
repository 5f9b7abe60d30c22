package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// contextKey is the type of keys this package stores in a context.
// Using a custom type prevents collisions.
type contextKey string

const (
	loggerKey    = contextKey("logger")
	startedAtKey = contextKey("startedAt")
)

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// GetLoggerFromCtx retrieves the run-scoped logger from ctx, or nil if none was stored.
func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return nil
	}
	logger, ok := ctx.Value(loggerKey).(*slog.Logger)
	if !ok {
		return nil
	}
	return logger
}

// CommandLogging creates a cobra pre-run hook that injects a run-scoped logger
// into the command context.
func CommandLogging(baseLogger *slog.Logger) func(cmd *cobra.Command, args []string) {
	return func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		// Create a logger enriched with run-specific fields
		runLogger := baseLogger.With(
			slog.String("run_id", uuid.NewString()),
			slog.String("command", cmd.CommandPath()),
		)

		ctx = WithLogger(ctx, runLogger)
		ctx = context.WithValue(ctx, startedAtKey, time.Now())
		cmd.SetContext(ctx)

		runLogger.Debug("Command started", slog.Int("args", len(args)))
	}
}

// LogCommandCompletion is the matching post-run hook; it logs how long the command took.
func LogCommandCompletion(cmd *cobra.Command, _ []string) {
	ctx := cmd.Context()
	logger := GetLoggerFromCtx(ctx)
	if logger == nil {
		return
	}

	attrs := []any{}
	if start, ok := ctx.Value(startedAtKey).(time.Time); ok {
		attrs = append(attrs, slog.Duration("latency", time.Since(start)))
	}
	logger.Info("Command completed", attrs...)
}
