package telemetry

import (
	"log/slog"
	"os"
	"strings"
)

// SetupLogger creates the structured logger used by the CLI. Diagnostics
// go to stderr so results on stdout stay machine-readable.
func SetupLogger(level string) *slog.Logger {
	var logLevel slog.Level

	switch strings.ToLower(level) {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn", "warning":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelWarn
	}

	opts := &slog.HandlerOptions{
		Level:     logLevel,
		AddSource: logLevel == slog.LevelDebug,
	}

	return slog.New(slog.NewJSONHandler(os.Stderr, opts))
}
