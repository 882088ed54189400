// Command docbr validates, formats and generates Brazilian identification
// documents. Run with a bare value to auto-detect its type.
package main

import (
	"log/slog"
	"os"

	"github.com/docbr/docbr/internal/infrastructure/config"
	"github.com/docbr/docbr/internal/infrastructure/telemetry"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := telemetry.SetupLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	if err := newRootCmd(cfg).Execute(); err != nil {
		os.Exit(1)
	}
}
