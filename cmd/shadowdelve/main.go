// Package main is the entry point for shadowdelve.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/samdwyer/shadowdelve/internal/game"
	"github.com/samdwyer/shadowdelve/internal/logger"
	"github.com/samdwyer/shadowdelve/internal/telemetry"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "shadowdelve: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := game.LoadConfig(os.Args[1:])
	if err != nil {
		return err
	}

	out, closeLog, err := openLog(cfg.LogFile)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer closeLog()
	lg := logger.New(out, cfg.LogLevel, cfg.LogFormat)

	ctx := context.Background()

	// Only exports when OTEL_EXPORTER_OTLP_ENDPOINT is set
	telemetry.ApplyHoneycombEnv()
	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		lg.WithError(err).Warn("telemetry setup failed, continuing without tracing")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				lg.WithError(err).Error("telemetry shutdown")
			}
		}()
	}

	g, err := game.New(cfg, lg)
	if err != nil {
		return fmt.Errorf("initialize game: %w", err)
	}

	if err := g.Run(ctx); err != nil {
		lg.WithError(err).Error("game exited with error")
		return err
	}
	return nil
}

// openLog opens path for appending, or discards logs when path is empty.
func openLog(path string) (io.Writer, func(), error) {
	if path == "" {
		return io.Discard, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}
