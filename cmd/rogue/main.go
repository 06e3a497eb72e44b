// Package main is the entry point for rogue.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/samdwyer/rogue/internal/game"
	"github.com/samdwyer/rogue/internal/gamedata"
	"github.com/samdwyer/rogue/internal/telemetry"
	"github.com/samdwyer/rogue/internal/ui"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx)
	stop()
	if err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
}

// run builds and plays one session. Deferred cleanup always runs before it
// returns, including telemetry shutdown.
func run(ctx context.Context) error {
	cfg, err := game.ConfigFromEnv()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, closeLog, err := newLogger(os.Getenv("ROGUE_LOG_FILE"))
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer closeLog()

	if telemetryEnabled() {
		setupOTelEnv()
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			log.Printf("Warning: telemetry setup failed: %v", err)
		} else {
			defer func() {
				// ctx may already be cancelled by a signal.
				if err := shutdown(context.WithoutCancel(ctx)); err != nil {
					logger.Error("telemetry shutdown", "err", err)
				}
			}()
		}
	}

	session, err := game.LoadSession(ctx)
	if err != nil {
		return fmt.Errorf("build session: %w", err)
	}
	palette, err := gamedata.LoadPalette()
	if err != nil {
		return fmt.Errorf("load palette: %w", err)
	}

	screen, err := ui.NewScreen(cfg.Title)
	if err != nil {
		return fmt.Errorf("initialize screen: %w", err)
	}
	defer screen.Close()

	g, err := game.New(cfg, screen, session, palette, logger)
	if err != nil {
		return fmt.Errorf("initialize game: %w", err)
	}

	return ignoreShutdown(g.Run(ctx))
}

// ignoreShutdown treats a loop stopped by signal as a clean exit.
func ignoreShutdown(err error) error {
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// newLogger writes text logs to path, or discards them when path is empty.
// The terminal belongs to the screen, so logs never go to stderr.
func newLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{
		Level: logLevel(os.Getenv("ROGUE_LOG_LEVEL")),
	})), func() { f.Close() }, nil
}

func logLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// telemetryEnabled reports whether tracing should be exported.
func telemetryEnabled() bool {
	switch os.Getenv("ROGUE_TELEMETRY") {
	case "off", "false", "0":
		return false
	}
	return os.Getenv("ROGUE_OTLP_ENDPOINT") != "" || os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") != ""
}

// setupOTelEnv maps our env vars onto the standard OTEL exporter variables.
func setupOTelEnv() {
	if endpoint := os.Getenv("ROGUE_OTLP_ENDPOINT"); endpoint != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", endpoint)
	}
	if headers := os.Getenv("ROGUE_OTLP_HEADERS"); headers != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS", headers)
	}
}
