package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/SmartSuiteFoundry/consultant-onboarding/cmd"
	"github.com/SmartSuiteFoundry/consultant-onboarding/pkg/logger"
)

func main() {
	// The logger must exist before cobra parses flags, so --debug is pre-parsed here.
	var debug bool
	for _, arg := range os.Args[1:] {
		if arg == "--debug" {
			debug = true
			break
		}
	}

	logger.Init(debug)
	slog.Debug("Application starting", "debug_mode", debug)

	// Cancelled on Ctrl+C so batch runs can save progress.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd.ExecuteContext(ctx)

	slog.Debug("Application shutting down")
}
