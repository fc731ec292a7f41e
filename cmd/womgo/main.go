// Command womgo is a small diagnostic CLI around the client. It looks
// up a player by username and prints the outcome, which is handy for
// checking connectivity and api key setup.
//
//	WOMGO_API_KEY=... womgo jonxslays
package main

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"syscall"

	"github.com/osrstools/womgo"
	"github.com/osrstools/womgo/config"
	"github.com/osrstools/womgo/pkg/logger"
	"github.com/osrstools/womgo/pkg/metrics"
)

func main() {
	// Initialize logging
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	defer func() {
		if err := logger.Sync(); err != nil {
			os.Stderr.WriteString("failed to sync logger: " + err.Error() + "\n")
		}
	}()

	loggerInstance := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if len(os.Args) < 2 {
		os.Stderr.WriteString("usage: womgo <username>\n")
		os.Exit(2)
	}
	username := os.Args[1]

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		loggerInstance.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	client := womgo.FromConfig(cfg,
		womgo.WithLogger(loggerInstance),
		womgo.WithMetrics(metrics.NewManager()),
	)

	if err := client.Start(ctx); err != nil {
		loggerInstance.Error(ctx, "failed to start client", logger.Error(err))
		return
	}
	defer func() {
		if err := client.Close(ctx); err != nil {
			loggerInstance.Error(ctx, "failed to close client", logger.Error(err))
		}
	}()

	res := client.Players().GetDetails(ctx, username)

	out, err := json.MarshalIndent(res.Diagnostic(), "", "  ")
	if err != nil {
		loggerInstance.Error(ctx, "failed to render outcome", logger.Error(err))
		return
	}

	os.Stdout.Write(append(out, '\n'))

	if res.IsErr() {
		os.Exit(1)
	}
}
