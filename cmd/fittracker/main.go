package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/sicko7947/fittracker/engine"
	"github.com/sicko7947/fittracker/internal/config"
	"github.com/sicko7947/fittracker/server"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("fittracker", flag.ContinueOnError)
	flags.SetOutput(stderr)
	configPath := flags.String("config", "", "path to YAML config file (optional)")
	serve := flags.Bool("serve", false, "serve the HTTP API instead of printing summaries")
	logLevel := flags.String("log-level", "", "override log level (trace, debug, info, warn, error)")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "fittracker: %v\n", err)
		return 1
	}
	if *logLevel != "" {
		if _, err := zerolog.ParseLevel(*logLevel); err != nil {
			fmt.Fprintf(stderr, "fittracker: invalid -log-level %q: %v\n", *logLevel, err)
			return 2
		}
		cfg.Log.Level = *logLevel
	}

	logger := cfg.NewLogger(stderr)

	if *serve {
		return serveHTTP(cfg, logger)
	}

	eng := engine.NewEngine(
		engine.WithLogger(logger),
		engine.WithConfig(cfg.ProcessConfig()),
	)

	report, err := eng.Run(context.Background(), cfg.PackagesOrSamples())
	for _, line := range report.Messages() {
		fmt.Fprintln(stdout, line)
	}
	if err != nil {
		logger.Error().Err(err).Str("run_id", report.RunID).Msg("Failed to process packages")
		return 1
	}

	return 0
}

func serveHTTP(cfg *config.Config, logger zerolog.Logger) int {
	srv := server.New(cfg.ProcessConfig(), logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Listen(cfg.HTTP.Addr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		logger.Error().Err(err).Msg("Failed to start server")
		return 1
	case <-quit:
	}

	logger.Info().Msg("Shutting down server...")

	if err := srv.Shutdown(5 * time.Second); err != nil {
		logger.Error().Err(err).Msg("Server forced to shutdown")
		return 1
	}

	logger.Info().Msg("Server stopped")
	return 0
}
