// Package cmd contains the chatterd entrypoint: command routing, logger
// bootstrap, and the HTTP serve loop. main.go stays a minimal shim, the way
// standard Go CLI tools structure it.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/chatterd/chatterd/internal/config"
	"github.com/chatterd/chatterd/internal/log"
)

// Version information (injected at build time via ldflags).
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
)

// Execute is the main entry point. The default command serves HTTP;
// version and help short-circuit before any configuration is loaded so they
// work even with an invalid environment.
func Execute() error {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version", "--version", "-v":
			fmt.Printf("chatterd %s (%s)\n", Version, GitCommit)
			return nil
		case "help", "--help", "-h":
			printHelp()
			return nil
		case "serve":
			// fallthrough to the default below
		default:
			printHelp()
			return fmt.Errorf("unknown command %q", os.Args[1])
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	logger := log.New(log.Config{
		Level: log.ParseLevel(cfg.LogLevel),
		JSON:  cfg.LogJSON,
	})
	slog.SetDefault(logger)

	return runServe(cfg, logger)
}

func printHelp() {
	fmt.Print(`chatterd - token-gated chatbot backend

Usage:
  chatterd [serve]   start the HTTP API server (default)
  chatterd version   print version information
  chatterd help      show this help

Configuration is read from ./config.yaml and CHATTERD_* environment
variables (CHATTERD_PORT, CHATTERD_SECRET_KEY, ...).
`)
}
