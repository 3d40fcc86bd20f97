package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/chatterd/chatterd/internal/api"
	"github.com/chatterd/chatterd/internal/auth"
	"github.com/chatterd/chatterd/internal/bot"
	"github.com/chatterd/chatterd/internal/config"
)

// Server timeout configuration.
const (
	readHeaderTimeout = 10 * time.Second
	readTimeout       = 30 * time.Second
	writeTimeout      = 30 * time.Second
	idleTimeout       = 2 * time.Minute
	shutdownTimeout   = 10 * time.Second
)

// runServe wires the components and runs the HTTP server until SIGINT or
// SIGTERM, then shuts down gracefully.
func runServe(cfg *config.Config, logger *slog.Logger) error {
	if cfg.IsDefaultSecret() {
		logger.Warn("using the built-in development signing secret; set CHATTERD_SECRET_KEY before deploying")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	store := auth.NewStore(auth.DefaultRecords()...)
	codec := auth.NewCodec([]byte(cfg.SecretKey), cfg.TokenTTL, time.Now)
	sessions := auth.NewService(store, codec)
	responder := bot.New(time.Now)

	apiServer, err := api.NewServer(api.ServerConfig{
		Logger:      logger,
		Sessions:    sessions,
		Codec:       codec,
		Responder:   responder,
		CORSOrigins: cfg.CORSOrigins,
	})
	if err != nil {
		return fmt.Errorf("creating API server: %w", err)
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           apiServer.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}

	logger.Info("HTTP server ready",
		"addr", cfg.Addr(),
		"api", "/api/*",
		"token_ttl", cfg.TokenTTL,
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down HTTP server")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down server: %w", err)
		}
		<-errCh
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("HTTP server: %w", err)
	}
}
