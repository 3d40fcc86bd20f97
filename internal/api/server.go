// Package api is the HTTP surface: route wiring, the middleware stack, the
// token gate, and the JSON handlers for login, chat, verify, and health.
package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/chatterd/chatterd/internal/auth"
	"github.com/chatterd/chatterd/internal/bot"
)

// ServerConfig contains the dependencies for creating the API server.
type ServerConfig struct {
	Logger      *slog.Logger
	Sessions    *auth.Service  // Required
	Codec       *auth.Codec    // Required: backs the token gate
	Responder   *bot.Responder // Required
	CORSOrigins []string       // Allowed origins; "*" permits any
	Now         func() time.Time
}

// Server is the JSON API HTTP server.
type Server struct {
	handler http.Handler
}

// NewServer creates a server with all routes configured.
func NewServer(cfg ServerConfig) (*Server, error) {
	if cfg.Sessions == nil {
		return nil, errors.New("session service is required")
	}
	if cfg.Codec == nil {
		return nil, errors.New("token codec is required")
	}
	if cfg.Responder == nil {
		return nil, errors.New("responder is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	lh := &loginHandler{sessions: cfg.Sessions, logger: logger}
	ch := &chatHandler{responder: cfg.Responder, logger: logger, now: now}
	gate := requireToken(cfg.Codec)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/login", lh.login)
	mux.Handle("POST /api/chat", gate(http.HandlerFunc(ch.send)))
	mux.Handle("GET /api/verify", gate(http.HandlerFunc(verify)))
	mux.HandleFunc("GET /api/health", health)

	// Middleware stack (outermost first):
	//   Recovery → RequestID → Logging → CORS → Routes
	// RequestID sits before Logging so request_id is available in log
	// attributes. CORS sits innermost of the three so preflight OPTIONS
	// still gets recovery and logging.
	var handler http.Handler = mux
	handler = corsMiddleware(cfg.CORSOrigins)(handler)
	handler = loggingMiddleware(logger)(handler)
	handler = requestIDMiddleware()(handler)
	handler = recoveryMiddleware(logger)(handler)

	return &Server{handler: handler}, nil
}

// Handler returns the server as an http.Handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}
