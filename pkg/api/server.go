package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/examkit/proctor/pkg/cache"
	"github.com/examkit/proctor/pkg/database"
	"github.com/examkit/proctor/pkg/judge"
	"github.com/examkit/proctor/pkg/problems"
	"github.com/examkit/proctor/pkg/services"
)

// ServerConfig carries the dependencies of the HTTP server. Orchestrator,
// Sessions, Problems, and DB are required; Cache and Worker are optional and
// only widen the health report when present.
type ServerConfig struct {
	Orchestrator *services.Orchestrator
	Sessions     *services.SessionService
	Problems     *problems.Registry
	DB           *database.Client
	Cache        *cache.Client
	Worker       *judge.Worker
	Logger       *slog.Logger
}

// Server is the HTTP and WebSocket front of the evaluation engine.
type Server struct {
	echo   *echo.Echo
	http   *http.Server
	orch   *services.Orchestrator
	stream streamer
	sess   *services.SessionService
	probs  *problems.Registry
	db     *database.Client
	cache  *cache.Client
	worker *judge.Worker
	logger *slog.Logger
}

// NewServer builds the server and registers all routes.
func NewServer(cfg ServerConfig) (*Server, error) {
	if cfg.Orchestrator == nil {
		return nil, fmt.Errorf("orchestrator is required")
	}
	if cfg.Sessions == nil {
		return nil, fmt.Errorf("session service is required")
	}
	if cfg.Problems == nil {
		return nil, fmt.Errorf("problem registry is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		echo:   echo.New(),
		orch:   cfg.Orchestrator,
		stream: cfg.Orchestrator,
		sess:   cfg.Sessions,
		probs:  cfg.Problems,
		db:     cfg.DB,
		cache:  cfg.Cache,
		worker: cfg.Worker,
		logger: logger.With("component", "api"),
	}

	s.echo.Use(securityHeaders())
	s.echo.Use(requestLogger(s.logger))
	s.routes()
	return s, nil
}

func (s *Server) routes() {
	e := s.echo

	e.GET("/healthz", s.healthHandler)
	e.GET("/metrics", s.metricsHandler)

	e.POST("/api/v1/chat/message", s.chatMessageHandler)
	e.POST("/api/v1/chat/submit", s.chatSubmitHandler)
	e.GET("/api/v1/chat/ws", s.chatSocketHandler)

	e.POST("/api/v1/sessions/start", s.startSessionHandler)
	e.POST("/api/v1/sessions/:id/messages", s.sessionMessageHandler)
	e.POST("/api/v1/sessions/:id/submit", s.sessionSubmitHandler)
	e.GET("/api/v1/sessions/:id/state", s.sessionStateHandler)
	e.GET("/api/v1/sessions/:id/scores", s.sessionScoresHandler)
	e.GET("/api/v1/sessions/:id/history", s.sessionHistoryHandler)
	e.GET("/api/v1/sessions/:id/turns", s.sessionTurnsHandler)
	e.GET("/api/v1/sessions/:id/tokens", s.sessionTokensHandler)
	e.DELETE("/api/v1/sessions/:id", s.clearSessionHandler)

	e.GET("/api/v1/problems/:specID", s.problemHandler)
}

// Start runs the HTTP server until it fails or Shutdown is called.
func (s *Server) Start(addr string) error {
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.echo,
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.logger.Info("Starting HTTP server", "addr", addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown stops accepting connections and drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	s.logger.Info("Shutting down HTTP server")
	return s.http.Shutdown(ctx)
}
