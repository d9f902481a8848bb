package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/feral-file/ff-identity/internal/api/middleware"
	"github.com/feral-file/ff-identity/internal/api/rest"
	"github.com/feral-file/ff-identity/internal/api/shared/executor"
	"github.com/feral-file/ff-identity/internal/logger"
	"github.com/feral-file/ff-identity/internal/metrics"
	"github.com/feral-file/ff-identity/internal/ratelimit"
)

// Config holds the server configuration
type Config struct {
	Debug        bool
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	Auth         middleware.AuthConfig
	// RateLimiter limits requests per client IP; nil disables limiting
	RateLimiter ratelimit.Limiter
}

// Server wraps the HTTP server
type Server struct {
	config     Config
	executor   executor.Executor
	metrics    *metrics.Metrics
	httpServer *http.Server
}

// New creates a new API server
func New(cfg Config, exec executor.Executor, m *metrics.Metrics) *Server {
	return &Server{
		config:   cfg,
		executor: exec,
		metrics:  m,
	}
}

// Router builds the gin engine with middleware and routes
func (s *Server) Router() (*gin.Engine, error) {
	if s.config.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	auth, err := middleware.NewAuthenticator(s.config.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to configure authentication: %w", err)
	}

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.Metrics(s.metrics))
	router.Use(middleware.SetupCORS())
	router.Use(middleware.RateLimit(s.config.RateLimiter))

	rest.SetupRoutes(router, rest.NewHandler(s.executor), auth, s.metrics.Handler())

	return router, nil
}

// Start builds the router and serves until Shutdown is called
func (s *Server) Start() error {
	router, err := s.Router()
	if err != nil {
		return err
	}

	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	logger.Info("Starting API server",
		zap.String("address", addr),
	)

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server, stops the executor pool and
// releases the rate limiter
func (s *Server) Shutdown(ctx context.Context) error {
	logger.Info("Shutting down API server")

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}
	}
	s.executor.Close()

	if s.config.RateLimiter != nil {
		if err := s.config.RateLimiter.Close(); err != nil {
			logger.Warn("Failed to close rate limiter", zap.Error(err))
		}
	}

	return nil
}
