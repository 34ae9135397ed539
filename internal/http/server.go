// Package http provides the HTTP API server, its middleware and the metrics server.
package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/allisson/primetime/internal/config"
	"github.com/allisson/primetime/internal/metrics"
	numbersHTTP "github.com/allisson/primetime/internal/numbers/http"
	textHTTP "github.com/allisson/primetime/internal/text/http"
)

// Server represents the HTTP API server.
type Server struct {
	server       *http.Server
	router       *gin.Engine
	logger       *slog.Logger
	shuttingDown atomic.Bool

	// background is cancelled on Shutdown and bounds middleware goroutines.
	background context.Context
	cancel     context.CancelFunc
}

// NewServer creates a new HTTP API server. SetupRouter must be called before Start.
func NewServer(host string, port int, logger *slog.Logger) *Server {
	background, cancel := context.WithCancel(context.Background())

	return &Server{
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", host, port),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 60 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		logger:     logger,
		background: background,
		cancel:     cancel,
	}
}

// SetupRouter builds the gin router with the middleware stack and every API route.
// A nil metricsProvider disables HTTP metrics.
func (s *Server) SetupRouter(
	cfg *config.Config,
	numberHandler *numbersHTTP.NumberHandler,
	tokenizerHandler *textHTTP.TokenizerHandler,
	metricsProvider *metrics.Provider,
) {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(metricsProvider.MeterProvider(), metricsProvider.Namespace()))
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	v1 := router.Group("/v1")
	if cfg.RateLimitEnabled {
		v1.Use(RateLimitMiddleware(s.background, cfg.RateLimitRequestsPerSec, cfg.RateLimitBurst, s.logger))
	}

	numbers := v1.Group("/numbers")
	{
		numbers.POST("/factors", numberHandler.ComputeFactorsHandler)
		numbers.POST("/is-prime", numberHandler.IsPrimeHandler)
		numbers.POST("/primes", numberHandler.ComputePrimesHandler)
	}

	text := v1.Group("/text")
	{
		text.POST("/tokenize", tokenizerHandler.TokenizeHandler)
	}

	s.router = router
	s.server.Handler = router
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.router
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start(ctx context.Context) error {
	if s.router == nil {
		return fmt.Errorf("router is not configured")
	}
	s.server.Handler = s.router

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown marks the server as not ready, stops background middleware work and
// gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	s.shuttingDown.Store(true)
	s.cancel()
	return s.server.Shutdown(ctx)
}

// healthHandler reports that the process is alive.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports whether the server accepts new work.
func (s *Server) readinessHandler(c *gin.Context) {
	if s.shuttingDown.Load() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
