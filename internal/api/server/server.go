package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"trip-planner/internal/api/middleware"
	"trip-planner/internal/api/v1/routes"
)

// Config holds the HTTP server settings
type Config struct {
	Host            string
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	Debug           bool
}

// DefaultConfig returns server settings suitable for local development
func DefaultConfig() Config {
	return Config{
		Host:            "0.0.0.0",
		Port:            8080,
		ReadTimeout:     30 * time.Second,
		WriteTimeout:    5 * time.Minute,
		ShutdownTimeout: 10 * time.Second,
	}
}

// Server wraps the gin engine and the underlying http.Server
type Server struct {
	config Config
	engine *gin.Engine
	http   *http.Server
	logger *slog.Logger
}

// New builds a server with the full middleware chain and v1 routes mounted
func New(config Config, container *routes.ServiceContainer, logger *slog.Logger) *Server {
	if !config.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(middleware.RequestID())
	engine.Use(middleware.StructuredLogging(logger))
	engine.Use(middleware.ErrorHandler(logger))
	engine.Use(middleware.CORS(middleware.DefaultCORSConfig()))

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := engine.Group("/api/v1")
	routes.RegisterRoutes(v1, container)

	addr := fmt.Sprintf("%s:%d", config.Host, config.Port)
	return &Server{
		config: config,
		engine: engine,
		logger: logger,
		http: &http.Server{
			Addr:         addr,
			Handler:      engine,
			ReadTimeout:  config.ReadTimeout,
			WriteTimeout: config.WriteTimeout,
		},
	}
}

// Engine exposes the router, mainly for tests
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Start blocks serving HTTP until the listener fails or Shutdown is called
func (s *Server) Start() error {
	s.logger.Info("starting HTTP server", "addr", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests and stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
	defer cancel()
	s.logger.Info("shutting down HTTP server")
	return s.http.Shutdown(ctx)
}
