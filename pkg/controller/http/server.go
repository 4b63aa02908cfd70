package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// config holds internal HTTP server configuration
type config struct {
	addr string
	dir  string
}

// Option is a functional option for Server configuration
type Option func(*config)

// WithAddr sets the server address
func WithAddr(addr string) Option {
	return func(c *config) {
		c.addr = addr
	}
}

// WithDir sets the directory served under /files/
func WithDir(dir string) Option {
	return func(c *config) {
		c.dir = dir
	}
}

// Server is the fixture HTTP server. It exists so benchmarks can run against
// a local, reproducible source instead of the public Landsat bucket.
type Server struct {
	*http.Server
}

// NewServer creates a new fixture server
func NewServer(ctx context.Context, opts ...Option) (*Server, error) {
	// Default configuration
	cfg := &config{
		addr: "localhost:8080",
	}

	// Apply options
	for _, opt := range opts {
		opt(cfg)
	}

	router := chi.NewRouter()

	// Global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)

	// Health check
	router.Get("/health", handleHealth)

	// Deterministic payloads of arbitrary size
	router.Get("/random", handleRandom)

	// Local fixture files
	if cfg.dir != "" {
		fs := http.StripPrefix("/files/", http.FileServer(http.Dir(cfg.dir)))
		router.Handle("/files/*", fs)
	}

	server := &Server{
		Server: &http.Server{
			Addr:              cfg.addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
	}

	return server, nil
}
