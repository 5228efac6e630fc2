// Package server exposes poster rendering over HTTP with gin.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	canvasrenderer "github.com/ByLCY/edgeposter/renderer/canvas"
)

// RequestIDHeader carries the per-request id set by the logging middleware.
const RequestIDHeader = "X-Request-Id"

// Options configures a Server.
type Options struct {
	Logger *log.Logger
	// Fonts is passed to every per-request canvas surface.
	Fonts canvasrenderer.FontSet
	// Now is the clock used by the greeting endpoint. Defaults to time.Now.
	Now func() time.Time
}

// Server owns the gin engine. Each poster request renders on its own surface.
type Server struct {
	logger *log.Logger
	fonts  canvasrenderer.FontSet
	now    func() time.Time
	engine *gin.Engine
}

// New builds a server with recovery, request logging and the API routes installed.
func New(opts Options) *Server {
	s := &Server{
		logger: opts.Logger,
		fonts:  opts.Fonts,
		now:    opts.Now,
	}
	if s.logger == nil {
		s.logger = log.Default()
	}
	if s.now == nil {
		s.now = time.Now
	}

	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())
	s.RegisterRoutes(r)
	s.engine = r
	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler { return s.engine }

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting server", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// requestLogger tags each request with an id and logs it once it completes.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(RequestIDHeader, id)
		c.Set("request_id", id)

		c.Next()

		status := c.Writer.Status()
		kv := []any{
			"id", id,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"duration", time.Since(start).Round(time.Microsecond),
		}
		switch {
		case status >= http.StatusInternalServerError:
			s.logger.Error("request", kv...)
		case status >= http.StatusBadRequest:
			s.logger.Warn("request", kv...)
		default:
			s.logger.Info("request", kv...)
		}
	}
}
