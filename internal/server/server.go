package server

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/nguyentantai21042004/meeting-minutes/internal/config"
	"github.com/nguyentantai21042004/meeting-minutes/internal/logger"
	"github.com/nguyentantai21042004/meeting-minutes/internal/processor"
)

//go:embed templates/index.html
var indexHTML []byte

// Server exposes the upload form and the minutes endpoint over HTTP.
type Server struct {
	app    *fiber.App
	cfg    *config.Config
	proc   processor.Processor
	logger logger.Logger
}

// New builds the Fiber app and registers routes.
func New(cfg *config.Config, proc processor.Processor, log logger.Logger) *Server {
	s := &Server{cfg: cfg, proc: proc, logger: log}

	s.app = fiber.New(fiber.Config{
		AppName:               "meeting-minutes",
		BodyLimit:             cfg.BodyLimit(),
		ReadTimeout:           cfg.Server.ReadTimeout,
		WriteTimeout:          cfg.Server.WriteTimeout,
		DisableStartupMessage: true,
		ErrorHandler:          s.handleError,
	})

	s.app.Use(s.requestID)
	s.app.Get("/", s.handleIndex)
	s.app.Post("/", s.handleUpload)
	s.app.Get("/healthz", s.handleHealth)

	return s
}

// App returns the underlying Fiber app.
func (s *Server) App() *fiber.App {
	return s.app
}

// Serve listens on cfg.Server.Addr until ctx is cancelled, then shuts down
// and waits for in-flight requests.
func (s *Server) Serve(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info(ctx, "HTTP server listening on %s", s.cfg.Server.Addr)
		errCh <- s.app.Listen(s.cfg.Server.Addr)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info(context.Background(), "Shutting down HTTP server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.WriteTimeout)
	defer cancel()
	if err := s.app.ShutdownWithContext(shutdownCtx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errCh
}
