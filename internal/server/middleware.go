package server

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/nguyentantai21042004/meeting-minutes/internal/logger"
)

const headerRequestID = "X-Request-ID"

// requestID tags every request with an id, stores it in the user context
// for log lines and echoes it back in the response header.
func (s *Server) requestID(c *fiber.Ctx) error {
	id := c.Get(headerRequestID)
	if _, err := uuid.Parse(id); err != nil {
		id = uuid.NewString()
	}
	c.Set(headerRequestID, id)

	// Fiber does not cancel the user context when the client goes away, so
	// bound the pipeline by the write timeout instead.
	ctx, cancel := context.WithTimeout(c.UserContext(), s.cfg.Server.WriteTimeout)
	defer cancel()
	ctx = logger.WithRequestID(ctx, id)
	c.SetUserContext(ctx)

	start := time.Now()
	err := c.Next()
	if err != nil {
		// Let the error handler set the status before it is logged.
		if herr := s.handleError(c, err); herr != nil {
			s.logger.Error(ctx, "error handler failed: %v", herr)
		}
	}

	s.logger.Info(ctx, "%s %s -> %d (%s)", c.Method(), c.Path(), c.Response().StatusCode(), time.Since(start))
	return nil
}
