package server

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/nguyentantai21042004/meeting-minutes/internal/audio"
	"github.com/nguyentantai21042004/meeting-minutes/internal/transcribe"
)

// User-facing messages. Details stay in the logs.
const (
	msgNoFile           = "Error: No audio file uploaded."
	msgUnsupported      = "Error: Only WAV files are supported."
	msgInvalidWAV       = "Error: Invalid WAV file."
	msgTranscription    = "Error: Transcription failed."
	msgTooLarge         = "Error: File is too large."
	msgInternal         = "Error: Could not generate minutes."
	msgNotFound         = "Error: Not found."
	msgMethodNotAllowed = "Error: Method not allowed."
)

// httpError carries a status and a static message to the error handler.
type httpError struct {
	status  int
	message string
	err     error
}

func (e *httpError) Error() string {
	if e.err != nil {
		return e.message + ": " + e.err.Error()
	}
	return e.message
}

func (e *httpError) Unwrap() error { return e.err }

// classify maps a pipeline error to a status and message.
func classify(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		switch fe.Code {
		case fiber.StatusRequestEntityTooLarge:
			return &httpError{status: fe.Code, message: msgTooLarge, err: err}
		case fiber.StatusNotFound:
			return &httpError{status: fe.Code, message: msgNotFound, err: err}
		case fiber.StatusMethodNotAllowed:
			return &httpError{status: fe.Code, message: msgMethodNotAllowed, err: err}
		}
		return &httpError{status: fe.Code, message: "Error: " + fe.Message, err: err}
	}

	switch {
	case errors.Is(err, audio.ErrUnsupportedFormat):
		return &httpError{status: fiber.StatusBadRequest, message: msgUnsupported, err: err}
	case errors.Is(err, audio.ErrInvalidWAV):
		return &httpError{status: fiber.StatusBadRequest, message: msgInvalidWAV, err: err}
	case errors.Is(err, transcribe.ErrTranscription):
		return &httpError{status: fiber.StatusBadGateway, message: msgTranscription, err: err}
	default:
		return &httpError{status: fiber.StatusInternalServerError, message: msgInternal, err: err}
	}
}

func (s *Server) handleError(c *fiber.Ctx, err error) error {
	he := classify(err)
	if he.status >= fiber.StatusInternalServerError {
		s.logger.Error(c.UserContext(), "%s %s failed: %v", c.Method(), c.Path(), err)
	} else {
		s.logger.Warn(c.UserContext(), "%s %s rejected: %v", c.Method(), c.Path(), err)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.Status(he.status).SendString(he.message)
}
