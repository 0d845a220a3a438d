package server

import (
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/nguyentantai21042004/meeting-minutes/internal/processor"
	"github.com/nguyentantai21042004/meeting-minutes/internal/render"
)

// Form field names used by the upload page.
const (
	fieldAudio = "audio_file"
	fieldFmt   = "format"
	fieldDate  = "meeting_date"
	fieldTime  = "meeting_time"
)

func (s *Server) handleIndex(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(indexHTML)
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (s *Server) handleUpload(c *fiber.Ctx) error {
	fh, err := c.FormFile(fieldAudio)
	if err != nil || fh.Filename == "" {
		return &httpError{status: fiber.StatusBadRequest, message: msgNoFile, err: err}
	}

	f, err := fh.Open()
	if err != nil {
		return fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return fmt.Errorf("read upload: %w", err)
	}

	format := render.ParseFormat(s.cfg.Render.DefaultFormat)
	if v := c.FormValue(fieldFmt); v != "" {
		format = render.ParseFormat(v)
	}

	doc, err := s.proc.Process(c.UserContext(), processor.Request{
		Filename: fh.Filename,
		Audio:    data,
		Format:   format,
		Date:     c.FormValue(fieldDate),
		Time:     c.FormValue(fieldTime),
	})
	if err != nil {
		return err
	}

	c.Attachment(doc.Filename)
	c.Set(fiber.HeaderContentType, doc.ContentType)
	return c.Send(doc.Data)
}
