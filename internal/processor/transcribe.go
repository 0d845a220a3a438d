package processor

import (
	"context"
	"fmt"

	"github.com/nguyentantai21042004/meeting-minutes/internal/transcribe"
)

// transcribe runs the speech service, holding a semaphore slot so that at
// most performance.max_concurrent uploads are in flight.
func (p *implProcessor) transcribe(ctx context.Context, filename string, data []byte) (string, error) {
	if err := p.sem.acquire(ctx); err != nil {
		return "", fmt.Errorf("wait for transcription slot: %w", err)
	}
	defer p.sem.release()

	p.logger.Info(ctx, "Starting transcription with %s backend: %s (%d bytes)",
		p.cfg.Transcriber.Backend, filename, len(data))

	text, err := p.transcriber.Transcribe(ctx, transcribe.Audio{
		Filename: filename,
		MIMEType: "audio/wav",
		Data:     data,
	})
	if err != nil {
		return "", err
	}

	if text == "" {
		p.logger.Warn(ctx, "No speech recognised in %s", filename)
	} else {
		p.logger.Info(ctx, "Transcription completed: %d characters", len(text))
	}
	return text, nil
}
