package processor

import (
	"context"
	"fmt"
	"time"

	"github.com/nguyentantai21042004/meeting-minutes/internal/render"
)

// Process orchestrates the pipeline: validate, transcribe, segment, render.
func (p *implProcessor) Process(ctx context.Context, req Request) (render.Document, error) {
	startTime := time.Now()

	p.logger.Info(ctx, "Processing recording: %s", req.Filename)

	// Step 1: Validate and normalize audio
	data, err := p.prepareAudio(ctx, req)
	if err != nil {
		return render.Document{}, err
	}

	// Step 2: Speech to text
	transcript, err := p.transcribe(ctx, req.Filename, data)
	if err != nil {
		return render.Document{}, fmt.Errorf("transcribe: %w", err)
	}

	// Step 3: Segment and render
	doc, err := p.render(ctx, req, transcript)
	if err != nil {
		return render.Document{}, err
	}

	p.logger.Info(ctx, "Minutes ready: %s (%d bytes) in %s", doc.Filename, len(doc.Data), time.Since(startTime))
	return doc, nil
}
