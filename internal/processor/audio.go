package processor

import (
	"context"
	"fmt"

	"github.com/nguyentantai21042004/meeting-minutes/internal/audio"
)

// prepareAudio validates the upload and, when ffmpeg is configured,
// converts it to 16-bit mono at the configured sample rate.
func (p *implProcessor) prepareAudio(ctx context.Context, req Request) ([]byte, error) {
	if err := audio.CheckExtension(req.Filename); err != nil {
		return nil, err
	}

	info, err := audio.Inspect(req.Audio)
	if err != nil {
		return nil, err
	}
	p.logger.Info(ctx, "Received %s: %d Hz, %d ch, %d bit, %s",
		req.Filename, info.SampleRate, info.Channels, info.BitDepth, info.Duration)

	data, err := p.normalizer.Normalize(ctx, req.Audio, info)
	if err != nil {
		return nil, fmt.Errorf("normalize audio: %w", err)
	}
	return data, nil
}
