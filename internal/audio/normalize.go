package audio

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"github.com/nguyentantai21042004/meeting-minutes/internal/logger"
	"github.com/nguyentantai21042004/meeting-minutes/pkg/executor"
)

// Normalizer converts WAV audio to the layout speech services handle best:
// mono, 16-bit PCM, fixed sample rate.
type Normalizer struct {
	ffmpegPath string
	sampleRate int
	exec       executor.Executor
	logger     logger.Logger
}

// NewNormalizer returns a Normalizer. An empty ffmpegPath disables conversion.
func NewNormalizer(ffmpegPath string, sampleRate int, exec executor.Executor, log logger.Logger) *Normalizer {
	return &Normalizer{
		ffmpegPath: ffmpegPath,
		sampleRate: sampleRate,
		exec:       exec,
		logger:     log,
	}
}

// Enabled reports whether ffmpeg conversion is configured.
func (n *Normalizer) Enabled() bool {
	return n != nil && n.ffmpegPath != ""
}

// Normalize resamples data through ffmpeg, streaming over stdin/stdout.
// Input already in the target layout is returned untouched.
func (n *Normalizer) Normalize(ctx context.Context, data []byte, info Info) ([]byte, error) {
	if !n.Enabled() {
		return data, nil
	}
	if info.Channels == 1 && info.BitDepth == 16 && info.SampleRate == n.sampleRate {
		n.logger.Debug(ctx, "Audio already %d Hz mono 16-bit, skipping ffmpeg", n.sampleRate)
		return data, nil
	}

	n.logger.Info(ctx, "Normalizing audio: %d Hz/%d ch/%d bit -> %d Hz mono",
		info.SampleRate, info.Channels, info.BitDepth, n.sampleRate)

	// -i pipe:0: read input WAV from stdin
	// -ac 1 -ar N: mono at the target sample rate
	// -c:a pcm_s16le: 16-bit little-endian PCM
	// -f wav pipe:1: write WAV to stdout
	args := []string{
		"-hide_banner", "-loglevel", "error",
		"-i", "pipe:0",
		"-ac", "1",
		"-ar", strconv.Itoa(n.sampleRate),
		"-c:a", "pcm_s16le",
		"-f", "wav",
		"pipe:1",
	}

	out, err := n.exec.Run(ctx, executor.Command{
		Name:  n.ffmpegPath,
		Args:  args,
		Stdin: bytes.NewReader(data),
	})
	if err != nil {
		return nil, fmt.Errorf("ffmpeg normalize: %w", err)
	}
	if _, err := Inspect(out); err != nil {
		return nil, fmt.Errorf("ffmpeg normalize: %w", err)
	}
	return out, nil
}
