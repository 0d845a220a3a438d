package transcribe

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/meeting-minutes/internal/logger"
	"github.com/sashabaranov/go-openai"
)

// OpenAIOptions configures the Whisper backend.
type OpenAIOptions struct {
	APIKey   string
	BaseURL  string
	Model    string
	Language string
	Prompt   string
}

type openAITranscriber struct {
	client *openai.Client
	opts   OpenAIOptions
	logger logger.Logger
}

// NewOpenAI returns a Transcriber backed by the OpenAI audio transcription API.
func NewOpenAI(opts OpenAIOptions, log logger.Logger) Transcriber {
	cc := openai.DefaultConfig(opts.APIKey)
	if opts.BaseURL != "" {
		cc.BaseURL = opts.BaseURL
	}
	if opts.Model == "" {
		opts.Model = openai.Whisper1
	}
	return &openAITranscriber{
		client: openai.NewClientWithConfig(cc),
		opts:   opts,
		logger: log,
	}
}

func (o *openAITranscriber) Transcribe(ctx context.Context, a Audio) (string, error) {
	name := a.Filename
	if name == "" {
		name = "recording.wav"
	}

	req := openai.AudioRequest{
		Model:    o.opts.Model,
		FilePath: name,
		Reader:   bytes.NewReader(a.Data),
		Prompt:   o.opts.Prompt,
		Language: isoLanguage(o.opts.Language),
		Format:   openai.AudioResponseFormatJSON,
	}

	o.logger.Debug(ctx, "Sending %d bytes to OpenAI model %s", len(a.Data), o.opts.Model)
	resp, err := o.client.CreateTranscription(ctx, req)
	if err != nil {
		return "", fmt.Errorf("%w: openai transcription: %v", ErrTranscription, err)
	}
	return strings.TrimSpace(resp.Text), nil
}

// isoLanguage reduces a BCP 47 tag such as en-US to the ISO-639-1 code Whisper expects.
func isoLanguage(tag string) string {
	tag = strings.TrimSpace(tag)
	if i := strings.IndexAny(tag, "-_"); i > 0 {
		tag = tag[:i]
	}
	return strings.ToLower(tag)
}
