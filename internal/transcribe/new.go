package transcribe

import (
	"fmt"

	"github.com/nguyentantai21042004/meeting-minutes/internal/config"
	"github.com/nguyentantai21042004/meeting-minutes/internal/logger"
)

// New builds the Transcriber selected by cfg.Transcriber.Backend.
func New(cfg *config.Config, log logger.Logger) (Transcriber, error) {
	switch cfg.Transcriber.Backend {
	case "gemini":
		return NewGemini(GeminiOptions{
			APIKeys:  cfg.Gemini.APIKeys,
			Model:    cfg.Gemini.Model,
			Language: cfg.Transcriber.Language,
			Prompt:   cfg.Transcriber.Prompt,
		}, log)
	case "openai":
		return NewOpenAI(OpenAIOptions{
			APIKey:   cfg.OpenAI.APIKey,
			BaseURL:  cfg.OpenAI.BaseURL,
			Model:    cfg.OpenAI.Model,
			Language: cfg.Transcriber.Language,
			Prompt:   cfg.Transcriber.Prompt,
		}, log), nil
	default:
		return nil, fmt.Errorf("unknown transcriber backend: %s", cfg.Transcriber.Backend)
	}
}
