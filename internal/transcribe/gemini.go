package transcribe

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/nguyentantai21042004/meeting-minutes/internal/logger"
	"google.golang.org/genai"
)

const defaultGeminiPrompt = `Transcribe the speech in this meeting recording verbatim.
Spoken language: %s.
Return only the transcript as plain text with normal sentence punctuation.
Do not add speaker labels, timestamps, headings or commentary.
If the recording contains no intelligible speech, return exactly: %s`

// noSpeechMarker is what the model is asked to answer for silent audio.
const noSpeechMarker = "[NO_SPEECH]"

// GeminiOptions configures the Gemini backend.
type GeminiOptions struct {
	APIKeys  []string
	Model    string
	Language string
	Prompt   string
	// BaseURL overrides the API endpoint. Used by tests.
	BaseURL string
}

type geminiTranscriber struct {
	opts   GeminiOptions
	logger logger.Logger

	mu         sync.Mutex
	currentKey int
}

// NewGemini returns a Transcriber backed by the Gemini API. Requests rotate
// to the next API key when one is rate limited.
func NewGemini(opts GeminiOptions, log logger.Logger) (Transcriber, error) {
	if len(opts.APIKeys) == 0 {
		return nil, errors.New("gemini: at least one API key is required")
	}
	if opts.Model == "" {
		opts.Model = "gemini-2.5-flash"
	}
	if opts.Language == "" {
		opts.Language = "en-US"
	}
	return &geminiTranscriber{opts: opts, logger: log}, nil
}

func (g *geminiTranscriber) prompt() string {
	if g.opts.Prompt != "" {
		return g.opts.Prompt
	}
	return fmt.Sprintf(defaultGeminiPrompt, g.opts.Language, noSpeechMarker)
}

// Transcribe sends the recording inline and returns the model's transcript.
func (g *geminiTranscriber) Transcribe(ctx context.Context, a Audio) (string, error) {
	mime := a.MIMEType
	if mime == "" {
		mime = "audio/wav"
	}
	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(g.prompt()),
			genai.NewPartFromBytes(a.Data, mime),
		}, genai.RoleUser),
	}

	var lastErr error
	for range len(g.opts.APIKeys) {
		key, idx := g.key()

		cc := &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		}
		if g.opts.BaseURL != "" {
			cc.HTTPOptions = genai.HTTPOptions{BaseURL: g.opts.BaseURL}
		}
		client, err := genai.NewClient(ctx, cc)
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			g.rotateKey(idx)
			continue
		}

		result, err := client.Models.GenerateContent(ctx, g.opts.Model, contents, nil)
		if err != nil {
			if isRateLimited(err) {
				g.logger.Warn(ctx, "Gemini key %d rate limited, rotating...", idx+1)
				g.rotateKey(idx)
				lastErr = err
				continue
			}
			return "", fmt.Errorf("%w: gemini generate content: %v", ErrTranscription, err)
		}

		return cleanTranscript(responseText(result)), nil
	}

	return "", fmt.Errorf("%w: all gemini API keys exhausted: %v", ErrTranscription, lastErr)
}

func (g *geminiTranscriber) key() (string, int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.opts.APIKeys[g.currentKey], g.currentKey
}

// rotateKey advances past idx unless another request already did.
func (g *geminiTranscriber) rotateKey(idx int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.currentKey == idx {
		g.currentKey = (g.currentKey + 1) % len(g.opts.APIKeys)
	}
}

func responseText(result *genai.GenerateContentResponse) string {
	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		if part != nil && part.Text != "" {
			b.WriteString(part.Text)
		}
	}
	return b.String()
}

func cleanTranscript(s string) string {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, noSpeechMarker) {
		return ""
	}
	return s
}

func isRateLimited(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "429") || strings.Contains(msg, "quota") || strings.Contains(msg, "RESOURCE_EXHAUSTED")
}
