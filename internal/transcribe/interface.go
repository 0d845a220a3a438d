package transcribe

import (
	"context"
	"errors"
)

// ErrTranscription wraps every failure of the remote speech service.
var ErrTranscription = errors.New("transcription failed")

// Audio is a recording handed to a speech service.
type Audio struct {
	Filename string
	MIMEType string
	Data     []byte
}

// Transcriber converts a recording to plain text. Recordings with no
// recognisable speech yield "" and a nil error.
type Transcriber interface {
	Transcribe(ctx context.Context, a Audio) (string, error)
}
