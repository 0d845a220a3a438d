package audio

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-audio/wav"
)

var (
	// ErrUnsupportedFormat is returned for uploads that are not .wav files.
	ErrUnsupportedFormat = errors.New("only WAV files are supported")
	// ErrInvalidWAV is returned when the RIFF/WAVE header cannot be read.
	ErrInvalidWAV = errors.New("invalid WAV file")
)

// Info describes a decoded WAV header.
type Info struct {
	SampleRate int
	Channels   int
	BitDepth   int
	Duration   time.Duration
}

// CheckExtension accepts names ending in .wav, case-insensitively.
func CheckExtension(filename string) error {
	if strings.ToLower(filepath.Ext(filename)) != ".wav" {
		return ErrUnsupportedFormat
	}
	return nil
}

// Inspect validates the WAV header of data and reports its format.
func Inspect(data []byte) (Info, error) {
	d := wav.NewDecoder(bytes.NewReader(data))
	if !d.IsValidFile() {
		return Info{}, ErrInvalidWAV
	}
	// IsValidFile only reads the fmt chunk; a file without a data chunk
	// carries no audio.
	if err := d.FwdToPCM(); err != nil {
		return Info{}, ErrInvalidWAV
	}

	info := Info{
		SampleRate: int(d.SampleRate),
		Channels:   int(d.NumChans),
		BitDepth:   int(d.BitDepth),
	}
	if dur, err := d.Duration(); err == nil {
		info.Duration = dur
	}
	return info, nil
}
