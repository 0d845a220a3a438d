package audio

import (
	"errors"
	"testing"
	"time"

	"github.com/nguyentantai21042004/meeting-minutes/internal/audio/audiotest"
)

func TestCheckExtension(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		wantErr  bool
	}{
		{"lower case", "meeting.wav", false},
		{"upper case", "MEETING.WAV", false},
		{"path", "/tmp/uploads/standup.Wav", false},
		{"mp3", "meeting.mp3", true},
		{"no extension", "meeting", true},
		{"wav in name only", "wav.txt", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckExtension(tt.filename)
			if (err != nil) != tt.wantErr {
				t.Errorf("CheckExtension(%q) error = %v, wantErr %v", tt.filename, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrUnsupportedFormat) {
				t.Errorf("error = %v, want ErrUnsupportedFormat", err)
			}
		})
	}
}

func TestInspect(t *testing.T) {
	data := audiotest.WAV(t, 8000, 2, 0.5)

	info, err := Inspect(data)
	if err != nil {
		t.Fatalf("Inspect() error = %v", err)
	}
	if info.SampleRate != 8000 || info.Channels != 2 || info.BitDepth != 16 {
		t.Errorf("Inspect() = %+v", info)
	}
	if info.Duration < 400*time.Millisecond || info.Duration > 600*time.Millisecond {
		t.Errorf("Duration = %v, want ~500ms", info.Duration)
	}
}

func TestInspectInvalid(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"text", []byte("this is definitely not audio")},
		{"riff without wave", []byte("RIFF\x24\x00\x00\x00AVI LIST")},
		{"header only", audiotest.WAV(t, 8000, 1, 0.1)[:36]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Inspect(tt.data)
			if !errors.Is(err, ErrInvalidWAV) {
				t.Errorf("Inspect() error = %v, want ErrInvalidWAV", err)
			}
		})
	}
}
