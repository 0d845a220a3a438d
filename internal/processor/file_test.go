package processor

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/nguyentantai21042004/meeting-minutes/internal/audio"
	"github.com/nguyentantai21042004/meeting-minutes/internal/audio/audiotest"
	"github.com/nguyentantai21042004/meeting-minutes/internal/logger"
	"github.com/nguyentantai21042004/meeting-minutes/internal/render"
)

func TestProcessFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "weekly sync.wav")
	if err := os.WriteFile(in, audiotest.WAV(t, 8000, 1, 0.1), 0644); err != nil {
		t.Fatal(err)
	}
	p := newTestProcessor(t, &fakeTranscriber{text: "Update on hiring"})
	outDir := filepath.Join(dir, "out")

	got, err := ProcessFile(context.Background(), p, in, outDir, render.FormatPDF)
	if err != nil {
		t.Fatalf("ProcessFile() error = %v", err)
	}
	if want := filepath.Join(outDir, "weekly sync.pdf"); got != want {
		t.Errorf("ProcessFile() = %q, want %q", got, want)
	}
	data, err := os.ReadFile(got)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) == 0 {
		t.Error("document is empty")
	}
}

func TestProcessFileMissing(t *testing.T) {
	p := newTestProcessor(t, &fakeTranscriber{})
	if _, err := ProcessFile(context.Background(), p, filepath.Join(t.TempDir(), "nope.wav"), t.TempDir(), render.FormatDOCX); err == nil {
		t.Error("ProcessFile() expected error for missing file")
	}
}

func TestInboxHandlerArchives(t *testing.T) {
	cfg := testConfig(t)
	root := t.TempDir()
	cfg.Paths.Input = filepath.Join(root, "input")
	cfg.Paths.Output = filepath.Join(root, "output")
	cfg.Paths.Archived = filepath.Join(root, "archived")
	if err := os.MkdirAll(cfg.Paths.Input, 0755); err != nil {
		t.Fatal(err)
	}

	in := filepath.Join(cfg.Paths.Input, "retro.wav")
	if err := os.WriteFile(in, audiotest.WAV(t, 8000, 1, 0.1), 0644); err != nil {
		t.Fatal(err)
	}

	proc := New(cfg, &fakeTranscriber{text: "Review sprint. Action items"}, nil, logger.Nop())
	handle := NewInboxHandler(cfg, proc, logger.Nop())

	if err := handle(context.Background(), in); err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(cfg.Paths.Output, "retro.docx")); err != nil {
		t.Errorf("output document missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(cfg.Paths.Archived, "retro.wav")); err != nil {
		t.Errorf("recording not archived: %v", err)
	}
	if _, err := os.Stat(in); !os.IsNotExist(err) {
		t.Errorf("recording still in inbox: %v", err)
	}
}

func TestInboxHandlerKeepsInvalidRecording(t *testing.T) {
	cfg := testConfig(t)
	root := t.TempDir()
	cfg.Paths.Output = filepath.Join(root, "output")
	cfg.Paths.Archived = filepath.Join(root, "archived")

	in := filepath.Join(root, "broken.wav")
	if err := os.WriteFile(in, []byte("nope"), 0644); err != nil {
		t.Fatal(err)
	}

	proc := New(cfg, &fakeTranscriber{}, nil, logger.Nop())
	err := NewInboxHandler(cfg, proc, logger.Nop())(context.Background(), in)
	if !errors.Is(err, audio.ErrInvalidWAV) {
		t.Errorf("handler error = %v, want ErrInvalidWAV", err)
	}
	if _, err := os.Stat(in); err != nil {
		t.Errorf("invalid recording should stay in place: %v", err)
	}
}
