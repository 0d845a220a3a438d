package watcher

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/nguyentantai21042004/meeting-minutes/internal/logger"
)

type recorder struct {
	mu    sync.Mutex
	paths []string
	ch    chan string
}

func newRecorder() *recorder {
	return &recorder{ch: make(chan string, 16)}
}

func (r *recorder) handle(ctx context.Context, path string) error {
	r.mu.Lock()
	r.paths = append(r.paths, path)
	r.mu.Unlock()
	r.ch <- path
	return nil
}

func (r *recorder) next(t *testing.T) string {
	t.Helper()
	select {
	case p := <-r.ch:
		return p
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for handler")
		return ""
	}
}

func TestIsWAVFile(t *testing.T) {
	tests := map[string]bool{
		"a.wav":        true,
		"/in/B.WAV":    true,
		"a.mp3":        false,
		"wav":          false,
		"a.wav.part":   false,
		"dir/notes.md": false,
	}
	for in, want := range tests {
		if got := isWAVFile(in); got != want {
			t.Errorf("isWAVFile(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNewMissingDir(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing"), newRecorder().handle, logger.Nop(), 1)
	if err == nil {
		t.Error("New() expected error for missing directory")
	}
}

func TestWatcherDispatchesExistingAndNewFiles(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "earlier.wav")
	if err := os.WriteFile(existing, []byte("RIFF"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	rec := newRecorder()
	w, err := newWatcher(dir, rec.handle, logger.Nop(), 2, 10*time.Millisecond)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- w.Start(ctx) }()

	if got := rec.next(t); got != existing {
		t.Errorf("first handled = %q, want %q", got, existing)
	}

	fresh := filepath.Join(dir, "fresh.WAV")
	if err := os.WriteFile(fresh, []byte("RIFF"), 0644); err != nil {
		t.Fatal(err)
	}
	if got := rec.next(t); got != fresh {
		t.Errorf("second handled = %q, want %q", got, fresh)
	}

	cancel()
	if err := <-errCh; !errors.Is(err, context.Canceled) {
		t.Errorf("Start() error = %v, want context.Canceled", err)
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()
	for _, p := range rec.paths {
		if filepath.Ext(p) == ".txt" {
			t.Errorf("non-WAV file handled: %s", p)
		}
	}
}
