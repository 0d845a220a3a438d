package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/meeting-minutes/internal/logger"
)

type implWatcher struct {
	inputDir      string
	handler       EventHandler
	logger        logger.Logger
	watcher       *fsnotify.Watcher
	maxConcurrent int
	settle        time.Duration
	semaphore     chan struct{}
	wg            sync.WaitGroup

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// Start dispatches recordings already in the inbox, then every new one,
// until ctx is cancelled. It waits for running handlers before returning.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "Inbox watcher started (max concurrent: %d). Monitoring: %s", w.maxConcurrent, w.inputDir)

	existing, err := w.existingRecordings()
	if err != nil {
		return fmt.Errorf("scan inbox: %w", err)
	}
	for _, path := range existing {
		w.logger.Info(ctx, "Queued existing recording: %s", path)
		if err := w.dispatch(ctx, path); err != nil {
			return w.wait(ctx, err)
		}
	}

	for {
		select {
		case <-ctx.Done():
			return w.wait(ctx, ctx.Err())

		case event, ok := <-w.watcher.Events:
			if !ok {
				return w.wait(ctx, fmt.Errorf("watcher events channel closed"))
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if !isWAVFile(event.Name) {
				w.logger.Debug(ctx, "Ignoring non-WAV file: %s", event.Name)
				continue
			}
			if _, err := os.Stat(event.Name); err != nil {
				// Renamed away from the inbox.
				continue
			}

			w.logger.Info(ctx, "New recording detected: %s", event.Name)
			if err := w.dispatch(ctx, event.Name); err != nil {
				return w.wait(ctx, err)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return w.wait(ctx, fmt.Errorf("watcher errors channel closed"))
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// dispatch runs the handler in a goroutine once a semaphore slot is free.
// A file already being handled is skipped.
func (w *implWatcher) dispatch(ctx context.Context, filePath string) error {
	w.mu.Lock()
	if _, busy := w.inFlight[filePath]; busy {
		w.mu.Unlock()
		return nil
	}
	w.inFlight[filePath] = struct{}{}
	w.mu.Unlock()

	select {
	case w.semaphore <- struct{}{}:
	case <-ctx.Done():
		w.done(filePath)
		return ctx.Err()
	}

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer func() { <-w.semaphore }()
		defer w.done(filePath)

		if w.settle > 0 {
			select {
			case <-time.After(w.settle):
			case <-ctx.Done():
				return
			}
		}

		if err := w.handler(ctx, filePath); err != nil {
			w.logger.Error(ctx, "Failed to process %s: %v", filePath, err)
		}
	}()
	return nil
}

func (w *implWatcher) done(filePath string) {
	w.mu.Lock()
	delete(w.inFlight, filePath)
	w.mu.Unlock()
}

func (w *implWatcher) wait(ctx context.Context, err error) error {
	w.logger.Info(ctx, "Waiting for ongoing processing to complete...")
	w.wg.Wait()
	w.logger.Info(ctx, "Inbox watcher stopped")
	return err
}

// Stop closes the file watcher
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

func (w *implWatcher) existingRecordings() ([]string, error) {
	entries, err := os.ReadDir(w.inputDir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if isWAVFile(e.Name()) {
			files = append(files, filepath.Join(w.inputDir, e.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

func isWAVFile(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".wav"
}
