package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/meeting-minutes/internal/config"
	"github.com/nguyentantai21042004/meeting-minutes/internal/logger"
	"github.com/nguyentantai21042004/meeting-minutes/internal/render"
)

// ProcessFile runs the pipeline on a recording on disk and writes the
// document into the output folder as <recording name>.<ext>. The returned
// path is the written document.
func ProcessFile(ctx context.Context, proc Processor, audioPath, outputDir string, format render.Format) (string, error) {
	data, err := os.ReadFile(audioPath)
	if err != nil {
		return "", fmt.Errorf("read recording: %w", err)
	}

	doc, err := proc.Process(ctx, Request{
		Filename: filepath.Base(audioPath),
		Audio:    data,
		Format:   format,
	})
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(audioPath), filepath.Ext(audioPath))
	outPath := filepath.Join(outputDir, base+filepath.Ext(doc.Filename))
	if err := writeFileAtomic(outPath, doc.Data); err != nil {
		return "", fmt.Errorf("write document: %w", err)
	}
	return outPath, nil
}

// NewInboxHandler returns a handler for the inbox watcher: each recording
// is turned into a document in paths.output and then moved to
// paths.archived so it is not picked up again.
func NewInboxHandler(cfg *config.Config, proc Processor, log logger.Logger) func(ctx context.Context, audioPath string) error {
	format := render.ParseFormat(cfg.Render.DefaultFormat)

	return func(ctx context.Context, audioPath string) error {
		outPath, err := ProcessFile(ctx, proc, audioPath, cfg.Paths.Output, format)
		if err != nil {
			return err
		}
		log.Info(ctx, "[DONE] %s -> %s", audioPath, outPath)

		if err := moveToArchived(ctx, log, audioPath, cfg.Paths.Archived); err != nil {
			log.Warn(ctx, "Failed to move recording to archived folder: %v", err)
		}
		return nil
	}
}

// moveToArchived moves a processed recording out of the inbox.
func moveToArchived(ctx context.Context, log logger.Logger, audioPath, archivedDir string) error {
	if err := os.MkdirAll(archivedDir, 0755); err != nil {
		return fmt.Errorf("create archived dir: %w", err)
	}
	dest := filepath.Join(archivedDir, filepath.Base(audioPath))

	log.Info(ctx, "Archiving recording: %s -> %s", audioPath, dest)
	if err := os.Rename(audioPath, dest); err != nil {
		return fmt.Errorf("move to archived: %w", err)
	}
	return nil
}

func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return nil
}
