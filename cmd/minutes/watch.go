package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/nguyentantai21042004/meeting-minutes/internal/processor"
	"github.com/nguyentantai21042004/meeting-minutes/internal/watcher"
	"github.com/spf13/cobra"
)

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Turn every WAV dropped into the inbox folder into minutes",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signalContext()
			defer cancel()

			a, err := bootstrap(ctx)
			if err != nil {
				return err
			}

			for _, dir := range []string{a.cfg.Paths.Input, a.cfg.Paths.Output, a.cfg.Paths.Archived} {
				if err := os.MkdirAll(dir, 0755); err != nil {
					return fmt.Errorf("create directory %s: %w", dir, err)
				}
			}

			handler := processor.NewInboxHandler(a.cfg, a.proc, a.log)
			w, err := watcher.New(a.cfg.Paths.Input, handler, a.log, a.cfg.Performance.MaxConcurrent)
			if err != nil {
				return err
			}
			defer w.Stop()

			a.log.Info(ctx, "Inbox: %s", a.cfg.Paths.Input)
			a.log.Info(ctx, "Output: %s (%s)", a.cfg.Paths.Output, a.cfg.Render.DefaultFormat)
			a.log.Info(ctx, "Press Ctrl+C to stop")

			if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			a.log.Info(context.Background(), "Meeting Minutes stopped")
			return nil
		},
	}
}
