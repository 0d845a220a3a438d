package main

import (
	"path/filepath"

	"github.com/nguyentantai21042004/meeting-minutes/internal/processor"
	"github.com/nguyentantai21042004/meeting-minutes/internal/render"
	"github.com/spf13/cobra"
)

func newConvertCmd() *cobra.Command {
	var (
		format    string
		outputDir string
	)

	cmd := &cobra.Command{
		Use:   "convert <recording.wav>",
		Short: "Convert one recording and write the document to disk",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signalContext()
			defer cancel()

			a, err := bootstrap(ctx)
			if err != nil {
				return err
			}

			if format == "" {
				format = a.cfg.Render.DefaultFormat
			}
			dir := outputDir
			if dir == "" {
				dir = filepath.Dir(args[0])
			}

			out, err := processor.ProcessFile(ctx, a.proc, args[0], dir, render.ParseFormat(format))
			if err != nil {
				return err
			}
			a.log.Info(ctx, "Wrote %s", out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: docx or pdf")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "output directory (default: next to the recording)")
	return cmd
}
