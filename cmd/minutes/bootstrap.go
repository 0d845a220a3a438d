package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/nguyentantai21042004/meeting-minutes/internal/audio"
	"github.com/nguyentantai21042004/meeting-minutes/internal/config"
	"github.com/nguyentantai21042004/meeting-minutes/internal/logger"
	"github.com/nguyentantai21042004/meeting-minutes/internal/processor"
	"github.com/nguyentantai21042004/meeting-minutes/internal/transcribe"
	"github.com/nguyentantai21042004/meeting-minutes/pkg/executor"
)

const defaultConfigPath = "config.yaml"

type app struct {
	cfg  *config.Config
	log  logger.Logger
	proc processor.Processor
}

// loadConfig reads .env files and the YAML config. A missing default config
// file is not an error: built-in defaults plus the environment are used.
func loadConfig(path string) (*config.Config, error) {
	if err := config.LoadEnvFiles(".env"); err != nil {
		return nil, err
	}

	cfg, err := config.Load(path)
	if err == nil {
		return cfg, nil
	}
	if path == defaultConfigPath && errors.Is(err, fs.ErrNotExist) {
		return config.Default()
	}
	return nil, err
}

// bootstrap wires config, logger, transcriber and processor.
func bootstrap(ctx context.Context) (*app, error) {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "========================================")
	log.Info(ctx, "Meeting Minutes")
	log.Info(ctx, "========================================")
	log.Info(ctx, "System: %s/%s", runtime.GOOS, runtime.GOARCH)
	log.Info(ctx, "Transcriber: %s", cfg.Transcriber.Backend)
	log.Info(ctx, "Agenda keywords: %v", cfg.Agenda.Keywords)
	log.Info(ctx, "Max concurrent transcriptions: %d", cfg.Performance.MaxConcurrent)

	if err := os.MkdirAll(cfg.Paths.Temp, 0755); err != nil {
		return nil, fmt.Errorf("create directory %s: %w", cfg.Paths.Temp, err)
	}

	tr, err := transcribe.New(cfg, log)
	if err != nil {
		return nil, err
	}

	norm := audio.NewNormalizer(cfg.Audio.FFmpegPath, cfg.Audio.SampleRate, executor.New(), log)
	if norm.Enabled() {
		log.Info(ctx, "Audio normalization: %s -> %d Hz mono", cfg.Audio.FFmpegPath, cfg.Audio.SampleRate)
	}

	return &app{
		cfg:  cfg,
		log:  log,
		proc: processor.New(cfg, tr, norm, log),
	}, nil
}

// signalContext is cancelled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
