package processor

import (
	"time"

	"github.com/nguyentantai21042004/meeting-minutes/internal/agenda"
	"github.com/nguyentantai21042004/meeting-minutes/internal/audio"
	"github.com/nguyentantai21042004/meeting-minutes/internal/config"
	"github.com/nguyentantai21042004/meeting-minutes/internal/logger"
	"github.com/nguyentantai21042004/meeting-minutes/internal/render"
	"github.com/nguyentantai21042004/meeting-minutes/internal/transcribe"
)

type implProcessor struct {
	cfg         *config.Config
	normalizer  *audio.Normalizer
	transcriber transcribe.Transcriber
	segmenter   *agenda.Segmenter
	renderers   map[render.Format]render.Renderer
	sem         *semaphore
	logger      logger.Logger
	now         func() time.Time
}

// New creates a new Processor instance
func New(cfg *config.Config, tr transcribe.Transcriber, norm *audio.Normalizer, log logger.Logger) Processor {
	return &implProcessor{
		cfg:         cfg,
		normalizer:  norm,
		transcriber: tr,
		segmenter:   agenda.NewSegmenter(cfg.Agenda.Keywords),
		renderers: render.NewAll(render.Options{
			TempDir:     cfg.Paths.Temp,
			PDFFontPath: cfg.Render.PDFFontPath,
		}),
		sem:    newSemaphore(cfg.Performance.MaxConcurrent),
		logger: log,
		now:    time.Now,
	}
}
