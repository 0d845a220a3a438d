package processor

import (
	"context"
	"fmt"

	"github.com/nguyentantai21042004/meeting-minutes/internal/agenda"
	"github.com/nguyentantai21042004/meeting-minutes/internal/render"
)

func (p *implProcessor) render(ctx context.Context, req Request, transcript string) (render.Document, error) {
	items := p.segmenter.Segment(transcript)
	p.logger.Debug(ctx, "Segmented transcript into %d agenda items:\n%s", len(items), agenda.Text(items))

	now := p.now()
	m := render.Minutes{
		Title: p.cfg.Render.Title,
		Date:  req.Date,
		Time:  req.Time,
		Items: items,
	}
	if m.Date == "" {
		m.Date = now.Format(p.cfg.Render.DateLayout)
	}
	if m.Time == "" {
		m.Time = now.Format(p.cfg.Render.TimeLayout)
	}

	format := req.Format
	if format == "" {
		format = render.ParseFormat(p.cfg.Render.DefaultFormat)
	}
	r, ok := p.renderers[format]
	if !ok {
		return render.Document{}, fmt.Errorf("no renderer for format %q", format)
	}

	doc, err := r.Render(m)
	if err != nil {
		return render.Document{}, fmt.Errorf("render %s: %w", format, err)
	}
	return doc, nil
}
