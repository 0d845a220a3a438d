package processor

import (
	"context"

	"github.com/nguyentantai21042004/meeting-minutes/internal/render"
)

// Request is one uploaded recording plus the form fields that go with it.
type Request struct {
	Filename string
	Audio    []byte
	Format   render.Format
	// Date and Time are printed verbatim. Empty values default to now.
	Date string
	Time string
}

// Processor turns a recording into a minutes document.
type Processor interface {
	Process(ctx context.Context, req Request) (render.Document, error)
}
