package render

import (
	"strings"

	"github.com/nguyentantai21042004/meeting-minutes/internal/agenda"
)

// Format is the output document type.
type Format string

const (
	FormatDOCX Format = "docx"
	FormatPDF  Format = "pdf"
)

const (
	contentTypeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	contentTypePDF  = "application/pdf"

	// emptyNotice is written when the transcript produced no agenda items.
	emptyNotice = "No agenda items recorded."
)

// ParseFormat maps "pdf" to FormatPDF. Everything else is DOCX.
func ParseFormat(s string) Format {
	if strings.EqualFold(strings.TrimSpace(s), string(FormatPDF)) {
		return FormatPDF
	}
	return FormatDOCX
}

// Extension returns the file extension including the dot.
func (f Format) Extension() string {
	return "." + string(f)
}

// Minutes is everything that goes into the document.
type Minutes struct {
	Title string
	Date  string
	Time  string
	Items []agenda.Item
}

// Document is a rendered file ready to download.
type Document struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Renderer turns Minutes into a Document of one format.
type Renderer interface {
	Format() Format
	Render(m Minutes) (Document, error)
}

// Options configures the built-in renderers.
type Options struct {
	// TempDir holds intermediate DOCX files. Defaults to the system temp dir.
	TempDir string
	// PDFFontPath is a TrueType font used for PDF output. Empty means the
	// core Helvetica font with cp1252 encoding.
	PDFFontPath string
}

// NewAll returns the DOCX and PDF renderers keyed by format.
func NewAll(opts Options) map[Format]Renderer {
	return map[Format]Renderer{
		FormatDOCX: NewDOCX(opts.TempDir),
		FormatPDF:  NewPDF(opts.PDFFontPath),
	}
}

func points(it agenda.Item) []string {
	out := make([]string, 0, len(it.Points))
	for _, p := range it.Points {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
