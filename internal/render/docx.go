package render

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const (
	fontName    = "Times New Roman"
	fontSize    = 12
	titleSize   = 20
	headingSize = 14
)

type docxRenderer struct {
	tempDir string
}

// NewDOCX returns a Word renderer.
func NewDOCX(tempDir string) Renderer {
	return &docxRenderer{tempDir: tempDir}
}

func (r *docxRenderer) Format() Format { return FormatDOCX }

func (r *docxRenderer) Render(m Minutes) (Document, error) {
	doc, err := godocx.NewDocument()
	if err != nil {
		return Document{}, fmt.Errorf("new docx: %w", err)
	}

	addStyledRun(doc.AddParagraph(""), m.Title, true, titleSize)
	addStyledRun(doc.AddParagraph(""), "Date: "+m.Date, false, fontSize)
	addStyledRun(doc.AddParagraph(""), "Time: "+m.Time, false, fontSize)
	doc.AddParagraph("")

	if len(m.Items) == 0 {
		addStyledRun(doc.AddParagraph(""), emptyNotice, false, fontSize)
	}

	for _, it := range m.Items {
		addStyledRun(doc.AddParagraph(""), it.Heading(), true, headingSize)
		for _, p := range points(it) {
			addStyledRun(doc.AddParagraph(""), "• "+p, false, fontSize)
		}
	}

	data, err := r.save(doc)
	if err != nil {
		return Document{}, err
	}

	return Document{
		Filename:    "agenda" + FormatDOCX.Extension(),
		ContentType: contentTypeDOCX,
		Data:        data,
	}, nil
}

// save writes the document through a private temp dir and returns its bytes.
func (r *docxRenderer) save(doc *docx.RootDoc) ([]byte, error) {
	dir, err := os.MkdirTemp(r.tempDir, "minutes-docx-*")
	if err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "agenda.docx")
	if err := doc.SaveTo(path); err != nil {
		return nil, fmt.Errorf("save docx: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read docx: %w", err)
	}
	return data, nil
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}
