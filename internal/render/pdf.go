package render

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

const (
	pdfFamily     = "Helvetica"
	pdfUTF8Family = "MinutesUnicode"
	lineHeight    = 10.0
)

type pdfRenderer struct {
	fontPath string
	compress bool
}

// NewPDF returns a PDF renderer. fontPath, when set, names a TrueType font
// that is embedded so any Unicode text renders.
func NewPDF(fontPath string) Renderer {
	return &pdfRenderer{fontPath: fontPath, compress: true}
}

func (r *pdfRenderer) Format() Format { return FormatPDF }

func (r *pdfRenderer) Render(m Minutes) (Document, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(r.compress)
	pdf.SetTitle(m.Title, true)

	family := pdfFamily
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	if r.fontPath != "" {
		pdf.AddUTF8Font(pdfUTF8Family, "", r.fontPath)
		family = pdfUTF8Family
		tr = func(s string) string { return s }
	}

	pdf.AddPage()

	pdf.SetFont(family, "", 16)
	pdf.MultiCell(0, lineHeight, tr(m.Title), "", "", false)
	pdf.Ln(lineHeight)

	pdf.SetFont(family, "", 12)
	pdf.MultiCell(0, lineHeight, tr("Date: "+m.Date), "", "", false)
	pdf.MultiCell(0, lineHeight, tr("Time: "+m.Time), "", "", false)
	pdf.Ln(lineHeight)

	if len(m.Items) == 0 {
		pdf.MultiCell(0, lineHeight, tr(emptyNotice), "", "", false)
	}

	for _, it := range m.Items {
		pdf.SetFont(family, "", 14)
		pdf.MultiCell(0, lineHeight, tr(it.Heading()), "", "", false)
		pdf.SetFont(family, "", 12)
		for _, p := range points(it) {
			pdf.MultiCell(0, lineHeight, tr("• "+p), "", "", false)
		}
		pdf.Ln(5)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return Document{}, fmt.Errorf("write pdf: %w", err)
	}

	return Document{
		Filename:    "agenda" + FormatPDF.Extension(),
		ContentType: contentTypePDF,
		Data:        buf.Bytes(),
	}, nil
}
