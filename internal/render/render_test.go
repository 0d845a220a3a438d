package render

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/nguyentantai21042004/meeting-minutes/internal/agenda"
)

func sampleMinutes() Minutes {
	return Minutes{
		Title: "Meeting Minutes",
		Date:  "14-10-2026",
		Time:  "09:30 AM",
		Items: []agenda.Item{
			{Number: 1, Points: []string{"Welcome all"}},
			{Number: 2, Points: []string{"Quick update on sales", "  ", "Numbers are up"}},
		},
	}
}

func TestParseFormat(t *testing.T) {
	tests := map[string]Format{
		"pdf":   FormatPDF,
		" PDF ": FormatPDF,
		"docx":  FormatDOCX,
		"word":  FormatDOCX,
		"":      FormatDOCX,
	}
	for in, want := range tests {
		if got := ParseFormat(in); got != want {
			t.Errorf("ParseFormat(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNewAll(t *testing.T) {
	all := NewAll(Options{})
	for _, f := range []Format{FormatDOCX, FormatPDF} {
		r, ok := all[f]
		if !ok {
			t.Fatalf("NewAll() missing %s", f)
		}
		if r.Format() != f {
			t.Errorf("renderer for %s reports %s", f, r.Format())
		}
	}
}

func docxBody(t *testing.T, data []byte) string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("docx is not a zip archive: %v", err)
	}
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatal(err)
		}
		defer rc.Close()
		b, err := io.ReadAll(rc)
		if err != nil {
			t.Fatal(err)
		}
		return string(b)
	}
	t.Fatal("word/document.xml not found")
	return ""
}

func TestDOCXRender(t *testing.T) {
	doc, err := NewDOCX(t.TempDir()).Render(sampleMinutes())
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if doc.Filename != "agenda.docx" {
		t.Errorf("Filename = %q", doc.Filename)
	}
	if doc.ContentType != contentTypeDOCX {
		t.Errorf("ContentType = %q", doc.ContentType)
	}

	body := docxBody(t, doc.Data)
	for _, want := range []string{
		"Meeting Minutes",
		"Date: 14-10-2026",
		"Time: 09:30 AM",
		"Agenda Item 1:",
		"• Welcome all",
		"Agenda Item 2:",
		"• Numbers are up",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("document.xml missing %q", want)
		}
	}
	if strings.Contains(body, "•   ") {
		t.Error("blank point was rendered")
	}
}

func TestDOCXRenderEmpty(t *testing.T) {
	m := sampleMinutes()
	m.Items = nil

	doc, err := NewDOCX(t.TempDir()).Render(m)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if body := docxBody(t, doc.Data); !strings.Contains(body, emptyNotice) {
		t.Errorf("document.xml missing %q", emptyNotice)
	}
}

func TestPDFRender(t *testing.T) {
	r := &pdfRenderer{compress: false}

	doc, err := r.Render(sampleMinutes())
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if doc.Filename != "agenda.pdf" || doc.ContentType != contentTypePDF {
		t.Errorf("Document = %q %q", doc.Filename, doc.ContentType)
	}
	if !bytes.HasPrefix(doc.Data, []byte("%PDF-")) {
		t.Fatalf("output is not a PDF: %q", doc.Data[:min(16, len(doc.Data))])
	}

	body := string(doc.Data)
	for _, want := range []string{"Meeting Minutes", "Date: 14-10-2026", "Agenda Item 2:", "Quick update on sales"} {
		if !strings.Contains(body, want) {
			t.Errorf("pdf missing %q", want)
		}
	}
}

func TestPDFRenderMissingFont(t *testing.T) {
	_, err := NewPDF("/nonexistent/DejaVuSans.ttf").Render(sampleMinutes())
	if err == nil {
		t.Error("Render() expected error for missing font")
	}
}
